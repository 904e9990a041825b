package config

import (
	"github.com/storenav/storenav/internal/logger"
	"github.com/storenav/storenav/internal/navlink"
)

// Supported DB engines.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Routing   Routing
	I18n      I18n
	Menu      []MenuLink
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// DB holds the database configuration settings.
type DB struct {
	Engine   string // sqlite, mysql or postgres
	Path     string // sqlite database file
	Extras   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Routing holds the storefront URL settings and the default route parts.
type Routing struct {
	BaseURL           string
	DefaultModule     string
	DefaultController string
	DefaultAction     string
}

// Defaults returns the default route parts.
func (r Routing) Defaults() navlink.RouteParts {
	return navlink.RouteParts{
		Module:     r.DefaultModule,
		Controller: r.DefaultController,
		Action:     r.DefaultAction,
	}
}

// I18n holds the translation settings.
type I18n struct {
	Fallback  string
	Supported []string
}

// MenuLink is a navigation link seeded into the menu storage on first start.
type MenuLink struct {
	Menu        string
	Path        string
	Label       string
	Title       string
	Attributes  []navlink.Attribute
	Highlighted bool
	SortOrder   int
}
