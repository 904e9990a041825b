// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/storenav/storenav/internal/config"
)

// Create builds the Data Source Name for the configured engine.
func Create(dbCfg *config.Config) string {
	switch dbCfg.DB.Engine {
	case config.EngineMySQL:
		return mysql(dbCfg.DB)
	case config.EnginePostgres:
		return postgres(dbCfg.DB)
	default:
		return dbCfg.DB.Path
	}
}

func mysql(db config.DB) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
	)

	if db.Extras != "" {
		out += "?" + db.Extras
	}

	return out
}

// postgres builds a keyword/value connection string, extras are appended as given
// (e.g. "sslmode=disable TimeZone=UTC").
func postgres(db config.DB) string {
	parts := []string{
		"host=" + db.Host,
		"user=" + db.User,
		"password=" + db.Password,
		"dbname=" + db.Name,
	}

	if db.Port != 0 {
		parts = append(parts, fmt.Sprintf("port=%d", db.Port))
	}

	if db.Extras != "" {
		parts = append(parts, db.Extras)
	}

	return strings.Join(parts, " ")
}
