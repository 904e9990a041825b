// Package daemon wires storage and web service of the storefront together.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storenav/storenav/internal/config"
	"github.com/storenav/storenav/internal/db"
	"github.com/storenav/storenav/internal/web"
)

// ErrConfigNil is returned by New without a config.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until it was shut down.
func (d *Daemon) Start() error {
	done := make(chan struct{})

	go func() {
		d.webService.WaitShutdown()
		close(done)
	}()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting storefront")

	if err := d.webService.Start(addr); err != nil {
		return errors.Wrap(err, "fiber listen error")
	}

	<-done

	return nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = seed(cfg, conn); err != nil {
		return nil, err
	}

	service, err := web.New(cfg, conn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		db:         conn,
		webService: service,
	}, nil
}
