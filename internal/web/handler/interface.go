package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/storenav/storenav/internal/config"
	"github.com/storenav/storenav/internal/i18n"
	"github.com/storenav/storenav/internal/urlgen"
)

// Deps holds the collaborators shared by all handlers.
type Deps struct {
	URLs *urlgen.Generator
	I18n *i18n.Bundle
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, deps Deps) error
}
