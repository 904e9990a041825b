// Package storefront renders the storefront pages with their navigation menus.
package storefront

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storenav/storenav/internal/config"
	"github.com/storenav/storenav/internal/db/controller/link"
	"github.com/storenav/storenav/internal/db/models"
	"github.com/storenav/storenav/internal/i18n"
	"github.com/storenav/storenav/internal/navlink"
	"github.com/storenav/storenav/internal/route"
	"github.com/storenav/storenav/internal/web/handler"
	"github.com/storenav/storenav/internal/web/navigation"
)

const (
	// Path matches every storefront page.
	Path = handler.RootPath + "*"

	// TemplateName is the name of the storefront page template.
	TemplateName = "storefront/page"

	homeKey      = "nav.home"
	pageTitleKey = "page.title"
)

// Menus are rendered on every page in this order.
var Menus = []string{handler.HeaderMenu, handler.AccountMenu}

// Service is the storefront handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	deps handler.Deps
}

// Handler is the storefront handler.
var Handler = Service{}

// Init initializes the storefront handler. It registers a catch-all route and must run
// after all other handlers.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, deps handler.Deps) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	if deps.URLs == nil || deps.I18n == nil {
		return handler.ErrMissingDeps
	}

	s.cfg = cfg
	s.db = db
	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Get renders the page of the active route with the storefront menus.
func (s *Service) Get(c *fiber.Ctx) error {
	active := route.FromCtx(c, s.cfg.Routing.Defaults())
	lang := i18n.LangFromCtx(c, s.deps.I18n.Fallback())
	tr := s.deps.I18n.Translator(lang)

	renderer := navlink.NewRenderer(s.deps.URLs, navlink.WithTranslator(tr))

	nav, err := s.navigation(renderer, tr, active)
	if err != nil {
		log.Error().Err(err).Str("lang", lang).Msg("failed to build storefront navigation")

		return c.Status(fiber.StatusInternalServerError).SendString("Failed to build navigation")
	}

	for _, menu := range Menus {
		links, err := link.ListByMenu(s.db, menu)
		if err != nil {
			log.Error().Err(err).Str("menu", menu).Msg("failed to load menu links")

			return c.Status(fiber.StatusInternalServerError).SendString("Failed to load menu")
		}

		if err = nav.BuildMenu(renderer, menu, models.Specs(links)); err != nil {
			log.Error().Err(err).Str("menu", menu).Msg("failed to render menu")

			return c.Status(fiber.StatusInternalServerError).SendString("Failed to render menu")
		}
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Lang":       lang,
		"Title":      s.cfg.Title,
	}, handler.BaseLayout)
}

// navigation builds the page context with a breadcrumb trail from home to the page.
func (s *Service) navigation(
	r *navlink.Renderer,
	tr navlink.Translator,
	active navlink.ActiveRoute,
) (*navigation.Context, error) {
	home, err := r.Href(navlink.LinkSpec{})
	if err != nil {
		return nil, err
	}

	nav := navigation.NewContext(tr.Translate(pageTitleKey), active)

	signature := navlink.Signature(active)
	if signature == "" {
		return nav.AddBreadcrumb(tr.Translate(homeKey), home, true), nil
	}

	current, err := r.Href(navlink.LinkSpec{Path: signature})
	if err != nil {
		return nil, err
	}

	return nav.
		AddBreadcrumb(tr.Translate(homeKey), home, false).
		AddBreadcrumb(signature, current, true), nil
}
