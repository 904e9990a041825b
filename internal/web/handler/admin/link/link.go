// Package link provides the JSON API managing the stored navigation links.
package link

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/storenav/storenav/internal/config"
	controller "github.com/storenav/storenav/internal/db/controller/link"
	"github.com/storenav/storenav/internal/db/models"
	"github.com/storenav/storenav/internal/i18n"
	"github.com/storenav/storenav/internal/navlink"
	"github.com/storenav/storenav/internal/route"
	"github.com/storenav/storenav/internal/urlgen"
	"github.com/storenav/storenav/internal/web/handler"
)

const (
	// Path is the path of the link collection.
	Path = handler.APIPath + "/links"

	// ItemPath is the path of a single link.
	ItemPath = Path + "/:id"

	// PreviewPath renders a link without storing it.
	PreviewPath = Path + "/preview"

	// MenusPath lists the stored menus.
	MenusPath = handler.APIPath + "/menus"

	// MenuPath is the path of a single menu.
	MenuPath = MenusPath + "/:menu"
)

// PreviewLink is the link part of a preview request.
type PreviewLink struct {
	Path        string              `json:"path" validate:"max=255"`
	Label       string              `json:"label" validate:"required,max=255"`
	Title       string              `json:"title" validate:"max=255"`
	Attributes  []navlink.Attribute `json:"attributes" validate:"dive"`
	Current     bool                `json:"current"`
	Highlighted bool                `json:"highlighted"`
}

// PreviewRequest asks for the fragment of a link as rendered on the page at Route.
type PreviewRequest struct {
	Link PreviewLink `json:"link"`
	// Route is a request path such as "/contact" resolved like a storefront request.
	Route string `json:"route" validate:"max=255"`
	Lang  string `json:"lang" validate:"omitempty,max=35"`
}

// PreviewResponse is the rendered fragment and its state.
type PreviewResponse struct {
	HTML    string `json:"html"`
	Href    string `json:"href"`
	Current bool   `json:"current"`
}

// Service is the link API handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	deps      handler.Deps
	validator XValidator
}

// Handler is the link API handler.
var Handler = Service{}

// Init initializes the link API handler.
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
	s.validator = NewValidator()

	app.Get(MenusPath, s.Menus)
	app.Delete(MenuPath, s.DeleteMenu)
	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Post(PreviewPath, s.Preview)
	app.Get(ItemPath, s.Get)
	app.Put(ItemPath, s.Update)
	app.Delete(ItemPath, s.Delete)

	return nil
}

// Menus lists the stored menu names.
func (s *Service) Menus(c *fiber.Ctx) error {
	menus, err := controller.Menus(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(fiber.Map{"menus": menus})
}

// DeleteMenu removes all links of a menu.
func (s *Service) DeleteMenu(c *fiber.Ctx) error {
	n, err := controller.DeleteByMenu(s.db, c.Params("menu"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(fiber.Map{"deleted": n})
}

// List returns the links of the menu given by the "menu" query parameter.
func (s *Service) List(c *fiber.Ctx) error {
	links, err := controller.ListByMenu(s.db, c.Query("menu"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(links)
}

// Get returns one link.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := linkID(c)
	if err != nil {
		return s.fail(c, err)
	}

	l, err := controller.Get(s.db, id)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(l)
}

// Create stores a new link.
func (s *Service) Create(c *fiber.Ctx) error {
	var body models.NavLink
	if resp, ok := s.parse(c, &body); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	l, err := controller.Create(s.db, body)
	if err != nil {
		return s.fail(c, err)
	}

	log.Info().Uint64("id", l.ID).Str("menu", l.Menu).Str("path", l.Path).Msg("link created")

	return c.Status(fiber.StatusCreated).JSON(l)
}

// Update replaces a stored link.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := linkID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body models.NavLink
	if resp, ok := s.parse(c, &body); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	l, err := controller.Update(s.db, id, body)
	if err != nil {
		return s.fail(c, err)
	}

	log.Info().Uint64("id", l.ID).Str("menu", l.Menu).Msg("link updated")

	return c.JSON(l)
}

// Delete removes a stored link.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := linkID(c)
	if err != nil {
		return s.fail(c, err)
	}

	if err = controller.Delete(s.db, id); err != nil {
		return s.fail(c, err)
	}

	log.Info().Uint64("id", id).Msg("link deleted")

	return c.SendStatus(fiber.StatusNoContent)
}

// Preview renders a link for a route without storing it.
func (s *Service) Preview(c *fiber.Ctx) error {
	var body PreviewRequest
	if resp, ok := s.parse(c, &body); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	lang := body.Lang
	if lang == "" {
		lang = i18n.LangFromCtx(c, s.deps.I18n.Fallback())
	}

	active := route.Resolve(body.Route, s.cfg.Routing.Defaults())
	r := navlink.NewRenderer(s.deps.URLs, navlink.WithTranslator(s.deps.I18n.Translator(lang)))

	spec := navlink.LinkSpec{
		Path:        body.Link.Path,
		Label:       body.Link.Label,
		Title:       body.Link.Title,
		Attributes:  body.Link.Attributes,
		Current:     body.Link.Current,
		Highlighted: body.Link.Highlighted,
	}

	out, err := r.Describe(spec, active)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(PreviewResponse{HTML: out.HTML, Href: out.Href, Current: out.Current})
}

// parse decodes and validates the request body into out.
func (s *Service) parse(c *fiber.Ctx, out any) (GlobalErrorHandlerResp, bool) {
	if err := c.BodyParser(out); err != nil {
		log.Debug().Err(err).Msg("failed to parse request body")

		return GlobalErrorHandlerResp{Message: "Invalid request body"}, false
	}

	if errs := s.validator.Validate(out); len(errs) > 0 {
		return GlobalErrorHandlerResp{Message: "Validation failed", Errors: errs}, false
	}

	return GlobalErrorHandlerResp{}, true
}

// fail maps controller and render errors to JSON error responses.
func (s *Service) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, controller.ErrLinkNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, controller.ErrMenuEmpty),
		errors.Is(err, controller.ErrLabelEmpty),
		errors.Is(err, controller.ErrInvalidAttribute),
		errors.Is(err, errInvalidID),
		errors.Is(err, urlgen.ErrInvalidPath):
		status = fiber.StatusBadRequest
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("link api request failed")
	}

	return c.Status(status).JSON(GlobalErrorHandlerResp{Message: err.Error()})
}

var errInvalidID = errors.New("invalid link id")

func linkID(c *fiber.Ctx) (uint64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}

	return uint64(id), nil
}
