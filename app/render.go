package app

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/storenav/storenav/internal/config"
	"github.com/storenav/storenav/internal/i18n"
	"github.com/storenav/storenav/internal/navlink"
	"github.com/storenav/storenav/internal/route"
	"github.com/storenav/storenav/internal/urlgen"
)

// ErrInvalidAttribute is returned for --attr values without "=".
var ErrInvalidAttribute = errors.New("attribute must be given as name=value")

type renderOptions struct {
	path       string
	label      string
	title      string
	attributes []string
	current    bool
	highlight  bool
	route      string
	lang       string
}

func init() { //nolint: gochecknoinits
	f := renderCmd.Flags()
	f.StringVar(&renderOpts.path, "path", "", "Logical link path, e.g. contact or catalog/category/view")
	f.StringVar(&renderOpts.label, "label", "", "Label or translation key")
	f.StringVar(&renderOpts.title, "title", "", "Optional title or translation key")
	f.StringArrayVar(&renderOpts.attributes, "attr", nil, "Extra anchor attribute as name=value, repeatable")
	f.BoolVar(&renderOpts.current, "current", false, "Force the current state")
	f.BoolVar(&renderOpts.highlight, "highlight", false, "Highlight the link")
	f.StringVar(&renderOpts.route, "route", "", "Request path of the displayed page, e.g. contact/index/index")
	f.StringVar(&renderOpts.lang, "lang", "", "Language of the translation, defaults to the fallback")

	if err := renderCmd.MarkFlagRequired("label"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(renderCmd)
}

var (
	renderOpts renderOptions

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render a single navigation link as HTML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfig(configPath())
			if err != nil {
				return err //nolint:wrapcheck
			}

			out, err := renderLink(&cfg, renderOpts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}
)

// renderLink renders one link the way the storefront does for the page at opts.route.
func renderLink(cfg *config.Config, opts renderOptions) (string, error) {
	attrs, err := parseAttributes(opts.attributes)
	if err != nil {
		return "", err
	}

	urls, err := urlgen.New(cfg.Routing.BaseURL, cfg.Routing.Defaults())
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	bundle, err := i18n.Default(cfg.I18n.Fallback, cfg.I18n.Supported)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	lang := opts.lang
	if lang == "" {
		lang = bundle.Fallback()
	}

	r := navlink.NewRenderer(urls, navlink.WithTranslator(bundle.Translator(lang)))

	return r.Render(navlink.LinkSpec{ //nolint:wrapcheck
		Path:        opts.path,
		Label:       opts.label,
		Title:       opts.title,
		Attributes:  attrs,
		Current:     opts.current,
		Highlighted: opts.highlight,
	}, route.Resolve(opts.route, cfg.Routing.Defaults()))
}

func parseAttributes(raw []string) ([]navlink.Attribute, error) {
	attrs := make([]navlink.Attribute, 0, len(raw))

	for _, a := range raw {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)

		if !ok || !navlink.ValidAttributeName(name) {
			return nil, errors.Wrap(ErrInvalidAttribute, a)
		}

		attrs = append(attrs, navlink.Attribute{Name: name, Value: value})
	}

	return attrs, nil
}
