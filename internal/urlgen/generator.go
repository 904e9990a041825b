// Package urlgen builds storefront URLs from logical route paths.
package urlgen

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/storenav/storenav/internal/navlink"
)

var (
	// ErrInvalidBaseURL is returned if the configured base URL can not be parsed.
	ErrInvalidBaseURL = errors.New("invalid base url")

	// ErrInvalidPath is returned for paths containing relative segments.
	ErrInvalidPath = errors.New("invalid route path")
)

// routeParts is the number of leading path segments naming module, controller and action.
const routeParts = 3

// Generator implements navlink.URLGenerator.
//
// The first three segments name module, controller and action. They are lower-cased and
// dropped where they equal the configured default of their position, the same way
// navlink.Signature shortens the active route. So "contact", "contact/index" and
// "contact/index/index" all map to the same URL, "cms/page/view" maps to "page/view/" and
// the default route maps to the base URL. Segments after the action are kept as given.
type Generator struct {
	base     string
	defaults [routeParts]string
}

// New creates a generator for baseURL, e.g. "https://shop.example.com/" or "/".
func New(baseURL string, defaults navlink.RouteParts) (*Generator, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidBaseURL, err.Error())
	}

	if u.RawQuery != "" || u.Fragment != "" || (u.Scheme != "" && u.Host == "") {
		return nil, ErrInvalidBaseURL
	}

	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	return &Generator{
		base:     u.String(),
		defaults: [routeParts]string{
			strings.ToLower(defaults.Module),
			strings.ToLower(defaults.Controller),
			strings.ToLower(defaults.Action),
		},
	}, nil
}

// BaseURL returns the URL of the default route.
func (g *Generator) BaseURL() string {
	return g.base
}

// BuildURL implements navlink.URLGenerator.
func (g *Generator) BuildURL(path string) (string, error) {
	segments, err := split(path)
	if err != nil {
		return "", err
	}

	kept := segments[:0]

	for i, s := range segments {
		if i < routeParts {
			s = strings.ToLower(s)
			if s == g.defaults[i] {
				continue
			}
		}

		kept = append(kept, s)
	}

	segments = kept

	if len(segments) == 0 {
		return g.base, nil
	}

	var b strings.Builder

	b.WriteString(g.base)

	for _, s := range segments {
		b.WriteString(url.PathEscape(s))
		b.WriteByte('/')
	}

	return b.String(), nil
}

func split(path string) ([]string, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return nil, nil
	}

	raw := strings.Split(path, "/")
	segments := make([]string, 0, len(raw))

	for _, s := range raw {
		switch s {
		case "":
			continue
		case ".", "..":
			return nil, ErrInvalidPath
		}

		segments = append(segments, s)
	}

	return segments, nil
}
