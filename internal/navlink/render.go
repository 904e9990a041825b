package navlink

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	itemClass   = "nav item"
	activeClass = " active"
)

// Renderer renders navigation links. It holds no per-request state and can be shared
// between goroutines as long as its collaborators can.
type Renderer struct {
	urls       URLGenerator
	translator Translator
	escaper    Escaper
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTranslator sets the translator for labels and titles.
func WithTranslator(t Translator) Option {
	return func(r *Renderer) {
		if t != nil {
			r.translator = t
		}
	}
}

// WithEscaper replaces the default HTML escaper.
func WithEscaper(e Escaper) Option {
	return func(r *Renderer) {
		if e != nil {
			r.escaper = e
		}
	}
}

// NewRenderer creates a renderer generating URLs with urls.
// Without options labels are not translated and text is escaped with HTMLEscaper.
func NewRenderer(urls URLGenerator, opts ...Option) *Renderer {
	if urls == nil {
		panic("navlink: url generator cannot be nil")
	}

	r := &Renderer{
		urls:       urls,
		translator: IdentityTranslator{},
		escaper:    HTMLEscaper{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Href returns the URL the link points to.
func (r *Renderer) Href(link LinkSpec) (string, error) {
	return r.urls.BuildURL(link.Path)
}

// Rendered is a rendered link together with the values it was built from.
type Rendered struct {
	HTML    string
	Href    string
	Current bool
}

// Render returns the <li><a>…</a></li> fragment for link.
func (r *Renderer) Render(link LinkSpec, route ActiveRoute) (string, error) {
	href, err := r.Href(link)
	if err != nil {
		return "", err
	}

	active := link.Highlighted || link.Current
	if !active {
		if active, err = r.matchesRoute(href, route); err != nil {
			return "", err
		}
	}

	return r.fragment(link, href, active), nil
}

// Describe renders link and reports its href and whether it is current,
// generating the link URL once.
func (r *Renderer) Describe(link LinkSpec, route ActiveRoute) (Rendered, error) {
	href, err := r.Href(link)
	if err != nil {
		return Rendered{}, err
	}

	current := link.Current
	if !current {
		if current, err = r.matchesRoute(href, route); err != nil {
			return Rendered{}, err
		}
	}

	return Rendered{
		HTML:    r.fragment(link, href, current || link.Highlighted),
		Href:    href,
		Current: current,
	}, nil
}

func (r *Renderer) fragment(link LinkSpec, href string, active bool) string {
	var b strings.Builder

	b.WriteString(`<li class="`)
	b.WriteString(itemClass)

	if active {
		b.WriteString(activeClass)
	}

	b.WriteString(`"><a href="`)
	b.WriteString(r.escaper.EscapeHTML(href))
	b.WriteByte('"')

	if link.Title != "" {
		if title := r.translator.Translate(link.Title); title != "" {
			b.WriteString(` title="`)
			b.WriteString(r.escaper.EscapeHTML(title))
			b.WriteByte('"')
		}
	}

	r.writeAttributes(&b, link.Attributes)
	b.WriteByte('>')

	if link.Highlighted {
		b.WriteString("<strong>")
	}

	b.WriteString(r.escaper.EscapeHTML(r.translator.Translate(link.Label)))

	if link.Highlighted {
		b.WriteString("</strong>")
	}

	b.WriteString("</a></li>")

	return b.String()
}

// writeAttributes skips attributes whose name is not a valid attribute name.
func (r *Renderer) writeAttributes(b *strings.Builder, attrs []Attribute) {
	for _, a := range attrs {
		if !ValidAttributeName(a.Name) {
			continue
		}

		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(r.escaper.EscapeHTML(a.Value))
		b.WriteByte('"')
	}
}

// ValidAttributeName reports whether name can be written as an HTML attribute name:
// non-empty, without whitespace, control characters, quotes, '<', '>', '/' or '='.
func ValidAttributeName(name string) bool {
	if name == "" {
		return false
	}

	for _, c := range name {
		switch {
		case unicode.IsSpace(c), unicode.IsControl(c), c == utf8.RuneError:
			return false
		case strings.ContainsRune("\"'`<>/=", c):
			return false
		}
	}

	return true
}

// HTMLEscaper escapes <, >, &, ' and ".
type HTMLEscaper struct{}

// EscapeHTML implements Escaper.
func (HTMLEscaper) EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// IdentityTranslator returns keys untranslated.
type IdentityTranslator struct{}

// Translate implements Translator.
func (IdentityTranslator) Translate(key string) string {
	return key
}
