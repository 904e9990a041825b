package navlink

// Attribute is an extra HTML attribute written on the anchor element.
type Attribute struct {
	Name  string `json:"name" toml:"name" validate:"required,attrname"`
	Value string `json:"value" toml:"value"`
}

// LinkSpec describes one navigation link for a single render call.
type LinkSpec struct {
	// Path is the logical destination passed to the URL generator.
	Path string
	// Label is the display text key, translated before rendering.
	Label string
	// Title is the optional tooltip key, translated before rendering.
	Title string
	// Attributes are rendered in slice order.
	Attributes []Attribute
	// Current forces the current state regardless of the active route.
	Current bool
	// Highlighted sets the active class and wraps the label in <strong>.
	Highlighted bool
	// SortOrder orders links in RenderList, higher first.
	SortOrder int
}

// RouteParts identifies a request handler.
type RouteParts struct {
	Module     string
	Controller string
	Action     string
}

// ActiveRoute is the route of the page currently being displayed together with the
// default route parts of the host.
type ActiveRoute struct {
	RouteParts

	Default RouteParts
}

// URLGenerator maps a logical path to a URL.
type URLGenerator interface {
	BuildURL(path string) (string, error)
}

// Translator resolves a label or title key to display text.
type Translator interface {
	Translate(key string) string
}

// Escaper escapes text for use in HTML attribute values and text nodes.
type Escaper interface {
	EscapeHTML(text string) string
}

// URLGeneratorFunc adapts a function to URLGenerator.
type URLGeneratorFunc func(path string) (string, error)

// BuildURL calls f(path).
func (f URLGeneratorFunc) BuildURL(path string) (string, error) { return f(path) }

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(key string) string

// Translate calls f(key).
func (f TranslatorFunc) Translate(key string) string { return f(key) }

// EscaperFunc adapts a function to Escaper.
type EscaperFunc func(text string) string

// EscapeHTML calls f(text).
func (f EscaperFunc) EscapeHTML(text string) string { return f(text) }
