// Package i18n loads storefront dictionaries and negotiates the request language.
package i18n

import (
	"embed"
	"encoding/json"
	"io/fs"
	"path"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/storenav/storenav/internal/navlink"
)

// LocalsKey is the fiber.Locals key holding the negotiated language.
const LocalsKey = "lang"

var (
	// ErrFallbackNotLoaded is returned if no dictionary exists for the fallback language.
	ErrFallbackNotLoaded = errors.New("fallback language dictionary not loaded")

	//go:embed locales/*.json
	embeddedLocales embed.FS
)

// Bundle holds one dictionary per supported language.
type Bundle struct {
	dict     map[string]map[string]string
	fallback string
	langs    []string
	matcher  language.Matcher
}

// Default loads the dictionaries shipped with the binary.
func Default(fallback string, supported []string) (*Bundle, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded locales")
	}

	return Load(sub, fallback, supported)
}

// Load reads <lang>.json for every supported language from fsys. A missing file is only an
// error for the fallback language.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}

	// fallback first: the matcher answers with the first tag when nothing matches
	langs := []string{fallback}

	for _, l := range supported {
		if l != fallback {
			langs = append(langs, l)
		}
	}

	tags := make([]language.Tag, 0, len(langs))

	for _, l := range langs {
		raw, err := fs.ReadFile(fsys, path.Clean(l+".json"))
		if err != nil {
			if l == fallback {
				return nil, errors.Wrap(ErrFallbackNotLoaded, err.Error())
			}

			continue
		}

		var m map[string]string
		if err = json.Unmarshal(raw, &m); err != nil {
			return nil, errors.Wrapf(err, "decode dictionary %s", l)
		}

		tag, err := language.Parse(l)
		if err != nil {
			return nil, errors.Wrapf(err, "parse language %s", l)
		}

		b.dict[l] = m
		b.langs = append(b.langs, l)
		tags = append(tags, tag)
	}

	b.matcher = language.NewMatcher(tags)

	return b, nil
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// Supported returns the loaded languages, sorted.
func (b *Bundle) Supported() []string {
	out := make([]string, len(b.langs))
	copy(out, b.langs)
	sort.Strings(out)

	return out
}

// T returns the translation of key in lang, falling back to the fallback language and
// finally to the key itself.
func (b *Bundle) T(lang, key string) string {
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}

	if v, ok := b.dict[b.fallback][key]; ok {
		return v
	}

	return key
}

// Match returns the best loaded language for an Accept-Language header value.
func (b *Bundle) Match(acceptLanguage string) string {
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return b.fallback
	}

	_, idx, confidence := b.matcher.Match(desired...)
	if confidence == language.No {
		return b.fallback
	}

	return b.langs[idx]
}

// Translator returns a navlink.Translator bound to lang.
func (b *Bundle) Translator(lang string) navlink.Translator {
	return navlink.TranslatorFunc(func(key string) string {
		return b.T(lang, key)
	})
}

// Middleware stores the request language in c.Locals. An explicit "lang" query parameter
// naming a loaded language wins over the Accept-Language header.
func Middleware(b *Bundle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Query("lang")
		if _, ok := b.dict[lang]; !ok {
			lang = b.Match(c.Get(fiber.HeaderAcceptLanguage))
		}

		c.Locals(LocalsKey, lang)

		return c.Next()
	}
}

// LangFromCtx returns the negotiated language or fallback if the middleware did not run.
func LangFromCtx(c *fiber.Ctx, fallback string) string {
	if lang, ok := c.Locals(LocalsKey).(string); ok && lang != "" {
		return lang
	}

	return fallback
}
