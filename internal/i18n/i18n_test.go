package i18n

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en.json": {Data: []byte(`{"nav.home":"Home","nav.sale":"Sale"}`)},
		"de.json": {Data: []byte(`{"nav.home":"Startseite"}`)},
		"ja.json": {Data: []byte(`{"nav.home":"ホーム"}`)},
	}
}

func TestLoad(t *testing.T) {
	b, err := Load(testFS(), "en", []string{"en", "de", "fr"})
	require.NoError(t, err)

	assert.Equal(t, "en", b.Fallback())
	assert.Equal(t, []string{"de", "en"}, b.Supported())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(testFS(), "fr", []string{"en"})
	require.ErrorIs(t, err, ErrFallbackNotLoaded)

	broken := fstest.MapFS{"en.json": {Data: []byte(`{"nav.home":`)}}
	_, err = Load(broken, "en", nil)
	require.Error(t, err)
}

func TestBundle_T(t *testing.T) {
	b, err := Load(testFS(), "en", []string{"de"})
	require.NoError(t, err)

	testCases := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{name: "translated", lang: "de", key: "nav.home", want: "Startseite"},
		{name: "falls back to fallback language", lang: "de", key: "nav.sale", want: "Sale"},
		{name: "unknown language", lang: "xx", key: "nav.home", want: "Home"},
		{name: "falls back to key", lang: "de", key: "nav.unknown", want: "nav.unknown"},
		{name: "empty key", lang: "en", key: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.T(tc.lang, tc.key))
			assert.Equal(t, tc.want, b.Translator(tc.lang).Translate(tc.key))
		})
	}
}

func TestBundle_Match(t *testing.T) {
	b, err := Load(testFS(), "en", []string{"de", "ja"})
	require.NoError(t, err)

	testCases := []struct {
		header string
		want   string
	}{
		{header: "", want: "en"},
		{header: "de-CH,de;q=0.9,en;q=0.8", want: "de"},
		{header: "fr-FR,fr;q=0.9", want: "en"},
		{header: "ja;q=0.9,de;q=0.5", want: "ja"},
		{header: "en-GB", want: "en"},
		{header: ";;;", want: "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.header, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Match(tc.header))
		})
	}
}

func TestDefault(t *testing.T) {
	b, err := Default("en", []string{"en", "de"})
	require.NoError(t, err)

	assert.Equal(t, "Kontakt", b.T("de", "nav.contact"))
	assert.Equal(t, "Contact", b.T("en", "nav.contact"))
}

func TestMiddleware(t *testing.T) {
	b, err := Load(testFS(), "en", []string{"de"})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(Middleware(b))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(LangFromCtx(c, "none"))
	})

	testCases := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "header", target: "/", header: "de-DE", want: "de"},
		{name: "query wins", target: "/?lang=en", header: "de-DE", want: "en"},
		{name: "unknown query ignored", target: "/?lang=xx", header: "de", want: "de"},
		{name: "nothing", target: "/", want: "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, tc.target, http.NoBody)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAcceptLanguage, tc.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)

			defer func() {
				_ = resp.Body.Close()
			}()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(body))
		})
	}
}
