package langpref_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tlocale"
	"github.com/dmitrymomot/tlocale/pkg/langpref"
	"github.com/dmitrymomot/tlocale/pkg/tconfig"
)

var errStoreDown = errors.New("store down")

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) { return "", errStoreDown }
func (failingStore) Set(context.Context, string, string) error   { return errStoreDown }
func (failingStore) Delete(context.Context, string) error        { return errStoreDown }

func userHeader(r *http.Request) string { return r.Header.Get("X-User") }

func newResolver(t *testing.T, opts ...langpref.Option) *langpref.Resolver {
	t.Helper()
	res, err := langpref.NewResolver(tlocale.Config(), opts...)
	require.NoError(t, err)
	return res
}

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("uses declared languages", func(t *testing.T) {
		t.Parallel()
		res := newResolver(t)
		require.Equal(t, []string{"en", "zh"}, res.Languages())
		require.Equal(t, "en", res.DefaultLanguage())
		require.Equal(t, tlocale.LangKey, res.Key())
	})

	t.Run("custom key", func(t *testing.T) {
		t.Parallel()
		res := newResolver(t, langpref.WithKey("locale"))
		require.Equal(t, "locale", res.Key())
	})

	t.Run("empty config", func(t *testing.T) {
		t.Parallel()
		_, err := langpref.NewResolver(tconfig.Config{})
		require.ErrorIs(t, err, langpref.ErrNoLanguages)
	})

	t.Run("invalid language", func(t *testing.T) {
		t.Parallel()
		_, err := langpref.NewResolver(tconfig.Config{Languages: tconfig.LanguageNode{Name: "not a tag"}})
		require.ErrorIs(t, err, tconfig.ErrInvalidLanguage)
	})

	t.Run("languages copy is independent", func(t *testing.T) {
		t.Parallel()
		res := newResolver(t)
		langs := res.Languages()
		langs[0] = "de"
		require.Equal(t, "en", res.Languages()[0])
	})
}

func TestResolver_Match(t *testing.T) {
	t.Parallel()

	res := newResolver(t)

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"en", "en", true},
		{"ZH", "zh", true},
		{"zh-CN", "zh", true},
		{"en-GB", "en", true},
		{"fr", "", false},
		{"", "", false},
		{"not a tag", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := res.Match(tt.in)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name   string
		target string
		cookie string
		user   string
		stored string
		accept string
		want   string
	}{
		{name: "default when nothing is set", target: "/", want: "en"},
		{name: "query parameter", target: "/?lang=zh", cookie: "en", want: "zh"},
		{name: "unsupported query falls through to cookie", target: "/?lang=de", cookie: "zh", want: "zh"},
		{name: "cookie is case-insensitive", target: "/", cookie: "ZH", want: "zh"},
		{name: "cookie beats store", target: "/", cookie: "en", user: "u1", stored: "zh", want: "en"},
		{name: "store beats accept-language", target: "/", user: "u1", stored: "zh", accept: "en", want: "zh"},
		{name: "store without subject is skipped", target: "/", stored: "zh", accept: "en", want: "en"},
		{name: "accept-language with quality", target: "/", accept: "fr;q=1,zh-CN;q=0.9", want: "zh"},
		{name: "accept-language region variant", target: "/", accept: "zh-CN", want: "zh"},
		{name: "unsupported accept-language falls back", target: "/", accept: "fr-FR,fr;q=0.9", want: "en"},
		{name: "malformed accept-language falls back", target: "/", accept: ";;;", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := langpref.NewMemoryStore()
			if tt.stored != "" {
				require.NoError(t, store.Set(ctx, "u1", tt.stored))
			}
			res := newResolver(t, langpref.WithStore(store, userHeader))

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: tlocale.LangKey, Value: tt.cookie})
			}
			if tt.user != "" {
				r.Header.Set("X-User", tt.user)
			}
			if tt.accept != "" {
				r.Header.Set("Accept-Language", tt.accept)
			}

			require.Equal(t, tt.want, res.Resolve(r))
		})
	}

	t.Run("store failure falls through", func(t *testing.T) {
		t.Parallel()
		res := newResolver(t, langpref.WithStore(failingStore{}, userHeader))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-User", "u1")
		r.Header.Set("Accept-Language", "zh")

		require.Equal(t, "zh", res.Resolve(r))
	})
}

func TestResolver_Remember(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sets cookie and store", func(t *testing.T) {
		t.Parallel()
		store := langpref.NewMemoryStore()
		res := newResolver(t, langpref.WithStore(store, userHeader), langpref.WithCookieSecure(true))

		r := httptest.NewRequest(http.MethodPut, "/", nil)
		r.Header.Set("X-User", "u1")
		w := httptest.NewRecorder()

		lang, err := res.Remember(w, r, "zh-CN")
		require.NoError(t, err)
		require.Equal(t, "zh", lang)

		stored, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		require.Equal(t, "zh", stored)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, tlocale.LangKey, cookies[0].Name)
		require.Equal(t, "zh", cookies[0].Value)
		require.Equal(t, 365*24*60*60, cookies[0].MaxAge)
		require.True(t, cookies[0].Secure)
		require.True(t, cookies[0].HttpOnly)
	})

	t.Run("cookie readable by scripts when HttpOnly is disabled", func(t *testing.T) {
		t.Parallel()
		res := newResolver(t, langpref.WithCookieHTTPOnly(false))
		w := httptest.NewRecorder()

		_, err := res.Remember(w, httptest.NewRequest(http.MethodPut, "/", nil), "zh")
		require.NoError(t, err)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "zh", cookies[0].Value)
		require.False(t, cookies[0].HttpOnly)

		w = httptest.NewRecorder()
		require.NoError(t, res.Forget(w, httptest.NewRequest(http.MethodDelete, "/", nil)))
		require.False(t, w.Result().Cookies()[0].HttpOnly)
	})

	t.Run("unsupported language", func(t *testing.T) {
		t.Parallel()
		res := newResolver(t)
		w := httptest.NewRecorder()

		_, err := res.Remember(w, httptest.NewRequest(http.MethodPut, "/", nil), "de")
		require.ErrorIs(t, err, langpref.ErrUnsupportedLanguage)
		require.Empty(t, w.Result().Cookies())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		res := newResolver(t, langpref.WithStore(failingStore{}, userHeader))
		r := httptest.NewRequest(http.MethodPut, "/", nil)
		r.Header.Set("X-User", "u1")

		_, err := res.Remember(httptest.NewRecorder(), r, "zh")
		require.ErrorIs(t, err, errStoreDown)
	})
}

func TestResolver_Forget(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := langpref.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "u1", "zh"))
	res := newResolver(t, langpref.WithStore(store, userHeader))

	r := httptest.NewRequest(http.MethodDelete, "/", nil)
	r.Header.Set("X-User", "u1")
	w := httptest.NewRecorder()

	require.NoError(t, res.Forget(w, r))

	_, err := store.Get(ctx, "u1")
	require.ErrorIs(t, err, langpref.ErrNotFound)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, tlocale.LangKey, cookies[0].Name)
	require.Equal(t, -1, cookies[0].MaxAge)
}
