package langpref

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/tlocale"
	"github.com/dmitrymomot/tlocale/pkg/tconfig"
)

// maxAcceptLanguageLength bounds the Accept-Language header that is parsed.
const maxAcceptLanguageLength = 4096

// defaultCookieMaxAge keeps the language cookie for a year.
const defaultCookieMaxAge = 365 * 24 * time.Hour

// SubjectFunc identifies whose preference a request belongs to, usually the
// authenticated user ID. An empty result skips the store.
type SubjectFunc func(r *http.Request) string

// Option configures a Resolver.
type Option func(*Resolver)

// WithStore persists choices per subject in addition to the cookie.
func WithStore(store Store, subject SubjectFunc) Option {
	return func(r *Resolver) {
		r.store = store
		r.subject = subject
	}
}

// WithKey overrides the query parameter and cookie name. Default: tlocale.LangKey.
func WithKey(key string) Option {
	return func(r *Resolver) {
		if key != "" {
			r.key = key
		}
	}
}

// WithCookieDomain sets the cookie domain.
func WithCookieDomain(domain string) Option {
	return func(r *Resolver) {
		r.cookieDomain = domain
	}
}

// WithCookieSecure sets the Secure flag on the cookie.
func WithCookieSecure(secure bool) Option {
	return func(r *Resolver) {
		r.cookieSecure = secure
	}
}

// WithCookieHTTPOnly controls the HttpOnly flag on the cookie. Default: true.
// Disable it when browser scripts, such as a client-side language switcher,
// need to read the chosen language.
func WithCookieHTTPOnly(httpOnly bool) Option {
	return func(r *Resolver) {
		r.cookieHTTPOnly = httpOnly
	}
}

// WithCookieMaxAge sets the cookie lifetime. Default: one year.
func WithCookieMaxAge(d time.Duration) Option {
	return func(r *Resolver) {
		r.cookieMaxAge = d
	}
}

// WithLogger sets the logger used to report store failures.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver determines the language of a request from the declared languages.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	store          Store
	subject        SubjectFunc
	matcher        language.Matcher
	log            *slog.Logger
	key            string
	cookieDomain   string
	languages      []string
	cookieMaxAge   time.Duration
	cookieSecure   bool
	cookieHTTPOnly bool
}

// NewResolver creates a Resolver for the languages declared in cfg.
// The root language is the default.
func NewResolver(cfg tconfig.Config, opts ...Option) (*Resolver, error) {
	codes := cfg.LanguageCodes()
	if len(codes) == 0 || codes[0] == "" {
		return nil, ErrNoLanguages
	}

	tags := make([]language.Tag, len(codes))
	for i, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", tconfig.ErrInvalidLanguage, code, err)
		}
		tags[i] = tag
	}

	r := &Resolver{
		languages:      codes,
		matcher:        language.NewMatcher(tags),
		key:            tlocale.LangKey,
		cookieMaxAge:   defaultCookieMaxAge,
		cookieHTTPOnly: true,
		log:            slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Languages returns the declared languages, default first.
func (r *Resolver) Languages() []string {
	return append([]string(nil), r.languages...)
}

// DefaultLanguage returns the fallback language.
func (r *Resolver) DefaultLanguage() string {
	return r.languages[0]
}

// Key returns the query parameter and cookie name.
func (r *Resolver) Key() string {
	return r.key
}

// Match maps a requested language code onto a declared language.
// Exact matches are case-insensitive; otherwise the closest declared
// language is chosen ("zh-CN" matches "zh"). ok is false when nothing
// declared is close enough.
func (r *Resolver) Match(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}

	for _, lang := range r.languages {
		if strings.EqualFold(lang, code) {
			return lang, true
		}
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	return r.match(tag)
}

func (r *Resolver) match(tags ...language.Tag) (string, bool) {
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(r.languages) {
		return "", false
	}
	return r.languages[idx], true
}

// Resolve returns the language for the request: query parameter, cookie,
// store, Accept-Language header, then the default language.
func (r *Resolver) Resolve(req *http.Request) string {
	if lang, ok := r.Match(req.URL.Query().Get(r.key)); ok {
		return lang
	}

	if c, err := req.Cookie(r.key); err == nil {
		if lang, ok := r.Match(c.Value); ok {
			return lang
		}
	}

	if lang, ok := r.fromStore(req); ok {
		return lang
	}

	if lang, ok := r.fromAcceptLanguage(req.Header.Get("Accept-Language")); ok {
		return lang
	}

	return r.DefaultLanguage()
}

func (r *Resolver) fromStore(req *http.Request) (string, bool) {
	if r.store == nil || r.subject == nil {
		return "", false
	}
	subject := r.subject(req)
	if subject == "" {
		return "", false
	}

	stored, err := r.store.Get(req.Context(), subject)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.WarnContext(req.Context(), "failed to load language preference",
				slog.String("subject", subject),
				slog.String("error", err.Error()),
			)
		}
		return "", false
	}
	return r.Match(stored)
}

func (r *Resolver) fromAcceptLanguage(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	return r.match(tags...)
}

// Remember persists lang for the request's subject and sets the cookie.
// Returns the declared language that was stored, or ErrUnsupportedLanguage.
func (r *Resolver) Remember(w http.ResponseWriter, req *http.Request, lang string) (string, error) {
	matched, ok := r.Match(lang)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	if r.store != nil && r.subject != nil {
		if subject := r.subject(req); subject != "" {
			if err := r.store.Set(req.Context(), subject, matched); err != nil {
				return "", fmt.Errorf("storing language preference: %w", err)
			}
		}
	}

	http.SetCookie(w, r.cookie(matched, int(r.cookieMaxAge.Seconds())))
	return matched, nil
}

// Forget clears the cookie and the stored preference.
func (r *Resolver) Forget(w http.ResponseWriter, req *http.Request) error {
	if r.store != nil && r.subject != nil {
		if subject := r.subject(req); subject != "" {
			if err := r.store.Delete(req.Context(), subject); err != nil {
				return fmt.Errorf("deleting language preference: %w", err)
			}
		}
	}

	http.SetCookie(w, r.cookie("", -1))
	return nil
}

func (r *Resolver) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     r.key,
		Value:    value,
		Path:     "/",
		Domain:   r.cookieDomain,
		MaxAge:   maxAge,
		Secure:   r.cookieSecure,
		HttpOnly: r.cookieHTTPOnly,
		SameSite: http.SameSiteLaxMode,
	}
}
