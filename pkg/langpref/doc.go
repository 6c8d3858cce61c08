// Package langpref resolves and persists a user's language choice for HTTP
// services built on a tconfig.Config.
//
// A Resolver picks the request language from, in order: the "lang" query
// parameter, the "lang" cookie, an optional per-subject Store, the
// Accept-Language header, and finally the configured default language. Only
// declared languages are ever returned; requested variants such as "zh-CN"
// are matched onto the closest declared language.
//
//	res, err := langpref.NewResolver(tlocale.Config(),
//		langpref.WithStore(langpref.NewRedisStore(client), userIDFromRequest),
//	)
//	if err != nil {
//		return err
//	}
//
//	r := chi.NewRouter()
//	r.Use(res.Middleware)
//	r.Mount("/languages", res.Routes())
//
// Handlers read the resolved language from the request context:
//
//	lang, _ := langpref.FromContext(r.Context())
//
// # Routes
//
//	GET    /        current language, declared languages, default and key
//	PUT    /{lang}  remember a language (cookie and store)
//	DELETE /        forget the remembered language
//
// # Stores
//
// MemoryStore keeps choices in process memory and suits tests and single
// instance deployments. RedisStore persists them under "lang:<subject>".
package langpref
