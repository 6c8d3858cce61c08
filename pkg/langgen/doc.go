// Package langgen renders a Go source file that enumerates every language
// declared in a tconfig.Config as typed constants.
//
// The generated file gives application code compile-time names for the
// configured languages:
//
//	src, err := langgen.Generate(cfg, langgen.Options{Package: "tlocale"})
//
// produces, for a configuration declaring en and zh:
//
//	type Language string
//
//	const (
//		LanguageEN Language = "en"
//		LanguageZH Language = "zh"
//	)
//
// together with AllLanguages, IsValid and String helpers. Regenerate the
// file whenever the language tree changes.
package langgen
