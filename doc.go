// Package tlocale declares the localization configuration of this project
// and the language values derived from it.
//
// The declaration is the input to the t translation-extraction toolchain:
// English is the default language with Chinese as its only variant, and
// source files under /src are scanned for calls to t.
//
//	cfg := tlocale.Config()            // deep copy of the declaration
//	langs := tlocale.Languages()       // [en zh]
//	def := tlocale.DefaultLanguage()   // en
//
// LangKey is the name under which a user's chosen language is persisted,
// for example as a cookie or storage key:
//
//	http.SetCookie(w, &http.Cookie{Name: tlocale.LangKey, Value: "zh"})
//
// # Language Constants
//
// The Language type and its constants are generated from the declaration,
// so every declared code has a compile-time name:
//
//	if tlocale.LanguageZH.IsValid() {
//		// ...
//	}
//
// Run go generate after changing the language tree.
package tlocale
