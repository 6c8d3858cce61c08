// Package tconfig defines the configuration schema consumed by the t
// translation-extraction toolchain and the values derived from it.
//
// A configuration declares the supported languages as a tree and one or more
// scan targets describing which source files carry translatable calls:
//
//	languages:
//	  name: en
//	  children:
//	    - name: zh
//	targets:
//	  - includes: ["/src"]
//	    excludes: ["node_modules", ".*"]
//	    output: _t
//	    fnNames: ["t"]
//
// The root language is the default and final fallback. Variants nested under
// a language fall back to their parent before reaching the root.
//
// # Derived Values
//
//	cfg.LanguageCodes()         // ["en", "zh"], pre-order
//	cfg.DefaultLanguage()       // "en"
//	cfg.Languages.FallbackChain("zh") // ["zh", "en"]
//
// # Loading
//
// Files are decoded strictly by extension (.json, .yaml, .yml, .toml).
// Unknown fields are rejected, omitted output and fnNames receive their
// defaults ("_t" and ["t"]), and the result is validated:
//
//	cfg, err := tconfig.Load("t.config.yaml")
//	if err != nil {
//		return err
//	}
//
// Validate reports every problem at once; use errors.Is with the sentinel
// errors to inspect them.
package tconfig
