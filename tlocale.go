package tlocale

import "github.com/dmitrymomot/tlocale/pkg/tconfig"

//go:generate go run ./cmd/tlocale --builtin gen --package tlocale --output languages_gen.go

// LangKey is the storage key under which the active language choice is persisted.
const LangKey = "lang"

var config = tconfig.Config{
	Languages: tconfig.LanguageNode{
		Name: "en",
		Children: []tconfig.LanguageNode{
			{Name: "zh"},
		},
	},
	Targets: []tconfig.ScanTarget{
		{
			Includes: []string{"/src"},
			Excludes: []string{"node_modules", ".*"},
			Output:   "_t",
			FnNames:  []string{"t"},
		},
	},
}

// Config returns the localization configuration.
// Each call returns an independent copy.
func Config() tconfig.Config {
	return config.Clone()
}

// Languages returns every configured language code, default first.
func Languages() []Language {
	codes := config.LanguageCodes()
	langs := make([]Language, len(codes))
	for i, code := range codes {
		langs[i] = Language(code)
	}
	return langs
}

// DefaultLanguage returns the default and final fallback language.
func DefaultLanguage() Language {
	return Language(config.DefaultLanguage())
}
