package langpref

import "errors"

// Sentinel errors for the langpref package.
var (
	ErrNotFound            = errors.New("langpref: preference not found")
	ErrUnsupportedLanguage = errors.New("langpref: unsupported language")
	ErrNoLanguages         = errors.New("langpref: config declares no languages")
)
