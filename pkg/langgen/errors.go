package langgen

import "errors"

// Sentinel errors for the langgen package.
var (
	ErrEmptyPackage      = errors.New("langgen: package name cannot be empty")
	ErrInvalidIdentifier = errors.New("langgen: language code does not form a valid identifier")
	ErrNoLanguages       = errors.New("langgen: config declares no languages")
)
