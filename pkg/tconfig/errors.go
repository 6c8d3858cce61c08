package tconfig

import "errors"

// Sentinel errors for the tconfig package.
var (
	ErrEmptyLanguage     = errors.New("tconfig: language name cannot be empty")
	ErrInvalidLanguage   = errors.New("tconfig: invalid language tag")
	ErrDuplicateLanguage = errors.New("tconfig: duplicate language")
	ErrNoTargets         = errors.New("tconfig: at least one target is required")
	ErrEmptyIncludes     = errors.New("tconfig: target includes cannot be empty")
	ErrEmptyOutput       = errors.New("tconfig: target output cannot be empty")
	ErrEmptyFnName       = errors.New("tconfig: function name cannot be empty")
	ErrInvalidPattern    = errors.New("tconfig: invalid exclude pattern")

	ErrUnknownFormat = errors.New("tconfig: unknown config format")
	ErrDecode        = errors.New("tconfig: failed to decode config")
	ErrExists        = errors.New("tconfig: config file already exists")
)
