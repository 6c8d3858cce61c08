package tconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/language"
)

// Validate checks the structural constraints of the configuration and
// returns every violation joined into a single error.
func (c Config) Validate() error {
	var errs []error

	seen := make(map[string]bool)
	for lang := range c.Languages.All() {
		if err := validateLanguage(lang); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[lang] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateLanguage, lang))
			continue
		}
		seen[lang] = true
	}

	if len(c.Targets) == 0 {
		errs = append(errs, ErrNoTargets)
	}
	for i, t := range c.Targets {
		errs = append(errs, t.validate(fmt.Sprintf("targets[%d]", i))...)
	}

	return errors.Join(errs...)
}

func validateLanguage(lang string) error {
	if strings.TrimSpace(lang) == "" {
		return ErrEmptyLanguage
	}
	if _, err := language.Parse(lang); err != nil {
		return fmt.Errorf("%w: %q: %s", ErrInvalidLanguage, lang, err)
	}
	return nil
}

func (t ScanTarget) validate(path string) []error {
	var errs []error

	if len(t.Includes) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s.includes", ErrEmptyIncludes, path))
	}
	for i, inc := range t.Includes {
		if strings.TrimSpace(inc) == "" {
			errs = append(errs, fmt.Errorf("%w: %s.includes[%d]", ErrEmptyIncludes, path, i))
		}
	}

	for i, pattern := range t.Excludes {
		if _, err := glob.Compile(pattern); err != nil || strings.TrimSpace(pattern) == "" {
			errs = append(errs, fmt.Errorf("%w: %s.excludes[%d] %q", ErrInvalidPattern, path, i, pattern))
		}
	}

	if strings.TrimSpace(t.Output) == "" {
		errs = append(errs, fmt.Errorf("%w: %s.output", ErrEmptyOutput, path))
	}

	if len(t.FnNames) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s.fnNames", ErrEmptyFnName, path))
	}
	for i, name := range t.FnNames {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("%w: %s.fnNames[%d]", ErrEmptyFnName, path, i))
		}
	}

	return errs
}
