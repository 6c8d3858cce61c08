package tconfig

import (
	"iter"
	"slices"
)

const (
	// DefaultOutput is the output directory used when a target omits one.
	DefaultOutput = "_t"

	// DefaultFnName is the translation function name used when a target omits fnNames.
	DefaultFnName = "t"
)

// LanguageNode is one supported language and its regional or dialect variants.
type LanguageNode struct {
	Name     string         `json:"name"               toml:"name"               yaml:"name"`
	Children []LanguageNode `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`
}

// ScanTarget describes which files the extraction tool scans and how it
// recognizes translatable calls.
type ScanTarget struct {
	// Includes are the path roots to scan.
	Includes []string `json:"includes" toml:"includes" yaml:"includes"`
	// Excludes are glob patterns for paths to skip.
	Excludes []string `json:"excludes" toml:"excludes" yaml:"excludes"`
	// Output is the directory extracted artifacts are written to.
	Output string `json:"output,omitempty" toml:"output,omitempty" yaml:"output,omitempty"`
	// FnNames are the identifiers whose calls mark a translatable string.
	FnNames []string `json:"fnNames,omitempty" toml:"fnNames,omitempty" yaml:"fnNames,omitempty"`
}

// Config is the root localization configuration.
type Config struct {
	Languages LanguageNode `json:"languages" toml:"languages" yaml:"languages"`
	Targets   []ScanTarget `json:"targets"   toml:"targets"   yaml:"targets"`
}

// Languages returns every language code in the tree, root first, walking
// children depth-first in declaration order.
func (n LanguageNode) Languages() []string {
	var langs []string
	for lang := range n.All() {
		langs = append(langs, lang)
	}
	return langs
}

// All yields (language, parent) pairs in the same order as Languages.
// The root is yielded with an empty parent.
func (n LanguageNode) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		n.walk("", yield)
	}
}

func (n LanguageNode) walk(parent string, yield func(string, string) bool) bool {
	if !yield(n.Name, parent) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(n.Name, yield) {
			return false
		}
	}
	return true
}

// Contains reports whether lang is declared anywhere in the tree.
func (n LanguageNode) Contains(lang string) bool {
	for name := range n.All() {
		if name == lang {
			return true
		}
	}
	return false
}

// Parent returns the language lang falls back to.
// The root has no parent; ok is false for it and for undeclared languages.
func (n LanguageNode) Parent(lang string) (string, bool) {
	for name, parent := range n.All() {
		if name == lang {
			return parent, parent != ""
		}
	}
	return "", false
}

// FallbackChain returns lang followed by each ancestor up to the root.
// Returns nil when lang is not declared.
func (n LanguageNode) FallbackChain(lang string) []string {
	parents := make(map[string]string)
	for name, parent := range n.All() {
		if _, seen := parents[name]; !seen {
			parents[name] = parent
		}
	}

	if _, ok := parents[lang]; !ok {
		return nil
	}

	chain := []string{lang}
	for cur := parents[lang]; cur != ""; cur = parents[cur] {
		if slices.Contains(chain, cur) {
			break
		}
		chain = append(chain, cur)
	}
	return chain
}

// Clone returns a deep copy of the node. Empty child lists become nil.
func (n LanguageNode) Clone() LanguageNode {
	out := LanguageNode{Name: n.Name}
	if len(n.Children) > 0 {
		out.Children = make([]LanguageNode, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the target. Empty lists become nil so that
// a config compares equal after a round trip through any format.
func (t ScanTarget) Clone() ScanTarget {
	return ScanTarget{
		Includes: cloneStrings(t.Includes),
		Excludes: cloneStrings(t.Excludes),
		Output:   t.Output,
		FnNames:  cloneStrings(t.FnNames),
	}
}

func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// LanguageCodes returns the flattened list of every declared language code.
func (c Config) LanguageCodes() []string {
	return c.Languages.Languages()
}

// DefaultLanguage returns the root language code.
func (c Config) DefaultLanguage() string {
	return c.Languages.Name
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := Config{Languages: c.Languages.Clone()}
	if len(c.Targets) > 0 {
		out.Targets = make([]ScanTarget, len(c.Targets))
		for i, t := range c.Targets {
			out.Targets[i] = t.Clone()
		}
	}
	return out
}

// WithDefaults returns a copy with omitted target fields filled in:
// Output becomes DefaultOutput and FnNames becomes [DefaultFnName].
func (c Config) WithDefaults() Config {
	out := c.Clone()
	for i := range out.Targets {
		if out.Targets[i].Output == "" {
			out.Targets[i].Output = DefaultOutput
		}
		if len(out.Targets[i].FnNames) == 0 {
			out.Targets[i].FnNames = []string{DefaultFnName}
		}
	}
	return out
}
