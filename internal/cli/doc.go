// Package cli implements the tlocale command line: config scaffolding,
// inspection, constant generation and the language-preference server.
package cli
