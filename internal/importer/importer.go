// Package importer rehydrates application state from external files: the
// verbose JSON export, or a tab-delimited ledger that is reverse-aggregated
// back into property records.
package importer

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/rentledger-dev/rentledger/internal/model"
)

// Parser converts an import file into application state.
type Parser interface {
	Parse(r io.Reader) (*model.State, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForPath picks a parser from a file's extension: .json maps to the verbose
// database parser, .txt and .csv to the tab-delimited ledger parser. Returns
// nil for anything else.
func (r *Registry) ForPath(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return r.Get("json")
	case ".txt", ".csv":
		return r.Get("ledger")
	default:
		return nil
	}
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&JSONParser{})
	r.Register(&LedgerParser{})
	return r
}
