package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spendsight-dev/spendsight/internal/model"
)

// Parser converts an uploaded statement file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers keyed by format.
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

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&DelimitedParser{Name: "csv", Comma: ','})
	r.Register(&DelimitedParser{Name: "tsv", Comma: '\t'})
	r.Register(&XLSXParser{})
	return r
}

// formatForExt maps file extensions to registered formats. .txt statements
// are treated as tab-separated.
var formatForExt = map[string]string{
	".csv":  "csv",
	".tsv":  "tsv",
	".txt":  "tsv",
	".xlsx": "xlsx",
}

// ParseFile opens path, picks a parser by extension, and returns the rows.
func ParseFile(reg *Registry, path string) ([]model.Transaction, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := formatForExt[ext]
	if !ok {
		return nil, &UnsupportedTypeError{Ext: ext}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := reg.Get(format).Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return txns, nil
}
