package importer

import (
	"fmt"
	"io"

	"github.com/rentledger-dev/rentledger/internal/codec"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// JSONParser imports the verbose database export.
type JSONParser struct{}

// Format returns the parser name.
func (p *JSONParser) Format() string { return "json" }

// Parse reads a verbose JSON database.
func (p *JSONParser) Parse(r io.Reader) (*model.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading database: %w", err)
	}
	return codec.Import(data)
}
