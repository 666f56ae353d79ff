package tater

import (
	"context"
	"errors"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLParser implements the Parser interface for TOML files.
type TOMLParser struct{}

// NewTOMLParser creates a new TOMLParser instance.
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// Parse parses TOML content and returns a nested messages map.
func (p *TOMLParser) Parse(ctx context.Context, content []byte) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}

	return data, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "toml")
}
