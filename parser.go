package tater

import (
	"context"
	"strings"
)

// Parser parses message file content into a nested map. The outer map is
// keyed by locale identifier, matching the message tree shape.
type Parser interface {
	// Parse processes the given content and returns a nested mapping with
	// locale identifiers as top-level keys.
	Parse(ctx context.Context, content []byte) (map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file
	// extension. The extension may or may not include a leading dot (both
	// "json" and ".json" are valid).
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a built-in parser based on the file extension, or
// nil when the extension is not recognized.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(fileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	case "toml":
		return NewTOMLParser()
	default:
		return nil
	}
}

func defaultParsers() []Parser {
	return []Parser{NewJSONParser(), NewYAMLParser(), NewTOMLParser()}
}

func parserFor(parsers []Parser, filename string) Parser {
	ext := fileExtension(filename)
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

func fileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
