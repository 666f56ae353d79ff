package tater

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Source supplies a nested messages map with locale identifiers as top-level
// keys. Tater.Load deep-merges each source into the message tree in order.
type Source interface {
	Load(ctx context.Context) (map[string]any, error)
}

// Messages returns a source backed by an in-memory nested map. The map may
// contain MessageFunc leaf values for callable messages.
func Messages(messages map[string]any) Source {
	return &mapSource{messages: messages}
}

type mapSource struct {
	messages map[string]any
}

func (s *mapSource) Load(_ context.Context) (map[string]any, error) {
	if s.messages == nil {
		return make(map[string]any), nil
	}
	return s.messages, nil
}

// File returns a source backed by a single message file. The parser is chosen
// by file extension from the given parsers; when none are given, the parser
// set of the loading instance is used, else the built-in JSON, YAML and TOML
// parsers.
func File(filePath string, parsers ...Parser) Source {
	return &fileSource{path: filePath, parsers: parsers}
}

type fileSource struct {
	path    string
	parsers []Parser
}

func (s *fileSource) bindParsers(parsers []Parser) {
	if len(s.parsers) == 0 {
		s.parsers = parsers
	}
}

func (s *fileSource) Load(ctx context.Context) (map[string]any, error) {
	parser := parserFor(parserSet(s.parsers), s.path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoParserForFile, s.path)
	}

	content, err := readWithContext(ctx, func() ([]byte, error) {
		return os.ReadFile(s.path)
	})
	if err != nil {
		return nil, err
	}

	messages, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFailedToParseFile, s.path, err)
	}
	return messages, nil
}

// Dir returns a source backed by a directory of message files. Files are
// loaded in sorted name order; files no parser supports are skipped. A read
// or parse failure propagates to the caller of Load.
func Dir(dirPath string, parsers ...Parser) Source {
	return &dirSource{path: dirPath, parsers: parsers}
}

type dirSource struct {
	path    string
	parsers []Parser
}

func (s *dirSource) bindParsers(parsers []Parser) {
	if len(s.parsers) == 0 {
		s.parsers = parsers
	}
}

func (s *dirSource) Load(ctx context.Context) (map[string]any, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	merged := make(map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := parserFor(parserSet(s.parsers), entry.Name())
		if parser == nil {
			continue
		}

		filePath := filepath.Join(s.path, entry.Name())
		content, err := readWithContext(ctx, func() ([]byte, error) {
			return os.ReadFile(filePath)
		})
		if err != nil {
			return nil, err
		}

		messages, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrFailedToParseFile, filePath, err)
		}

		merged = deepMerge(merged, messages)
	}

	return merged, nil
}

// FS returns a source backed by a directory inside any fs.FS, including an
// embed.FS. Semantics match Dir.
func FS(fsys fs.FS, dirPath string, parsers ...Parser) Source {
	return &fsSource{fsys: fsys, dir: dirPath, parsers: parsers}
}

type fsSource struct {
	fsys    fs.FS
	dir     string
	parsers []Parser
}

func (s *fsSource) bindParsers(parsers []Parser) {
	if len(s.parsers) == 0 {
		s.parsers = parsers
	}
}

func (s *fsSource) Load(ctx context.Context) (map[string]any, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	merged := make(map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := parserFor(parserSet(s.parsers), entry.Name())
		if parser == nil {
			continue
		}

		filePath := path.Join(s.dir, entry.Name())
		content, err := readWithContext(ctx, func() ([]byte, error) {
			return fs.ReadFile(s.fsys, filePath)
		})
		if err != nil {
			return nil, err
		}

		messages, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrFailedToParseFile, filePath, err)
		}

		merged = deepMerge(merged, messages)
	}

	return merged, nil
}

// parserBinder lets Tater.Load hand its parser set to sources that were
// created without explicit parsers, so parsers registered via WithParser are
// consulted by File, Dir and FS sources too.
type parserBinder interface {
	bindParsers(parsers []Parser)
}

func parserSet(parsers []Parser) []Parser {
	if len(parsers) == 0 {
		return defaultParsers()
	}
	return parsers
}

// readWithContext runs a blocking read in a goroutine so the load path can
// honor context cancellation.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}
