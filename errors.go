package tater

import (
	"errors"
	"fmt"
)

// Package errors use descriptive messages for debugging while avoiding
// implementation details. Context cancellation errors are separated to allow
// proper error handling in timeouts.
var (
	// File operations
	ErrLoadingFileCancelled = errors.New("loading message file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read message file")
	ErrFailedToParseFile    = errors.New("failed to parse message file")
	ErrNoParserForFile      = errors.New("no parser supports message file")

	// Directory operations
	ErrFailedToReadDirectory = errors.New("failed to read message directory")

	// Parser operations
	ErrParsingCancelled  = errors.New("parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseTOML = errors.New("failed to parse TOML content")

	// Message tree normalization
	ErrUnknownFunction = errors.New("message refers to an unregistered function")
)

// MissingLocalizationFormatError indicates that a required formatting
// configuration value (numeric delimiter/separator, array connectors) could
// not be resolved from the per-call options or the message tree.
type MissingLocalizationFormatError struct {
	Key string
}

func (e *MissingLocalizationFormatError) Error() string {
	return fmt.Sprintf("missing localization format: %s", e.Key)
}

// UnLocalizableObjectError indicates that Localize received a value of an
// unsupported kind.
type UnLocalizableObjectError struct {
	Value any
}

func (e *UnLocalizableObjectError) Error() string {
	return fmt.Sprintf("unable to localize value of type %T", e.Value)
}

// MissingInterpolationArgumentError indicates that a string referenced a
// placeholder name with no corresponding entry in the supplied options.
type MissingInterpolationArgumentError struct {
	Name     string
	Template string
}

func (e *MissingInterpolationArgumentError) Error() string {
	return fmt.Sprintf("missing interpolation argument %q in %q", e.Name, e.Template)
}
