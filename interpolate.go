package tater

import (
	"fmt"
	"regexp"
	"strings"
)

// Regexes for the two supported placeholder forms: %{name} substitutes the
// value directly, %<name>verb formats it with the given printf verb
// (flags/width/precision allowed, e.g. %<price>.2f).
var (
	namedPlaceholderRegex = regexp.MustCompile(`%\{([^{}]+)\}`)
	verbPlaceholderRegex  = regexp.MustCompile(`%<([^<>]+)>([-+ 0#]*\d*(?:\.\d+)?[a-zA-Z])`)
)

// Interpolate substitutes named placeholders in s using the supplied options.
//
// With empty options the string is returned unchanged and no formatting is
// attempted, so a literal %{...} token survives. With non-empty options but
// no placeholder marker present the string is likewise returned unchanged.
// This short-circuit is load-bearing for hot paths: translation strings
// without placeholders never pay for a regex pass.
//
// A placeholder referencing a name absent from options fails with
// MissingInterpolationArgumentError.
func Interpolate(s string, options M) (string, error) {
	if len(options) == 0 {
		return s, nil
	}
	if !strings.Contains(s, "%{") && !strings.Contains(s, "%<") {
		return s, nil
	}

	var missing *MissingInterpolationArgumentError

	result := namedPlaceholderRegex.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-1]
		value, ok := options[name]
		if !ok {
			if missing == nil {
				missing = &MissingInterpolationArgumentError{Name: name, Template: s}
			}
			return match
		}
		return fmt.Sprint(value)
	})

	result = verbPlaceholderRegex.ReplaceAllStringFunc(result, func(match string) string {
		groups := verbPlaceholderRegex.FindStringSubmatch(match)
		name, verb := groups[1], groups[2]
		value, ok := options[name]
		if !ok {
			if missing == nil {
				missing = &MissingInterpolationArgumentError{Name: name, Template: s}
			}
			return match
		}
		return fmt.Sprintf("%"+verb, value)
	})

	if missing != nil {
		return "", missing
	}
	return result, nil
}
