package tater

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// DefaultLocale is the default active locale used when no locale is specified.
const DefaultLocale = "en"

// M is a per-call options map. Reserved keys (locale, locales, cascade,
// default, format, delimiter, separator, precision, two_words_connector,
// words_connector, last_word_connector) are consumed by the library; all
// remaining entries are handed to the interpolator or a message function.
type M map[string]any

// MessageFunc is a callable message leaf. It receives the key being
// translated and the per-call options with reserved keys removed, and returns
// the rendered string.
type MessageFunc func(key string, options M) string

// Reserved per-call option keys, stripped before interpolation or message
// function invocation.
var reservedOptionKeys = []string{
	"locale", "locales", "cascade", "default", "format",
	"delimiter", "separator", "precision",
	"two_words_connector", "words_connector", "last_word_connector",
}

// Tater stores per-locale message trees and resolves, translates and
// localizes against them. The message tree is replaced wholesale on every
// Load, so values handed out to callers are never mutated afterwards.
type Tater struct {
	messages   map[string]any
	cache      map[cacheKey]cacheEntry
	locales    []string
	locale     string
	cascade    bool
	parsers    []Parser
	funcs      map[string]MessageFunc
	logger     *slog.Logger
	missingLog bool
	mu         sync.RWMutex

	// initial sources collected from construction options, consumed by New.
	initial []Source
}

// New creates a new Tater instance with the given options. Sources supplied
// via WithPath or WithMessages are loaded before New returns.
func New(ctx context.Context, opts ...Option) (*Tater, error) {
	t := &Tater{
		messages: make(map[string]any),
		cache:    make(map[cacheKey]cacheEntry),
		locale:   DefaultLocale,
		parsers:  defaultParsers(),
		funcs:    make(map[string]MessageFunc),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}

	for _, opt := range opts {
		opt(t)
	}

	sources := t.initial
	t.initial = nil
	if err := t.Load(ctx, sources...); err != nil {
		return nil, err
	}

	return t, nil
}

// Load merges messages from the given sources into the message tree, in
// order. When both sides of a merge at a given key are mappings they merge
// recursively; otherwise the later source wins. Keys are stringified
// recursively. The merged tree replaces the previous one atomically and the
// resolution cache is cleared. Calling Load with no sources is a no-op.
//
// A failure reading or parsing a source is returned as-is (wrapping the
// collaborator's native error) and leaves the current tree untouched.
func (t *Tater) Load(ctx context.Context, sources ...Source) error {
	if len(sources) == 0 {
		return nil
	}

	t.mu.RLock()
	merged := t.messages
	t.mu.RUnlock()

	for _, source := range sources {
		if binder, ok := source.(parserBinder); ok {
			binder.bindParsers(t.parsers)
		}

		raw, err := source.Load(ctx)
		if err != nil {
			return err
		}

		normalized, err := t.normalize(raw)
		if err != nil {
			return err
		}

		merged = deepMerge(merged, normalized)
	}

	locales := make([]string, 0, len(merged))
	for locale := range merged {
		locales = append(locales, locale)
	}
	slices.Sort(locales)

	t.mu.Lock()
	t.messages = merged
	t.locales = locales
	t.cache = make(map[cacheKey]cacheEntry)
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "Messages loaded", "locales", locales)
	return nil
}

// Available returns the sorted list of locales currently present in the
// message tree.
func (t *Tater) Available() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.locales)
}

// IsAvailable reports whether the given locale is present in the message tree.
func (t *Tater) IsAvailable(locale string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Contains(t.locales, locale)
}

// Locale returns the active locale.
func (t *Tater) Locale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.locale
}

// SetLocale sets the active locale if it is available; otherwise the active
// locale is left unchanged.
func (t *Tater) SetLocale(locale string) {
	if !t.IsAvailable(locale) {
		return
	}
	t.mu.Lock()
	t.locale = locale
	t.mu.Unlock()
}

// Cascades reports the instance-level default cascade setting.
func (t *Tater) Cascades() bool {
	return t.cascade
}

// Includes reports whether the key resolves in any of the candidate locales
// ("locale" or "locales" option, else the active locale), honoring a
// "cascade" override.
func (t *Tater) Includes(key string, opts ...M) bool {
	o := mergeOptions(opts)
	cascade := optBool(o, "cascade", t.cascade)

	for _, locale := range t.requestedLocales(o) {
		if _, ok := t.lookup(locale, cascade, key); ok {
			return true
		}
	}
	return false
}

// Translate resolves the key against the candidate locales and renders the
// result. A resolved MessageFunc is invoked with the key and the options with
// reserved keys removed; a resolved string is run through Interpolate the
// same way. When nothing resolves, the "default" option is returned if
// supplied, else a descriptive failure string.
//
// Example:
//
//	// With message "welcome": "Welcome, %{name}!"
//	msg, err := t.Translate("welcome", tater.M{"name": "John"})
//	// Returns: "Welcome, John!"
func (t *Tater) Translate(key string, opts ...M) (string, error) {
	o := mergeOptions(opts)
	cascade := optBool(o, "cascade", t.cascade)
	candidates := t.candidateLocales(o)

	for _, locale := range candidates {
		value, ok := t.lookup(locale, cascade, key)
		if !ok {
			continue
		}

		switch v := value.(type) {
		case string:
			return Interpolate(v, stripReserved(o))
		case MessageFunc:
			return v(key, stripReserved(o)), nil
		default:
			return fmt.Sprint(v), nil
		}
	}

	if t.missingLog {
		t.logger.Warn("Translation not found", "locales", candidates, "key", key)
	}

	if fallback, ok := o["default"]; ok {
		if s, ok := fallback.(string); ok {
			return s, nil
		}
		return fmt.Sprint(fallback), nil
	}

	return fmt.Sprintf("Tater lookup failed: %s.%s", strings.Join(candidates, ","), key), nil
}

// requestedLocales returns the locales named by the options, or the active
// locale when none are.
func (t *Tater) requestedLocales(o M) []string {
	if locale, ok := o["locale"].(string); ok {
		return []string{locale}
	}
	if locales := stringList(o["locales"]); len(locales) > 0 {
		return locales
	}
	return []string{t.Locale()}
}

// candidateLocales is requestedLocales with the active locale appended as the
// final fallback when an explicit list does not already contain it.
func (t *Tater) candidateLocales(o M) []string {
	if locale, ok := o["locale"].(string); ok {
		return []string{locale}
	}
	if locales := stringList(o["locales"]); len(locales) > 0 {
		if active := t.Locale(); !slices.Contains(locales, active) {
			locales = append(locales, active)
		}
		return locales
	}
	return []string{t.Locale()}
}

func mergeOptions(opts []M) M {
	switch len(opts) {
	case 0:
		return M{}
	case 1:
		return opts[0]
	}
	merged := make(M)
	for _, o := range opts {
		for k, v := range o {
			merged[k] = v
		}
	}
	return merged
}

func stripReserved(o M) M {
	clean := make(M, len(o))
	for k, v := range o {
		if !slices.Contains(reservedOptionKeys, k) {
			clean[k] = v
		}
	}
	return clean
}

func optBool(o M, key string, fallback bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return fallback
}

func optString(o M, key, fallback string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return fallback
}

func optInt(o M, key string, fallback int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}

// stringList accepts both []string and []any-of-strings, the two shapes an
// options map realistically carries after decoding.
func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return slices.Clone(list)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
