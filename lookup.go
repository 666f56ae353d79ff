package tater

import (
	"slices"
	"strings"
)

// cacheKey identifies a resolution: every (locale, cascade, key) triple
// resolves the same way until the next load.
type cacheKey struct {
	locale  string
	key     string
	cascade bool
}

// cacheEntry stores a resolution result, including explicit misses, so repeat
// lookups are map hits either way.
type cacheEntry struct {
	value any
	found bool
}

// Lookup resolves a dotted key path within a locale's subtree and returns
// whatever value is stored there: a string, a MessageFunc, a list or a nested
// map. The boolean reports whether the path resolved; a missing key or an
// absent locale is not an error.
//
// Options: "locale" overrides the active locale, "cascade" overrides the
// instance default. With cascading enabled a miss retries with the
// second-to-last path segment removed, preserving the leaf, until the path is
// down to the locale plus one segment:
//
//	login.special.description -> login.description -> description
func (t *Tater) Lookup(key string, opts ...M) (any, bool) {
	o := mergeOptions(opts)
	locale := optString(o, "locale", t.Locale())
	cascade := optBool(o, "cascade", t.cascade)
	return t.lookup(locale, cascade, key)
}

func (t *Tater) lookup(locale string, cascade bool, key string) (any, bool) {
	ck := cacheKey{locale: locale, key: key, cascade: cascade}

	t.mu.RLock()
	if entry, ok := t.cache[ck]; ok {
		t.mu.RUnlock()
		return entry.value, entry.found
	}
	root := t.messages
	t.mu.RUnlock()

	segments := strings.Split(key, ".")
	value, found := walk(root, locale, segments)

	for !found && cascade && len(segments) > 1 {
		// Drop the second-to-last segment, keep the leaf.
		segments = append(slices.Clone(segments[:len(segments)-2]), segments[len(segments)-1])
		value, found = walk(root, locale, segments)
	}

	t.mu.Lock()
	t.cache[ck] = cacheEntry{value: value, found: found}
	t.mu.Unlock()

	return value, found
}

// walk indexes the tree by locale then each path segment in turn. Any absent
// segment, or a non-mapping where another segment remains, is a miss.
func walk(root map[string]any, locale string, segments []string) (any, bool) {
	current, ok := root[locale]
	if !ok {
		return nil, false
	}

	for _, segment := range segments {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
