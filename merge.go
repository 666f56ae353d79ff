package tater

import (
	"fmt"
	"maps"
)

// funcRefKey marks a decoded mapping that refers to a registered message
// function by name: {"$func": "name"}.
const funcRefKey = "$func"

// normalize recursively stringifies mapping keys, converts decoder output
// shapes (map[any]any, map[string]string) to map[string]any and binds
// {"$func": "name"} references to registered message functions. The result
// shares no mutable containers with the input.
func (t *Tater) normalize(raw map[string]any) (map[string]any, error) {
	normalized, err := t.normalizeValue(raw)
	if err != nil {
		return nil, err
	}
	return normalized.(map[string]any), nil
}

func (t *Tater) normalizeValue(value any) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		if fn, ok, err := t.resolveFuncRef(v); ok || err != nil {
			return fn, err
		}
		out := make(map[string]any, len(v))
		for key, item := range v {
			normalized, err := t.normalizeValue(item)
			if err != nil {
				return nil, err
			}
			out[key] = normalized
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			normalized, err := t.normalizeValue(item)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(key)] = normalized
		}
		if fn, ok, err := t.resolveFuncRef(out); ok || err != nil {
			return fn, err
		}
		return out, nil
	case map[string]string:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = item
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			normalized, err := t.normalizeValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = normalized
		}
		return out, nil
	default:
		// Strings, numbers, bools and MessageFunc leaves pass through.
		return v, nil
	}
}

// resolveFuncRef binds a {"$func": "name"} mapping to the registered
// function. An unknown name is a load error, not a silent passthrough.
func (t *Tater) resolveFuncRef(m map[string]any) (MessageFunc, bool, error) {
	if len(m) != 1 {
		return nil, false, nil
	}
	name, ok := m[funcRefKey].(string)
	if !ok {
		return nil, false, nil
	}
	fn, ok := t.funcs[name]
	if !ok {
		return nil, true, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	return fn, true, nil
}

// deepMerge combines two message trees into a fresh map: when both sides at a
// key are mappings they merge recursively, otherwise b wins. Neither input is
// mutated; untouched subtrees are shared, which is safe because loaded trees
// are never modified in place.
func deepMerge(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)

	for key, value := range b {
		existing, ok := out[key].(map[string]any)
		if !ok {
			out[key] = value
			continue
		}
		incoming, ok := value.(map[string]any)
		if !ok {
			out[key] = value
			continue
		}
		out[key] = deepMerge(existing, incoming)
	}

	return out
}
