package tater_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/tater"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDeepMerge(t *testing.T) {
	tr := newTater(t, tater.WithMessages(map[string]any{
		"en": map[string]any{
			"login": map[string]any{"title": "Login", "hint": "Use your email"},
		},
	}))

	require.NoError(t, tr.Load(context.Background(), tater.Messages(map[string]any{
		"en": map[string]any{
			"login": map[string]any{"title": "Sign in"},
		},
	})))

	// Scalar conflict: last loaded wins.
	value, ok := tr.Lookup("login.title")
	require.True(t, ok)
	assert.Equal(t, "Sign in", value)

	// Sibling keys from the earlier load survive the recursive merge.
	value, ok = tr.Lookup("login.hint")
	require.True(t, ok)
	assert.Equal(t, "Use your email", value)
}

func TestLoadScalarReplacesMapping(t *testing.T) {
	tr := newTater(t, tater.WithMessages(map[string]any{
		"en": map[string]any{
			"thing": map[string]any{"a": "1"},
		},
	}))

	require.NoError(t, tr.Load(context.Background(), tater.Messages(map[string]any{
		"en": map[string]any{"thing": "flat"},
	})))

	value, ok := tr.Lookup("thing")
	require.True(t, ok)
	assert.Equal(t, "flat", value)
}

func TestLoadStringifiesKeys(t *testing.T) {
	tr := newTater(t, tater.WithMessages(map[string]any{
		"en": map[any]any{
			1:      "one",
			"nest": map[any]any{true: "yes"},
		},
	}))

	value, ok := tr.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "one", value)

	value, ok = tr.Lookup("nest.true")
	require.True(t, ok)
	assert.Equal(t, "yes", value)
}

func TestLoadUnknownFunctionFails(t *testing.T) {
	_, err := tater.New(context.Background(), tater.WithMessages(map[string]any{
		"en": map[string]any{
			"greeting": map[string]any{"$func": "nobody"},
		},
	}))

	require.ErrorIs(t, err, tater.ErrUnknownFunction)
}

func TestLoadFailureLeavesTreeUntouched(t *testing.T) {
	tr := newTater(t, tater.WithMessages(testMessages()))

	err := tr.Load(context.Background(), tater.Messages(map[string]any{
		"en": map[string]any{"bad": map[string]any{"$func": "nobody"}},
	}))
	require.Error(t, err)

	assert.Equal(t, []string{"en", "fr"}, tr.Available())
	value, ok := tr.Lookup("hello")
	require.True(t, ok)
	assert.Equal(t, "Hello", value)
	_, ok = tr.Lookup("bad")
	assert.False(t, ok)
}
