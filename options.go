package tater

import (
	"io"
	"log/slog"
)

// Option is a function that configures a Tater instance during construction.
type Option func(*Tater)

// WithPath queues a directory of message files to be loaded before New
// returns. Files are parsed with the instance's parser set.
func WithPath(path string) Option {
	return func(t *Tater) {
		if path != "" {
			t.initial = append(t.initial, Dir(path))
		}
	}
}

// WithMessages queues an in-memory nested messages map to be loaded before
// New returns. The map may contain MessageFunc leaf values.
func WithMessages(messages map[string]any) Option {
	return func(t *Tater) {
		if len(messages) > 0 {
			t.initial = append(t.initial, Messages(messages))
		}
	}
}

// WithSource queues an arbitrary source to be loaded before New returns.
func WithSource(source Source) Option {
	return func(t *Tater) {
		if source != nil {
			t.initial = append(t.initial, source)
		}
	}
}

// WithLocale sets the initial active locale. Default is "en".
func WithLocale(locale string) Option {
	return func(t *Tater) {
		if locale != "" {
			t.locale = locale
		}
	}
}

// WithCascade sets the instance-level default for cascading lookups.
// Default is false.
func WithCascade(cascade bool) Option {
	return func(t *Tater) {
		t.cascade = cascade
	}
}

// WithParser registers additional source file parsers alongside the built-in
// JSON, YAML and TOML parsers. Custom parsers take precedence for the
// extensions they support.
func WithParser(parsers ...Parser) Option {
	return func(t *Tater) {
		for _, p := range parsers {
			if p != nil {
				t.parsers = append([]Parser{p}, t.parsers...)
			}
		}
	}
}

// WithFunction registers a named message function. A decoded source leaf of
// the shape {"$func": "name"} binds to the registered function at load time.
func WithFunction(name string, fn MessageFunc) Option {
	return func(t *Tater) {
		if name != "" && fn != nil {
			t.funcs[name] = fn
		}
	}
}

// WithLogger provides a customizable logger for the instance.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tater) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingLogging controls whether failed translations are logged.
// Default is false to avoid excessive logging.
func WithMissingLogging(log bool) Option {
	return func(t *Tater) {
		t.missingLog = log
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(t *Tater) {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		t.missingLog = false
	}
}
