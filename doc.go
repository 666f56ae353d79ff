// Package tater provides internationalization (i18n) and localization (l10n)
// for Go applications: it stores per-locale message trees, resolves dotted key
// paths with optional cascading fallback, interpolates named placeholders and
// formats numbers, dates and lists according to locale-specific rules.
//
// The package allows you to:
//
//   - Load messages from a directory, a single file, any fs.FS (including
//     embed.FS) or an in-memory map, in JSON, YAML or TOML, deep-merging each
//     source into an immutable message tree.
//   - Resolve dotted key paths (`login.title`) within a locale, optionally
//     cascading towards shorter paths while preserving the leaf key, with a
//     per-instance resolution cache.
//   - Translate keys with named placeholder substitution (`%{name}` and
//     printf-style `%<name>s`) and registered message functions.
//   - Localize numbers (including arbitrary-precision decimals), dates, times
//     and string lists using delimiters, separators and connectors looked up
//     from the message tree or overridden per call.
//
// # Architecture
//
// At its core the package revolves around the Tater type which delegates
// storage concerns to Source implementations. Sources are thin wrappers that
// return a nested locale -> key -> value map; ready-made sources for directories,
// single files, fs.FS and plain maps are included, but you can supply your own
// by fulfilling the interface. Parsing of source files is handled by the
// Parser interface with JSON, YAML and TOML implementations built in.
//
// The message tree is immutable after each load: Load merges all sources into
// a fresh tree and swaps it in atomically, so values handed to callers are
// never mutated by later loads. The resolution cache is cleared on every load.
//
// # Usage
//
// Basic set-up with a directory of YAML files:
//
//	t, err := tater.New(context.Background(),
//		tater.WithPath("./locales"),
//		tater.WithLocale("en"),
//	)
//	if err != nil {
//		log.Fatalf("failed to init tater: %v", err)
//	}
//
//	msg, err := t.Translate("welcome", tater.M{"name": "John"})
//	// msg == "Welcome, John!"
//
// Localization consults the message tree for formatting configuration:
//
//	// with numeric.delimiter: "," and numeric.separator: "." loaded
//	s, err := t.Localize(1000.2)
//	// s == "1,000.20"
//
// # Error Handling
//
// Lookup misses are not errors: Lookup returns an explicit "not found" bool
// and Translate falls back to a caller-supplied default or a descriptive
// failure string. Semantic failures are typed errors that can be matched with
// errors.As, e.g.:
//
//	var missing *tater.MissingLocalizationFormatError
//	if errors.As(err, &missing) {
//	    // missing.Key names the unresolvable configuration key
//	}
package tater
