package tater

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Localize renders a typed value as a locale-appropriate string, independent
// of key-based translation. It dispatches on the runtime kind of value:
//
//   - strings are returned unchanged
//   - numeric values (integers, floats, decimal.Decimal) are formatted with
//     the locale's thousands delimiter and fraction separator
//   - time.Time and Date values are formatted through a named pattern from
//     "time.formats.*" / "date.formats.*" with locale day/month names
//   - string lists are joined as a sentence using the locale's connectors
//
// Any other kind fails with UnLocalizableObjectError. Formatting
// configuration is resolved from the per-call options first, then from the
// message tree; a value that resolves from neither fails with
// MissingLocalizationFormatError.
func (t *Tater) Localize(value any, opts ...M) (string, error) {
	o := mergeOptions(opts)

	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return t.localizeNumber(strconv.FormatInt(int64(v), 10), o)
	case int8:
		return t.localizeNumber(strconv.FormatInt(int64(v), 10), o)
	case int16:
		return t.localizeNumber(strconv.FormatInt(int64(v), 10), o)
	case int32:
		return t.localizeNumber(strconv.FormatInt(int64(v), 10), o)
	case int64:
		return t.localizeNumber(strconv.FormatInt(v, 10), o)
	case uint:
		return t.localizeNumber(strconv.FormatUint(uint64(v), 10), o)
	case uint8:
		return t.localizeNumber(strconv.FormatUint(uint64(v), 10), o)
	case uint16:
		return t.localizeNumber(strconv.FormatUint(uint64(v), 10), o)
	case uint32:
		return t.localizeNumber(strconv.FormatUint(uint64(v), 10), o)
	case uint64:
		return t.localizeNumber(strconv.FormatUint(v, 10), o)
	case float32:
		return t.localizeNumber(strconv.FormatFloat(float64(v), 'f', -1, 32), o)
	case float64:
		return t.localizeNumber(strconv.FormatFloat(v, 'f', -1, 64), o)
	case decimal.Decimal:
		// Decimal.String is the full non-exponential form.
		return t.localizeNumber(v.String(), o)
	case time.Time:
		return t.localizeTime(v, "time", true, o)
	case Date:
		return t.localizeTime(v.Time(), "date", false, o)
	case []string:
		return t.localizeList(v, o)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(item)
		}
		return t.localizeList(items, o)
	default:
		return "", &UnLocalizableObjectError{Value: value}
	}
}

// localizeNumber formats the canonical decimal string of a number: thousands
// grouping on the integer digits, fraction padded or truncated to the
// requested precision (default 2, 0 drops the fraction entirely).
func (t *Tater) localizeNumber(canonical string, o M) (string, error) {
	delimiter, err := t.formatSetting(o, "delimiter", "numeric.delimiter")
	if err != nil {
		return "", err
	}
	separator, err := t.formatSetting(o, "separator", "numeric.separator")
	if err != nil {
		return "", err
	}
	precision := max(optInt(o, "precision", 2), 0)

	sign := ""
	if strings.HasPrefix(canonical, "-") {
		sign, canonical = "-", canonical[1:]
	}

	integer, fraction, _ := strings.Cut(canonical, ".")
	grouped := groupThousands(integer, delimiter)

	if precision == 0 {
		return sign + grouped, nil
	}

	if len(fraction) > precision {
		fraction = fraction[:precision]
	} else {
		fraction += strings.Repeat("0", precision-len(fraction))
	}

	return sign + grouped + separator + fraction, nil
}

// groupThousands inserts the delimiter every three digits from the right.
func groupThousands(digits, delimiter string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// localizeList joins an ordered list of strings as a sentence. Each connector
// is resolved independently and only when that arity needs it.
func (t *Tater) localizeList(items []string, o M) (string, error) {
	switch len(items) {
	case 0:
		return "", nil
	case 1:
		return items[0], nil
	case 2:
		connector, err := t.formatSetting(o, "two_words_connector", "array.two_words_connector")
		if err != nil {
			return "", err
		}
		return items[0] + connector + items[1], nil
	}

	words, err := t.formatSetting(o, "words_connector", "array.words_connector")
	if err != nil {
		return "", err
	}
	last, err := t.formatSetting(o, "last_word_connector", "array.last_word_connector")
	if err != nil {
		return "", err
	}
	return strings.Join(items[:len(items)-1], words) + last + items[len(items)-1], nil
}

// localizeTime renders a time-like value. The "format" option (default
// "default") names a pattern under "<kind>.formats."; when that lookup
// misses, the format value itself is treated as a strftime-style pattern.
// Locale day/month/meridiem names are substituted first; if the pattern still
// carries % tokens afterwards, the remainder is rendered by strftime.
func (t *Tater) localizeTime(tv time.Time, kind string, hasHour bool, o M) (string, error) {
	format := optString(o, "format", "default")

	pattern := format
	if v, ok := t.localizedValue(o, kind+".formats."+format); ok {
		if s, ok := v.(string); ok {
			pattern = s
		}
	}

	substituted := t.substituteNames(pattern, tv, hasHour, o)
	if !strings.Contains(substituted, "%") {
		return substituted, nil
	}
	return strftime.Format(substituted, tv)
}

// substituteNames replaces %a %A %b %B %p %P and the upcased %^a %^A %^b %^B
// with names from the message tree. A token whose name table is not loaded is
// left in place for the strftime stage.
func (t *Tater) substituteNames(pattern string, tv time.Time, hasHour bool, o M) string {
	var b strings.Builder
	b.Grow(len(pattern))

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}

		upcase := false
		j := i + 1
		if pattern[j] == '^' && j+1 < len(pattern) {
			upcase = true
			j++
		}

		name, ok := t.calendarName(pattern[j], tv, hasHour, upcase, o)
		if !ok {
			b.WriteByte(c)
			continue
		}
		if upcase {
			name = t.upcase(name, o)
		}
		b.WriteString(name)
		i = j
	}

	return b.String()
}

func (t *Tater) calendarName(code byte, tv time.Time, hasHour, upcase bool, o M) (string, bool) {
	switch code {
	case 'a':
		return t.nameFromList(o, "date.abbreviated_days", int(tv.Weekday()))
	case 'A':
		return t.nameFromList(o, "date.days", int(tv.Weekday()))
	case 'b':
		return t.nameFromList(o, "date.abbreviated_months", int(tv.Month())-1)
	case 'B':
		return t.nameFromList(o, "date.months", int(tv.Month())-1)
	case 'p', 'P':
		// Meridiem only applies to values with an hour component, and the
		// upcased marker form does not exist for it.
		if !hasHour || upcase {
			return "", false
		}
		key := "time.am"
		if tv.Hour() >= 12 {
			key = "time.pm"
		}
		v, ok := t.localizedValue(o, key)
		if !ok {
			return "", false
		}
		s, ok := v.(string)
		if !ok {
			return "", false
		}
		if code == 'p' {
			return t.upcase(s, o), true
		}
		return t.downcase(s, o), true
	}
	return "", false
}

// nameFromList resolves a day/month name table and indexes into it. Tables
// decode as []any from JSON/YAML/TOML but []string is accepted for in-memory
// messages.
func (t *Tater) nameFromList(o M, key string, index int) (string, bool) {
	v, ok := t.localizedValue(o, key)
	if !ok {
		return "", false
	}

	switch list := v.(type) {
	case []any:
		if index < 0 || index >= len(list) {
			return "", false
		}
		s, ok := list[index].(string)
		return s, ok
	case []string:
		if index < 0 || index >= len(list) {
			return "", false
		}
		return list[index], true
	}
	return "", false
}

// formatSetting resolves a formatting configuration value: per-call override
// first, then the message tree, else MissingLocalizationFormatError naming
// the unresolvable key.
func (t *Tater) formatSetting(o M, optionKey, lookupKey string) (string, error) {
	if s, ok := o[optionKey].(string); ok {
		return s, nil
	}
	if v, ok := t.localizedValue(o, lookupKey); ok {
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return "", &MissingLocalizationFormatError{Key: lookupKey}
}

// localizedValue looks a key up honoring the per-call locale and cascade
// overrides.
func (t *Tater) localizedValue(o M, key string) (any, bool) {
	locale := optString(o, "locale", t.Locale())
	cascade := optBool(o, "cascade", t.cascade)
	return t.lookup(locale, cascade, key)
}

func (t *Tater) upcase(s string, o M) string {
	return cases.Upper(language.Make(optString(o, "locale", t.Locale()))).String(s)
}

func (t *Tater) downcase(s string, o M) string {
	return cases.Lower(language.Make(optString(o, "locale", t.Locale()))).String(s)
}
