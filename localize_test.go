package tater_test

import (
	"testing"
	"time"

	"github.com/dmitrymomot/tater"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localizeMessages() map[string]any {
	return map[string]any{
		"en": map[string]any{
			"numeric": map[string]any{
				"delimiter": ",",
				"separator": ".",
			},
			"array": map[string]any{
				"two_words_connector": " and ",
				"words_connector":     ", ",
				"last_word_connector": ", and ",
			},
			"time": map[string]any{
				"am": "am",
				"pm": "pm",
			},
		},
		"fr": map[string]any{
			"date": map[string]any{
				"formats": map[string]any{
					"day": "%A",
				},
				"days":               []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
				"abbreviated_days":   []string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
				"months":             []string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
				"abbreviated_months": []string{"jan", "fév", "mar", "avr", "mai", "juin", "juil", "août", "sep", "oct", "nov", "déc"},
			},
		},
	}
}

func TestLocalizeString(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	got, err := tr.Localize("as-is")
	require.NoError(t, err)
	assert.Equal(t, "as-is", got)
}

func TestLocalizeNumber(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	got, err := tr.Localize(1000.2)
	require.NoError(t, err)
	assert.Equal(t, "1,000.20", got)

	got, err = tr.Localize(1000.2, tater.M{"delimiter": "_", "separator": "+"})
	require.NoError(t, err)
	assert.Equal(t, "1_000+20", got)
}

func TestLocalizeNumberPrecision(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	got, err := tr.Localize(1234567.891, tater.M{"precision": 0})
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", got)

	// Fraction is truncated, not rounded.
	got, err = tr.Localize(1.999, tater.M{"precision": 2})
	require.NoError(t, err)
	assert.Equal(t, "1.99", got)

	got, err = tr.Localize(1.5, tater.M{"precision": 4})
	require.NoError(t, err)
	assert.Equal(t, "1.5000", got)

	// A negative precision is treated the same as zero.
	got, err = tr.Localize(1234567.891, tater.M{"precision": -3})
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", got)
}

func TestLocalizeNumberKinds(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	got, err := tr.Localize(1000000)
	require.NoError(t, err)
	assert.Equal(t, "1,000,000.00", got)

	got, err = tr.Localize(int64(-4200))
	require.NoError(t, err)
	assert.Equal(t, "-4,200.00", got)

	got, err = tr.Localize(uint32(65536))
	require.NoError(t, err)
	assert.Equal(t, "65,536.00", got)

	got, err = tr.Localize(uint8(200))
	require.NoError(t, err)
	assert.Equal(t, "200.00", got)

	got, err = tr.Localize(decimal.RequireFromString("123456789.987654321"))
	require.NoError(t, err)
	assert.Equal(t, "123,456,789.98", got)
}

func TestLocalizeNumberMissingFormat(t *testing.T) {
	tr := newTater(t, tater.WithMessages(map[string]any{
		"en": map[string]any{"hello": "Hello"},
	}))

	_, err := tr.Localize(1000.2)
	require.Error(t, err)

	var missing *tater.MissingLocalizationFormatError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "numeric.delimiter", missing.Key)
}

func TestLocalizeArray(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	got, err := tr.Localize([]string{})
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = tr.Localize([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	got, err = tr.Localize([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a and b", got)

	got, err = tr.Localize([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "a, b, and c", got)
}

func TestLocalizeArrayOverrides(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	got, err := tr.Localize([]string{"a", "b"}, tater.M{"two_words_connector": " & "})
	require.NoError(t, err)
	assert.Equal(t, "a & b", got)

	got, err = tr.Localize([]string{"a", "b", "c"}, tater.M{"words_connector": "; ", "last_word_connector": "; finally "})
	require.NoError(t, err)
	assert.Equal(t, "a; b; finally c", got)
}

func TestLocalizeArrayMissingConnector(t *testing.T) {
	tr := newTater(t, tater.WithMessages(map[string]any{
		"en": map[string]any{"hello": "Hello"},
	}))

	_, err := tr.Localize([]string{"a", "b"})
	var missing *tater.MissingLocalizationFormatError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "array.two_words_connector", missing.Key)

	_, err = tr.Localize([]string{"a", "b", "c"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "array.words_connector", missing.Key)
}

func TestLocalizeDate(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	// 1970-01-01 is a Thursday.
	got, err := tr.Localize(tater.NewDate(1970, time.January, 1), tater.M{"format": "day", "locale": "fr"})
	require.NoError(t, err)
	assert.Equal(t, "jeudi", got)
}

func TestLocalizeDateTokens(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	date := tater.NewDate(1970, time.January, 1)

	got, err := tr.Localize(date, tater.M{"format": "%A %d %B", "locale": "fr"})
	require.NoError(t, err)
	assert.Equal(t, "jeudi 01 janvier", got)

	got, err = tr.Localize(date, tater.M{"format": "%^a %^B", "locale": "fr"})
	require.NoError(t, err)
	assert.Equal(t, "JEU JANVIER", got)
}

func TestLocalizeTime(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	morning := time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 5, 21, 30, 0, 0, time.UTC)

	got, err := tr.Localize(morning, tater.M{"format": "%H:%M"})
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	got, err = tr.Localize(morning, tater.M{"format": "%P"})
	require.NoError(t, err)
	assert.Equal(t, "am", got)

	got, err = tr.Localize(evening, tater.M{"format": "%p"})
	require.NoError(t, err)
	assert.Equal(t, "PM", got)
}

func TestLocalizeTimeLiteralFormatWithoutTokens(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	// An unknown format name with no % tokens comes back as-is.
	got, err := tr.Localize(time.Now(), tater.M{"format": "someday"})
	require.NoError(t, err)
	assert.Equal(t, "someday", got)
}

func TestLocalizeUnsupportedKind(t *testing.T) {
	tr := newTater(t, tater.WithMessages(localizeMessages()))

	_, err := tr.Localize(struct{}{})
	require.Error(t, err)

	var unloc *tater.UnLocalizableObjectError
	require.ErrorAs(t, err, &unloc)
}
