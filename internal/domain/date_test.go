package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLocalMidnight(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)

	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, time.Local, d.Location())
	assert.Equal(t, "2024-03-05", d.String())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("05/03/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-12-31")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d, back)
}

func TestDateScanVariants(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-03-05"))
	assert.Equal(t, "2024-03-05", d.String())

	require.NoError(t, d.Scan([]byte("2023-07-01")))
	assert.Equal(t, "2023-07-01", d.String())

	// pgx hands DATE columns over as midnight time.Time values.
	require.NoError(t, d.Scan(time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2022-01-15", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateValueScanSymmetric(t *testing.T) {
	orig, err := ParseDate("2024-03-05")
	require.NoError(t, err)

	v, err := orig.Value()
	require.NoError(t, err)

	var back Date
	require.NoError(t, back.Scan(v))
	assert.Equal(t, orig.String(), back.String())
}

func TestDateInMonth(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	first := NewDate(2024, time.March, 1)
	last := NewDate(2024, time.March, 31)
	before := NewDate(2024, time.February, 29)
	after := NewDate(2024, time.April, 1)

	assert.True(t, first.InMonth(start, end))
	assert.True(t, last.InMonth(start, end))
	assert.False(t, before.InMonth(start, end))
	assert.False(t, after.InMonth(start, end))
}
