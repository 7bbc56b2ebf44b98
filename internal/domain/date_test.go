package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateCalendarDay(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), d)
}

func TestParseDateRFC3339(t *testing.T) {
	d, err := ParseDate("2024-03-05T10:20:30.123456+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 8, 20, 30, 123000000, time.UTC), d)
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "2024-13-01", "01/02/2024"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", in)
	}
}

func TestFormatLogDate(t *testing.T) {
	d := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "Mon Jan 01 2024", FormatLogDate(d))
}

func TestFormatLogDateRoundTrip(t *testing.T) {
	for _, in := range []string{"2024-01-01", "2023-02-28", "2020-02-29", "1999-12-31"} {
		d, err := ParseDate(in)
		require.NoError(t, err)

		back, err := time.Parse(LogDateLayout, FormatLogDate(d))
		require.NoError(t, err)
		assert.Equal(t, in, back.Format(DateLayout))
	}
}

func TestFormatTimestamp(t *testing.T) {
	d := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", FormatTimestamp(d))

	local := time.Date(2024, time.January, 1, 1, 30, 0, 5_000_000, time.FixedZone("CET", 3600))
	assert.Equal(t, "2024-01-01T00:30:00.005Z", FormatTimestamp(local))
}
