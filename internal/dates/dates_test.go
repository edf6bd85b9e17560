package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/apperr"
)

// Monday, mid-afternoon in a zone east of UTC.
var now = time.Date(2024, time.January, 15, 15, 30, 0, 0, time.FixedZone("CET", 3600))

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-01-15", day(2024, 1, 15)},
		{"  2023-12-31  ", day(2023, 12, 31)},
		{"today", day(2024, 1, 15)},
		{"Today", day(2024, 1, 15)},
		{"yesterday", day(2024, 1, 14)},
		{"tomorrow", day(2024, 1, 16)},
		{"3 days ago", day(2024, 1, 12)},
		{"1 day ago", day(2024, 1, 14)},
		{"next monday", day(2024, 1, 22)},
		{"next Friday", day(2024, 1, 19)},
		{"next sun", day(2024, 1, 21)},
		{"last monday", day(2024, 1, 8)},
		{"last sunday", day(2024, 1, 14)},
		{"last  Wednesday", day(2024, 1, 10)},
		{"January 15, 2024", day(2024, 1, 15)},
		{"01/15/2024", day(2024, 1, 15)},
		{"2024-02-29 10:45:00", day(2024, 2, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "xyzzy", "next blursday", "2024", "1710000000", "20240115"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input, now)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestDay(t *testing.T) {
	got := Day(now)

	assert.Equal(t, day(2024, 1, 15), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2024-01-15 (Mon)", Format(day(2024, 1, 15)))
	assert.Equal(t, "15.01.2024", FormatWith(day(2024, 1, 15), "02.01.2006"))
	assert.Equal(t, "2024-01-15 (Mon)", FormatWith(day(2024, 1, 15), ""))
}
