// Package dates turns free-text date input into calendar dates.
//
// Reading sessions are stored as whole days, so every value returned here
// is midnight UTC of the calendar day the user meant.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/mrlokans/bookshelf/internal/apperr"
)

// DisplayLayout is the default layout used by Format.
const DisplayLayout = "2006-01-02 (Mon)"

var (
	daysAgo   = regexp.MustCompile(`^(\d{1,4}) days? ago$`)
	allDigits = regexp.MustCompile(`^\d+$`)
)

// Day truncates t to midnight UTC of its own calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current local calendar day.
func Today() time.Time {
	return Day(time.Now())
}

// Parse interprets input relative to now. Besides absolute dates in any
// layout dateparse understands it accepts today, yesterday, tomorrow,
// "N days ago", "next <weekday>" and "last <weekday>".
func Parse(input string, now time.Time) (time.Time, error) {
	text := strings.ToLower(strings.Join(strings.Fields(input), " "))
	if text == "" {
		return time.Time{}, apperr.Validation("date is required")
	}

	today := Day(now)
	switch text {
	case "today", "now":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if m := daysAgo.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return today.AddDate(0, 0, -n), nil
	}

	if rest, ok := strings.CutPrefix(text, "next "); ok {
		if wd, ok := parseWeekday(rest); ok {
			return nextWeekday(today, wd), nil
		}
	}
	if rest, ok := strings.CutPrefix(text, "last "); ok {
		if wd, ok := parseWeekday(rest); ok {
			return lastWeekday(today, wd), nil
		}
	}

	if t, err := time.Parse(time.DateOnly, text); err == nil {
		return t, nil
	}

	// dateparse reads bare numbers as a year or a unix timestamp and fills in
	// the rest; a reading date needs the day spelled out.
	if allDigits.MatchString(text) {
		return time.Time{}, apperr.Validation("cannot understand date %q, use YYYY-MM-DD", strings.TrimSpace(input))
	}

	t, err := dateparse.ParseIn(strings.TrimSpace(input), time.UTC)
	if err != nil {
		return time.Time{}, apperr.Validation("cannot understand date %q", strings.TrimSpace(input))
	}
	return Day(t), nil
}

// Format renders a date with DisplayLayout.
func Format(t time.Time) string {
	return FormatWith(t, DisplayLayout)
}

// FormatWith renders a date with layout, falling back to DisplayLayout when
// layout is empty.
func FormatWith(t time.Time, layout string) string {
	if layout == "" {
		layout = DisplayLayout
	}
	return t.Format(layout)
}

func parseWeekday(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || s == name[:3] {
			return wd, true
		}
	}
	return 0, false
}

// nextWeekday returns the first wd strictly after today.
func nextWeekday(today time.Time, wd time.Weekday) time.Time {
	offset := (int(wd) - int(today.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return today.AddDate(0, 0, offset)
}

// lastWeekday returns the most recent wd strictly before today.
func lastWeekday(today time.Time, wd time.Weekday) time.Time {
	offset := (int(today.Weekday()) - int(wd) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return today.AddDate(0, 0, -offset)
}
