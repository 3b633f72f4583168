package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatError reports a field value that could not be parsed into its
// declared type. It is scoped to the one record being built; builders skip
// the record and continue with the next fragment.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Value, e.Reason)
}

// placeholders are the texts the site uses in place of a missing value.
// Matching is case-insensitive.
var placeholders = map[string]bool{
	"":    true,
	"-":   true,
	"–":   true,
	"—":   true,
	"dnf": true,
	"dns": true,
	"dsq": true,
	"otl": true,
	"n/a": true,
}

// IsPlaceholder reports whether text stands in for a missing value.
func IsPlaceholder(text string) bool {
	return placeholders[strings.ToLower(strings.TrimSpace(text))]
}

// ParseDuration parses a race time into a duration.
//
// Accepted forms: "1:02:03.400" (H:MM:SS.sss), "42:07.123" (MM:SS.sss),
// "57.8" (bare seconds), and the same with a leading "+" as used in gap
// columns. Placeholder text returns (nil, nil). Anything else returns a
// *FormatError.
func ParseDuration(text string) (*time.Duration, error) {
	trimmed := strings.TrimSpace(text)
	if IsPlaceholder(trimmed) {
		return nil, nil
	}

	// Gap notation is a plain duration with a "+" prefix.
	trimmed = strings.TrimPrefix(trimmed, "+")

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return nil, &FormatError{Value: text, Reason: "too many ':' separators for a duration"}
	}

	// The final component carries the (possibly fractional) seconds; any
	// leading components are hours and minutes.
	seconds, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || seconds < 0 {
		return nil, &FormatError{Value: text, Reason: "seconds component is not a non-negative number"}
	}

	total := seconds
	multiplier := 60.0
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			return nil, &FormatError{Value: text, Reason: "hours/minutes component is not a non-negative integer"}
		}
		total += float64(n) * multiplier
		multiplier *= 60
	}

	d := time.Duration(total*1000+0.5) * time.Millisecond
	return &d, nil
}

// FormatDuration renders a duration in the canonical H:MM:SS.sss form, the
// inverse of ParseDuration for well-formed inputs.
func FormatDuration(d time.Duration) string {
	millis := d.Milliseconds()
	hours := millis / 3600000
	millis -= hours * 3600000
	minutes := millis / 60000
	millis -= minutes * 60000
	seconds := millis / 1000
	millis -= seconds * 1000
	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// dateLayouts are tried in order. The site renders dates as "12 May 2024";
// the remaining layouts cover variants seen on older season pages.
var dateLayouts = []string{
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2006-01-02",
	"02.01.2006",
}

// ParseDate parses a single date. Dates are mandatory wherever they appear,
// so unparseable text is a *FormatError rather than a nil value.
func ParseDate(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &FormatError{Value: text, Reason: "unrecognized date format"}
}

// rangeSeparators in decreasing specificity; the site uses an en-dash with
// surrounding spaces but plain hyphens appear in older markup.
var rangeSeparators = []string{" – ", " — ", " - "}

// ParseDateRange parses a date or date range into start and end dates.
//
// Handles "12 May 2024" (start == end), "10 - 12 May 2024",
// "30 Apr - 2 May 2024", and cross-year ranges like "31 Dec 2024 - 2 Jan 2025".
func ParseDateRange(text string) (time.Time, time.Time, error) {
	trimmed := strings.TrimSpace(text)

	var startText, endText string
	for _, sep := range rangeSeparators {
		if i := strings.Index(trimmed, sep); i >= 0 {
			startText = strings.TrimSpace(trimmed[:i])
			endText = strings.TrimSpace(trimmed[i+len(sep):])
			break
		}
	}

	if endText == "" {
		t, err := ParseDate(trimmed)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return t, t, nil
	}

	end, err := ParseDate(endText)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	// The start side may be a full date, a day+month borrowing the end's
	// year, or a bare day borrowing the end's month and year.
	if start, err := ParseDate(startText); err == nil {
		return start, end, nil
	}
	for _, layout := range []string{"2 January", "2 Jan"} {
		if t, err := time.Parse(layout, startText); err == nil {
			return time.Date(end.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), end, nil
		}
	}
	if day, err := strconv.Atoi(startText); err == nil && day >= 1 && day <= 31 {
		return time.Date(end.Year(), end.Month(), day, 0, 0, 0, 0, time.UTC), end, nil
	}

	return time.Time{}, time.Time{}, &FormatError{Value: text, Reason: "unrecognized date range start"}
}

// ParseInteger parses a whole number, tolerating ordinal suffixes ("1st",
// "23rd"), a trailing period, and thousands separators. Placeholder text
// returns (nil, nil).
func ParseInteger(text string) (*int, error) {
	trimmed := strings.TrimSpace(text)
	if IsPlaceholder(trimmed) {
		return nil, nil
	}

	trimmed = strings.TrimSuffix(trimmed, ".")
	lower := strings.ToLower(trimmed)
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if strings.HasSuffix(lower, suffix) {
			trimmed = trimmed[:len(trimmed)-len(suffix)]
			break
		}
	}
	trimmed = strings.ReplaceAll(strings.TrimSpace(trimmed), ",", "")

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, &FormatError{Value: text, Reason: "not an integer"}
	}
	return &n, nil
}
