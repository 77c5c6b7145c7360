package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	dashRun        = regexp.MustCompile(`-+`)
	timePattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// dateLayouts are tried in order by NormalizeDate. The unpadded layout also
// accepts zero-padded components.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-1-2",
	"2006/1/2",
}

// Slugify derives a URL-safe slug from a title: lowercase, strip characters
// outside [a-z0-9 whitespace dash], collapse whitespace runs to a single
// dash, collapse dash runs, and trim leading/trailing dashes.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(strings.TrimSpace(s), "-")
	s = dashRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeDate parses a free-form date string and returns the UTC calendar
// date as YYYY-MM-DD. Unparseable input returns an error wrapping
// ErrInvalidInput.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.UTC().Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("%w: invalid date %q", ErrInvalidInput, s)
}

// NormalizeTime validates an H:mm or HH:mm string and returns it zero-padded.
// Hour must be 0-23 and minute 0-59; the minute part must be two digits.
func NormalizeTime(s string) (string, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%w: invalid time %q, expected HH:mm", ErrInvalidInput, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return "", fmt.Errorf("%w: hour %d out of range in %q", ErrInvalidInput, hour, s)
	}
	if minute > 59 {
		return "", fmt.Errorf("%w: minute %d out of range in %q", ErrInvalidInput, minute, s)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// ValidEmail reports whether s looks like local@domain with at least one dot
// in the domain.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
