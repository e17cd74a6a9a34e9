package utils

import (
	"fmt"
	"strings"
	"time"
)

// deadlineFormats are the accepted textual deadline layouts. Every layout
// requires an HH:MM time component.
var deadlineFormats = []string{
	"02.01.2006 15:04",
	"2006.01.02 15:04",
	"02-01-2006 15:04",
	"2006-01-02 15:04",
}

// deadlineFormatHints are the human-readable patterns shown in parse errors.
var deadlineFormatHints = []string{
	"DD.MM.YYYY HH:MM",
	"YYYY.MM.DD HH:MM",
	"DD-MM-YYYY HH:MM",
	"YYYY-MM-DD HH:MM",
}

// ParseDeadline parses a deadline string against the four accepted layouts.
// The result is interpreted in the local time zone, matching how deadlines
// are compared against the current moment.
func ParseDeadline(value string) (time.Time, error) {
	for _, layout := range deadlineFormats {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"Cannot parse datetime format «%s». Please, use one of this examples: %s",
		value, strings.Join(deadlineFormatHints, " | "))
}
