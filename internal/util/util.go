// Package util holds small shared helpers with no domain knowledge.
package util

import (
	"time"

	"github.com/pkg/errors"
)

// DateTimeLayout is the canonical wire format for timestamps in API payloads.
const DateTimeLayout = "2006-01-02 15:04:05"

// UTCNow returns the current instant in UTC, truncated to whole seconds to
// match the persisted DATETIME resolution.
func UTCNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatDateTime renders a timestamp in the canonical payload format, always in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseDateTime parses a timestamp previously rendered by FormatDateTime.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse datetime %q", s)
	}

	return t, nil
}
