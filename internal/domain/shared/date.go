package shared

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the accepted input date format, DD-MM-YYYY
const DateLayout = "02-01-2006"

// ParseDate parses a DD-MM-YYYY date string. An empty or blank string yields
// (nil, nil): the record simply has no date. A malformed string yields
// ErrInvalidDateFormat wrapped with the offending value; callers decide
// whether that is fatal or downgrades to a pending date.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", value, ErrInvalidDateFormat)
	}
	return &parsed, nil
}
