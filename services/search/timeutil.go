package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Campus scheduling window in minutes since midnight: rooms can be requested
// from 07:00 up to (not including) 22:00.
const (
	openingMinute = 7 * 60
	closingMinute = 22 * 60
	dayMinutes    = 24 * 60
)

// ErrInvalidTimeFormat reports a time string that is not 24-hour "HH:MM".
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// timeToMinutes converts a 24-hour "HH:MM" string to minutes since midnight.
func timeToMinutes(timeStr string) (int, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, timeStr)
	}
	return hours*60 + minutes, nil
}

// overlaps reports whether the half-open minute intervals [aStart, aEnd) and
// [bStart, bEnd) share any time. Touching boundaries do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}
