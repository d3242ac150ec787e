package timelog

import (
	"time"

	timelogerrors "payrollpro/internal/timelog/errors"
)

// ParseMonth resolves the "YYYY-MM" month cursor. Empty input means the
// current calendar month; a month after the current one is rejected so the
// viewer can never page into the future.
func ParseMonth(s string, now time.Time) (time.Time, error) {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if s == "" {
		return current, nil
	}

	parsed, err := time.ParseInLocation("2006-01", s, now.Location())
	if err != nil {
		return time.Time{}, timelogerrors.ErrInvalidMonth
	}
	if parsed.After(current) {
		return time.Time{}, timelogerrors.ErrFutureMonth
	}
	return parsed, nil
}

// MonthRange returns the first and last instant of the cursor's month.
func MonthRange(cursor time.Time) (time.Time, time.Time) {
	start := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// dayRange is the local midnight-to-midnight window containing t.
func dayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
