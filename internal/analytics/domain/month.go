package domain

import "time"

// MonthRange resolves a month offset into a concrete half-open date range
// [target month start, next month start). Offset 0 is the current calendar
// month, 1 the previous, and so on, stepping one month back at a time with
// year rollover at January. Offsets are applied mechanically: there is no
// upper bound (very large offsets resolve to very old months) and a negative
// offset steps back zero times, resolving to the current month.
func MonthRange(now time.Time, offset int) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := 0; i < offset; i++ {
		if start.Month() == time.January {
			start = time.Date(start.Year()-1, time.December, 1, 0, 0, 0, 0, start.Location())
		} else {
			start = time.Date(start.Year(), start.Month()-1, 1, 0, 0, 0, 0, start.Location())
		}
	}

	if start.Month() == time.December {
		end = time.Date(start.Year()+1, time.January, 1, 0, 0, 0, 0, start.Location())
	} else {
		end = time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, start.Location())
	}

	return start, end
}

// MonthLabel renders a month start as a human-readable month + year.
func MonthLabel(monthStart time.Time) string {
	return monthStart.Format("January 2006")
}

// IsCurrentMonth reports whether the resolved month equals the calendar month
// of the reference time.
func IsCurrentMonth(monthStart, now time.Time) bool {
	return monthStart.Month() == now.Month() && monthStart.Year() == now.Year()
}
