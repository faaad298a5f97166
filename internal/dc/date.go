package dc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDateFormat = errors.New("date must be DD/MM/YYYY")
	ErrDayRange   = errors.New("day out of range 1-31")
	ErrMonthRange = errors.New("month out of range 1-12")
	ErrYearRange  = errors.New("year must be at least 1")
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatDate validates a DD/MM/YYYY date and renders it as "D Month YYYY".
// Days up to 31 are accepted for every month; there is no per-month or
// leap-year check.
func FormatDate(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 3 {
		return "", ErrDateFormat
	}
	var nums [3]int
	for i, p := range parts {
		n, err := parseDigits(strings.TrimSpace(p))
		if err != nil {
			return "", ErrDateFormat
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	switch {
	case day < 1 || day > 31:
		return "", ErrDayRange
	case month < 1 || month > 12:
		return "", ErrMonthRange
	case year < 1:
		return "", ErrYearRange
	}
	return fmt.Sprintf("%d %s %d", day, monthNames[month-1], year), nil
}

// parseDigits accepts only unsigned decimal digits.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}
