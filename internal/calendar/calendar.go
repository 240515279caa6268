package calendar

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidMonth is returned when a month name does not resolve to a
// calendar month. No default month is substituted.
var ErrInvalidMonth = errors.New("invalid month name")

// Grid is a traditional month view: one row per week, Monday first.
// Cells outside the month hold zero.
type Grid struct {
	Year  int
	Month time.Month
	Weeks [][7]int
}

// MonthNumber resolves a case-insensitive English month name to its 1-12
// index. Only exact full names match; "Febuary" is an error, not a guess.
func MonthNumber(name string) (time.Month, error) {
	name = capitalize(name)
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, ErrInvalidMonth
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// RenderMonth builds the week grid for the named month of the given year
// using the proleptic Gregorian calendar. No event data is placed in the
// cells.
func RenderMonth(year int, monthName string) (*Grid, error) {
	month, err := MonthNumber(monthName)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Monday-first column index of the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	// The zeroth day of the next month is the last day of this one.
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	grid := &Grid{Year: year, Month: month}
	var week [7]int
	col := offset
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid, nil
}
