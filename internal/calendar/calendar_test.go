package calendar

import (
	"testing"
	"time"
)

func TestMonthNumberCaseInsensitive(t *testing.T) {
	for _, name := range []string{"february", "FEBRUARY", "February", "fEBRUARY"} {
		m, err := MonthNumber(name)
		if err != nil {
			t.Fatalf("MonthNumber(%q) returned error: %v", name, err)
		}
		if m != time.February {
			t.Errorf("MonthNumber(%q) = %v, want February", name, m)
		}
	}
}

func TestMonthNumberRejectsMisspelling(t *testing.T) {
	if _, err := MonthNumber("Febuary"); err != ErrInvalidMonth {
		t.Errorf("MonthNumber(Febuary) error = %v, want ErrInvalidMonth", err)
	}
	if _, err := MonthNumber(""); err != ErrInvalidMonth {
		t.Errorf("MonthNumber(\"\") error = %v, want ErrInvalidMonth", err)
	}
}

func TestRenderMonthFebruary2024(t *testing.T) {
	grid, err := RenderMonth(2024, "february")
	if err != nil {
		t.Fatalf("RenderMonth returned error: %v", err)
	}

	if grid.Month != time.February || grid.Year != 2024 {
		t.Fatalf("grid is for %v %d, want February 2024", grid.Month, grid.Year)
	}

	// Feb 1 2024 is a Thursday: Monday-first index 3.
	if len(grid.Weeks) != 5 {
		t.Fatalf("got %d weeks, want 5", len(grid.Weeks))
	}
	first := grid.Weeks[0]
	want := [7]int{0, 0, 0, 1, 2, 3, 4}
	if first != want {
		t.Errorf("first week = %v, want %v", first, want)
	}

	// Leap year: 29 days, Feb 29 on a Thursday.
	last := grid.Weeks[4]
	wantLast := [7]int{26, 27, 28, 29, 0, 0, 0}
	if last != wantLast {
		t.Errorf("last week = %v, want %v", last, wantLast)
	}
}

func TestRenderMonthUnknownName(t *testing.T) {
	if _, err := RenderMonth(2024, "Smarch"); err != ErrInvalidMonth {
		t.Errorf("RenderMonth(Smarch) error = %v, want ErrInvalidMonth", err)
	}
}
