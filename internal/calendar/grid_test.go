package calendar

import (
	"testing"
	"time"

	"reservoria/internal/domain/models"
)

func TestMonthGridNovember2025(t *testing.T) {
	days := MonthGrid(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC))
	if len(days) != 35 {
		t.Fatalf("expected 35 cells, got %d", len(days))
	}
	if got := days[0].String(); got != "2025-10-27" {
		t.Fatalf("first cell = %s, want 2025-10-27", got)
	}
	if got := days[4].String(); got != "2025-10-31" {
		t.Fatalf("fifth cell = %s, want 2025-10-31", got)
	}
	if got := days[5].String(); got != "2025-11-01" {
		t.Fatalf("sixth cell = %s, want 2025-11-01", got)
	}
	if got := days[len(days)-1].String(); got != "2025-11-30" {
		t.Fatalf("last cell = %s, want 2025-11-30", got)
	}
}

func TestMonthGridNoPadding(t *testing.T) {
	// September 2025 starts on a Monday, August 2025 ends on a Sunday.
	sep := MonthGrid(time.Date(2025, time.September, 17, 0, 0, 0, 0, time.UTC))
	if sep[0].String() != "2025-09-01" {
		t.Fatalf("expected no leading padding, first cell %s", sep[0])
	}
	aug := MonthGrid(time.Date(2025, time.August, 3, 0, 0, 0, 0, time.UTC))
	if aug[len(aug)-1].String() != "2025-08-31" {
		t.Fatalf("expected no trailing padding, last cell %s", aug[len(aug)-1])
	}
	// February 2027 starts Monday and ends Sunday: exactly four weeks.
	feb := MonthGrid(time.Date(2027, time.February, 10, 0, 0, 0, 0, time.UTC))
	if len(feb) != 28 {
		t.Fatalf("expected 28 cells for Feb 2027, got %d", len(feb))
	}
}

func TestMonthGridProperties(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			ref := time.Date(year, month, 15, 13, 45, 0, 0, time.UTC)
			days := MonthGrid(ref)

			if len(days)%7 != 0 {
				t.Fatalf("%d-%02d: length %d not divisible by 7", year, month, len(days))
			}
			if days[0].Weekday() != time.Monday {
				t.Fatalf("%d-%02d: grid starts on %s", year, month, days[0].Weekday())
			}
			if days[len(days)-1].Weekday() != time.Sunday {
				t.Fatalf("%d-%02d: grid ends on %s", year, month, days[len(days)-1].Weekday())
			}
			first := models.NewDate(year, month, 1)
			last := models.NewDate(year, month+1, 0)
			if !contains(days, first) || !contains(days, last) {
				t.Fatalf("%d-%02d: grid misses first or last day of month", year, month)
			}
			for i := 1; i < len(days); i++ {
				if days[i-1].AddDays(1) != days[i] {
					t.Fatalf("%d-%02d: %s does not follow %s", year, month, days[i], days[i-1])
				}
			}
		}
	}
}

func TestWeekGridProperties(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366*2; i++ {
		ref := start.AddDate(0, 0, i)
		days := WeekGrid(ref)
		if len(days) != 7 {
			t.Fatalf("%s: expected 7 days, got %d", ref.Format(models.DateLayout), len(days))
		}
		if days[0].Weekday() != time.Monday || days[6].Weekday() != time.Sunday {
			t.Fatalf("%s: week spans %s..%s", ref.Format(models.DateLayout), days[0].Weekday(), days[6].Weekday())
		}
		if !contains(days, models.DateOf(ref)) {
			t.Fatalf("%s: reference date missing from week", ref.Format(models.DateLayout))
		}
	}
}

func TestGridIgnoresTimeOfDayAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	late := time.Date(2025, time.November, 30, 23, 59, 0, 0, loc)
	week := WeekGrid(late)
	if week[6].String() != "2025-11-30" {
		t.Fatalf("expected week ending 2025-11-30, got %s", week[6])
	}
}

func TestGridDeterministic(t *testing.T) {
	ref := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	a := MonthGrid(ref)
	b := MonthGrid(ref)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestGridRejectsUnknownView(t *testing.T) {
	if _, err := Grid(time.Now(), View("year")); err == nil {
		t.Fatalf("expected error for unknown view")
	}
	if _, err := ParseView("day"); err == nil {
		t.Fatalf("expected ParseView error")
	}
	v, err := ParseView("")
	if err != nil || v != ViewMonth {
		t.Fatalf("empty view should default to month, got %q %v", v, err)
	}
}

func TestNavigate(t *testing.T) {
	cases := []struct {
		name string
		ref  string
		view View
		step int
		want string
	}{
		{"next month", "2025-11-01", ViewMonth, 1, "2025-12-01"},
		{"previous month across year", "2025-01-15", ViewMonth, -1, "2024-12-15"},
		{"month end clamps", "2025-01-31", ViewMonth, 1, "2025-02-28"},
		{"leap year clamp", "2024-03-31", ViewMonth, -1, "2024-02-29"},
		{"next week", "2025-11-01", ViewWeek, 1, "2025-11-08"},
		{"two weeks back", "2025-11-01", ViewWeek, -2, "2025-10-18"},
		{"no step", "2025-11-01", ViewWeek, 0, "2025-11-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref := models.MustParseDate(tc.ref).Time()
			got := models.DateOf(Navigate(ref, tc.view, tc.step)).String()
			if got != tc.want {
				t.Fatalf("Navigate(%s, %s, %d) = %s, want %s", tc.ref, tc.view, tc.step, got, tc.want)
			}
		})
	}
}

func contains(days []models.Date, d models.Date) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}
