package calendar

import (
	"testing"
	"time"

	"reservoria/internal/domain/models"
)

func stay(id, in, out string) models.Reservation {
	return models.Reservation{
		ID:       id,
		CheckIn:  models.MustParseDate(in),
		CheckOut: models.MustParseDate(out),
		Status:   models.ReservationConfirmed,
	}
}

func day(s string) time.Time {
	return models.MustParseDate(s).Time()
}

func TestReservationsOnDayInclusiveRange(t *testing.T) {
	r := stay("r1", "2025-11-15", "2025-11-18")
	cases := map[string]bool{
		"2025-11-14": false,
		"2025-11-15": true,
		"2025-11-16": true,
		"2025-11-17": true,
		"2025-11-18": true,
		"2025-11-19": false,
	}
	for d, want := range cases {
		got := ReservationsOnDay([]models.Reservation{r}, day(d))
		if want && (len(got) != 1 || got[0].ID != "r1") {
			t.Fatalf("%s: expected r1, got %+v", d, got)
		}
		if !want && len(got) != 0 {
			t.Fatalf("%s: expected no match, got %+v", d, got)
		}
	}
}

func TestReservationsOnDayEmptyInput(t *testing.T) {
	got := ReservationsOnDay(nil, day("2025-11-15"))
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestReservationsOnDayIgnoresTimeOfDay(t *testing.T) {
	r := stay("r1", "2025-11-15", "2025-11-18")
	evening := time.Date(2025, time.November, 18, 22, 30, 0, 0, time.UTC)
	if got := ReservationsOnDay([]models.Reservation{r}, evening); len(got) != 1 {
		t.Fatalf("expected check-out evening to match, got %d", len(got))
	}
}

func TestReservationsOnDayPreservesOrderAndInput(t *testing.T) {
	in := []models.Reservation{
		stay("c", "2025-11-10", "2025-11-20"),
		stay("a", "2025-11-01", "2025-11-02"),
		stay("b", "2025-11-12", "2025-11-12"),
		stay("d", "2025-11-12", "2025-11-30"),
	}
	before := append([]models.Reservation(nil), in...)

	got := ReservationsOnDay(in, day("2025-11-12"))
	ids := ""
	for _, r := range got {
		ids += r.ID
	}
	if ids != "cbd" {
		t.Fatalf("expected order cbd, got %s", ids)
	}
	for i := range in {
		if in[i] != before[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func TestReservationsOnDayMatchesDefinition(t *testing.T) {
	start := models.MustParseDate("2025-10-20")
	for span := 0; span < 5; span++ {
		r := models.Reservation{ID: "x", CheckIn: start, CheckOut: start.AddDays(span), Status: models.ReservationPending}
		for offset := -3; offset < 10; offset++ {
			d := start.AddDays(offset)
			want := !d.Before(r.CheckIn) && !d.After(r.CheckOut)
			got := len(ReservationsOnDay([]models.Reservation{r}, d.Time())) == 1
			if got != want {
				t.Fatalf("span=%d day=%s: got %v want %v", span, d, got, want)
			}
		}
	}
}

func TestBuildCellsMonth(t *testing.T) {
	rs := []models.Reservation{stay("r1", "2025-10-30", "2025-11-02")}
	today := time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC)

	cells, err := BuildCells(day("2025-11-01"), ViewMonth, today, rs)
	if err != nil {
		t.Fatalf("BuildCells: %v", err)
	}
	if len(cells) != 35 {
		t.Fatalf("expected 35 cells, got %d", len(cells))
	}
	if cells[0].InCurrentPeriod {
		t.Fatalf("Oct 27 should be outside the current period")
	}
	if !cells[5].InCurrentPeriod || !cells[5].IsToday {
		t.Fatalf("Nov 1 should be in period and today: %+v", cells[5])
	}
	if len(cells[3].Reservations) != 1 || len(cells[2].Reservations) != 0 {
		t.Fatalf("Oct 30 should carry r1 and Oct 29 nothing")
	}
}

func TestBuildCellsWeekAllInPeriod(t *testing.T) {
	cells, err := BuildCells(day("2025-11-01"), ViewWeek, day("2020-01-01"), nil)
	if err != nil {
		t.Fatalf("BuildCells: %v", err)
	}
	if len(cells) != 7 {
		t.Fatalf("expected 7 cells, got %d", len(cells))
	}
	for _, c := range cells {
		if !c.InCurrentPeriod || c.IsToday {
			t.Fatalf("unexpected cell flags %+v", c)
		}
	}
}
