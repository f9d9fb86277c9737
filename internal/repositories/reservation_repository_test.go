package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
)

var reservationColumns = []string{
	"id", "facility_id", "facility_name", "room_id", "room_name", "guest_name",
	"check_in", "check_out", "status", "adult_count", "child_count", "total_price", "source",
}

func expectTable(mock sqlmock.Sqlmock, table string, exists bool) {
	rows := sqlmock.NewRows([]string{"table_name"})
	if exists {
		rows.AddRow(table)
	}
	mock.ExpectQuery("information_schema\\.tables").WithArgs(table).WillReturnRows(rows)
}

func TestListReservationsAppliesFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTable(mock, "reservations", true)
	mock.ExpectQuery("FROM reservations r .* WHERE 1=1 AND r.facility_id = \\? AND r.check_out >= \\? AND r.check_in <= \\?").
		WithArgs("1", "2025-11-01", "2025-11-30").
		WillReturnRows(sqlmock.NewRows(reservationColumns).
			AddRow("7", "1", "Test-2", "2", "Standard Room", "Jane Smith",
				time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC),
				"Confirmed", 2, 1, 23000.0, "Booking.com"))

	repo := ReservationRepository{DB: db}
	got, err := repo.ListReservations(context.Background(), ReservationFilter{
		FacilityID: "1",
		From:       models.MustParseDate("2025-11-01"),
		To:         models.MustParseDate("2025-11-30"),
	})
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(got))
	}
	r := got[0]
	if r.CheckIn.String() != "2025-11-15" || r.CheckOut.String() != "2025-11-18" {
		t.Fatalf("unexpected stay %s..%s", r.CheckIn, r.CheckOut)
	}
	if r.Status != models.ReservationConfirmed {
		t.Fatalf("status should be normalized, got %q", r.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListReservationsSkipsInvertedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTable(mock, "reservations", true)
	mock.ExpectQuery("FROM reservations r").
		WillReturnRows(sqlmock.NewRows(reservationColumns).
			AddRow("9", "1", "Test-2", "1", "Deluxe Suite", "Broken",
				"2025-11-18", "2025-11-15", "confirmed", 1, 0, 100.0, "").
			AddRow("10", "1", "Test-2", "1", "Deluxe Suite", "Fine",
				"2025-11-15", "2025-11-18", "confirmed", 1, 0, 100.0, ""))

	got, err := ReservationRepository{DB: db}.ListReservations(context.Background(), ReservationFilter{})
	if err != nil {
		t.Fatalf("ListReservations: %v", err)
	}
	if len(got) != 1 || got[0].ID != "10" {
		t.Fatalf("expected only row 10, got %+v", got)
	}
}

func TestGetReservationInvertedRowIsInternal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTable(mock, "reservations", true)
	mock.ExpectQuery("WHERE r.id = \\?").WithArgs("9").
		WillReturnRows(sqlmock.NewRows(reservationColumns).
			AddRow("9", "1", "Test-2", "1", "Deluxe Suite", "Broken",
				"2025-11-18", "2025-11-15", "confirmed", 1, 0, 100.0, ""))

	_, err = ReservationRepository{DB: db}.GetReservation(context.Background(), "9")
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestListReservationsRejectsInvertedFilter(t *testing.T) {
	_, err := ReservationRepository{}.ListReservations(context.Background(), ReservationFilter{
		From: models.MustParseDate("2025-11-30"),
		To:   models.MustParseDate("2025-11-01"),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListReservationsMissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTable(mock, "reservations", false)

	got, err := ReservationRepository{DB: db}.ListReservations(context.Background(), ReservationFilter{})
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v %v", got, err)
	}
}

func TestGetReservationNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTable(mock, "reservations", true)
	mock.ExpectQuery("WHERE r.id = \\?").WithArgs("404").
		WillReturnRows(sqlmock.NewRows(reservationColumns))

	_, err = ReservationRepository{DB: db}.GetReservation(context.Background(), "404")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFilterMatchesOverlap(t *testing.T) {
	r := models.Reservation{
		ID: "1", FacilityID: "1", RoomID: "2",
		CheckIn: models.MustParseDate("2025-10-30"), CheckOut: models.MustParseDate("2025-11-02"),
	}
	cases := []struct {
		name string
		f    ReservationFilter
		want bool
	}{
		{"no filter", ReservationFilter{}, true},
		{"straddles window start", ReservationFilter{From: models.MustParseDate("2025-11-01"), To: models.MustParseDate("2025-11-30")}, true},
		{"ends before window", ReservationFilter{From: models.MustParseDate("2025-11-03")}, false},
		{"starts after window", ReservationFilter{To: models.MustParseDate("2025-10-29")}, false},
		{"other facility", ReservationFilter{FacilityID: "2"}, false},
		{"same room", ReservationFilter{FacilityID: "1", RoomID: "2"}, true},
	}
	for _, tc := range cases {
		if got := tc.f.Matches(r); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestCachedReservationsWithoutRedisPassesThrough(t *testing.T) {
	next := stubSource{items: []models.Reservation{{ID: "1"}}}
	c := CachedReservations{Next: &next}
	got, err := c.ListReservations(context.Background(), ReservationFilter{FacilityID: "1"})
	if err != nil || len(got) != 1 || next.calls != 1 {
		t.Fatalf("unexpected passthrough result %v %v calls=%d", got, err, next.calls)
	}
}

func TestCacheKeyStable(t *testing.T) {
	f := ReservationFilter{FacilityID: "1", From: models.MustParseDate("2025-11-01")}
	if CacheKey("p", f) != CacheKey("p", f) {
		t.Fatalf("cache key not deterministic")
	}
	g := f
	g.RoomID = "3"
	if CacheKey("p", f) == CacheKey("p", g) {
		t.Fatalf("different filters share a key")
	}
}

type stubSource struct {
	items []models.Reservation
	calls int
}

func (s *stubSource) ListReservations(context.Context, ReservationFilter) ([]models.Reservation, error) {
	s.calls++
	return s.items, nil
}

func (s *stubSource) GetReservation(_ context.Context, id string) (models.Reservation, error) {
	return models.Reservation{ID: id}, nil
}
