package calendar

import (
	"time"

	"reservoria/internal/domain/models"
)

// ReservationsOnDay returns the reservations whose inclusive stay range
// contains day, in input order. The input slice is not modified.
func ReservationsOnDay(reservations []models.Reservation, day time.Time) []models.Reservation {
	d := models.DateOf(day)
	out := []models.Reservation{}
	for _, r := range reservations {
		if r.Occupies(d) {
			out = append(out, r)
		}
	}
	return out
}

// DayCell is one rendered day of the calendar grid.
type DayCell struct {
	Date            models.Date          `json:"date"`
	InCurrentPeriod bool                 `json:"in_current_period"`
	IsToday         bool                 `json:"is_today"`
	Reservations    []models.Reservation `json:"reservations"`
}

// BuildCells builds the grid for ref/view and annotates every day with the
// reservations occupying it.
func BuildCells(ref time.Time, view View, today time.Time, reservations []models.Reservation) ([]DayCell, error) {
	days, err := Grid(ref, view)
	if err != nil {
		return nil, err
	}
	refDate := models.DateOf(ref)
	todayDate := models.DateOf(today)

	cells := make([]DayCell, 0, len(days))
	for _, d := range days {
		inPeriod := true
		if view == ViewMonth {
			inPeriod = d.Year() == refDate.Year() && d.Month() == refDate.Month()
		}
		cells = append(cells, DayCell{
			Date:            d,
			InCurrentPeriod: inPeriod,
			IsToday:         d.Equal(todayDate),
			Reservations:    ReservationsOnDay(reservations, d.Time()),
		})
	}
	return cells, nil
}
