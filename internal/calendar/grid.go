// Package calendar builds the month/week day grids of the reservation
// calendar and matches reservations to the days they occupy. Weeks start on
// Monday.
package calendar

import (
	"strings"
	"time"

	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
)

type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
)

// ParseView accepts "month" or "week" (case-insensitive). Empty means month.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewMonth:
		return ViewMonth, nil
	case ViewWeek:
		return ViewWeek, nil
	}
	return "", domain.ValidationError{Field: "view", Msg: "must be month or week"}
}

// WeekStart returns the Monday on or before d.
func WeekStart(d models.Date) models.Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekEnd returns the Sunday on or after d.
func WeekEnd(d models.Date) models.Date {
	return WeekStart(d).AddDays(6)
}

func MonthStart(d models.Date) models.Date {
	return models.NewDate(d.Year(), d.Month(), 1)
}

func MonthEnd(d models.Date) models.Date {
	return models.NewDate(d.Year(), d.Month()+1, 0)
}

// MonthGrid returns every date from the Monday on/before the first of ref's
// month through the Sunday on/after its last day.
func MonthGrid(ref time.Time) []models.Date {
	d := models.DateOf(ref)
	return eachDay(WeekStart(MonthStart(d)), WeekEnd(MonthEnd(d)))
}

// WeekGrid returns the seven dates of ref's Monday-based week.
func WeekGrid(ref time.Time) []models.Date {
	d := models.DateOf(ref)
	return eachDay(WeekStart(d), WeekEnd(d))
}

// Grid dispatches to MonthGrid or WeekGrid.
func Grid(ref time.Time, view View) ([]models.Date, error) {
	switch view {
	case ViewMonth:
		return MonthGrid(ref), nil
	case ViewWeek:
		return WeekGrid(ref), nil
	}
	return nil, domain.ValidationError{Field: "view", Msg: "must be month or week"}
}

// Navigate moves ref by step months (month view) or weeks (week view).
// Month moves clamp to the last day of the target month.
func Navigate(ref time.Time, view View, step int) time.Time {
	if step == 0 {
		return ref
	}
	if view == ViewWeek {
		return ref.AddDate(0, 0, 7*step)
	}
	return addMonthsClamped(ref, step)
}

func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func eachDay(from, to models.Date) []models.Date {
	if to.Before(from) {
		return nil
	}
	out := make([]models.Date, 0, from.DaysUntil(to)+1)
	for d := from; !d.After(to); d = d.AddDays(1) {
		out = append(out, d)
	}
	return out
}
