package services

import (
	"context"
	"fmt"
	"time"

	"reservoria/internal/calendar"
	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
	"reservoria/internal/repositories"
	"reservoria/internal/utils"
)

// CalendarQuery is the raw calendar request as it arrives from the client.
type CalendarQuery struct {
	View       string
	Date       string
	Step       int
	FacilityID string
	RoomID     string
	StartDate  string
	EndDate    string
}

// CalendarPage is one rendered month or week.
type CalendarPage struct {
	View        calendar.View      `json:"view"`
	Reference   models.Date        `json:"reference"`
	Today       models.Date        `json:"today"`
	PeriodStart models.Date        `json:"period_start"`
	PeriodEnd   models.Date        `json:"period_end"`
	Prev        models.Date        `json:"prev"`
	Next        models.Date        `json:"next"`
	Cells       []calendar.DayCell `json:"cells"`
}

type CalendarService struct {
	Reservations repositories.ReservationSource
	Now          func() time.Time
	RequestID    string
}

func (s CalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Page builds the grid for the requested period and attaches every
// reservation overlapping it.
func (s CalendarService) Page(ctx context.Context, q CalendarQuery) (CalendarPage, error) {
	view, err := calendar.ParseView(q.View)
	if err != nil {
		return CalendarPage{}, err
	}
	today := models.DateOf(s.now())

	ref := today
	if q.Date != "" {
		ref, err = utils.ParseOptionalDate("date", q.Date)
		if err != nil {
			return CalendarPage{}, err
		}
	}
	ref = models.DateOf(calendar.Navigate(ref.Time(), view, q.Step))

	grid, err := calendar.Grid(ref.Time(), view)
	if err != nil {
		return CalendarPage{}, err
	}

	filter, err := s.filter(q)
	if err != nil {
		return CalendarPage{}, err
	}

	reservations := []models.Reservation{}
	if window, ok := intersect(filter, grid[0], grid[len(grid)-1]); ok {
		reservations, err = s.source().ListReservations(ctx, window)
		if err != nil {
			return CalendarPage{}, err
		}
	}

	cells, err := calendar.BuildCells(ref.Time(), view, today.Time(), reservations)
	if err != nil {
		return CalendarPage{}, err
	}

	utils.LogEvent(s.RequestID, "calendar", "page",
		fmt.Sprintf("view=%s ref=%s reservations=%d", view, ref, len(reservations)))

	return CalendarPage{
		View:        view,
		Reference:   ref,
		Today:       today,
		PeriodStart: grid[0],
		PeriodEnd:   grid[len(grid)-1],
		Prev:        models.DateOf(calendar.Navigate(ref.Time(), view, -1)),
		Next:        models.DateOf(calendar.Navigate(ref.Time(), view, 1)),
		Cells:       cells,
	}, nil
}

// ListReservations lists reservations matching the query filters without
// building a grid.
func (s CalendarService) ListReservations(ctx context.Context, q CalendarQuery) ([]models.Reservation, error) {
	filter, err := s.filter(q)
	if err != nil {
		return nil, err
	}
	return s.source().ListReservations(ctx, filter)
}

func (s CalendarService) Reservation(ctx context.Context, id string) (models.Reservation, error) {
	if id == "" {
		return models.Reservation{}, domain.ValidationError{Field: "id", Msg: "required"}
	}
	return s.source().GetReservation(ctx, id)
}

func (s CalendarService) filter(q CalendarQuery) (repositories.ReservationFilter, error) {
	from, err := utils.ParseOptionalDate("start_date", q.StartDate)
	if err != nil {
		return repositories.ReservationFilter{}, err
	}
	to, err := utils.ParseOptionalDate("end_date", q.EndDate)
	if err != nil {
		return repositories.ReservationFilter{}, err
	}
	f := repositories.ReservationFilter{
		FacilityID: utils.NormalizeSpace(q.FacilityID),
		RoomID:     utils.NormalizeSpace(q.RoomID),
		From:       from,
		To:         to,
	}
	return f, f.Validate()
}

func (s CalendarService) source() repositories.ReservationSource {
	if s.Reservations == nil {
		return emptySource{}
	}
	return s.Reservations
}

// intersect narrows the user's date range to the visible grid. ok is false
// when the two do not overlap.
func intersect(f repositories.ReservationFilter, first, last models.Date) (repositories.ReservationFilter, bool) {
	if f.From.IsZero() || f.From.Before(first) {
		f.From = first
	}
	if f.To.IsZero() || f.To.After(last) {
		f.To = last
	}
	return f, !f.To.Before(f.From)
}

type emptySource struct{}

func (emptySource) ListReservations(context.Context, repositories.ReservationFilter) ([]models.Reservation, error) {
	return []models.Reservation{}, nil
}

func (emptySource) GetReservation(_ context.Context, id string) (models.Reservation, error) {
	return models.Reservation{}, domain.NotFoundError{Resource: "reservation", ID: id}
}
