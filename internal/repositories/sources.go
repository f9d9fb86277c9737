package repositories

import (
	"context"

	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
	"reservoria/internal/utils"
)

// ReservationFilter narrows a reservation query. Zero values mean "any".
// From/To select stays overlapping the window: check_out >= From and
// check_in <= To.
type ReservationFilter struct {
	FacilityID string
	RoomID     string
	From       models.Date
	To         models.Date
}

func (f ReservationFilter) Validate() error {
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return domain.ValidationError{Field: "end_date", Msg: "must not be before start_date"}
	}
	return nil
}

// Matches applies the filter to a single reservation.
func (f ReservationFilter) Matches(r models.Reservation) bool {
	if f.FacilityID != "" && r.FacilityID != f.FacilityID {
		return false
	}
	if f.RoomID != "" && r.RoomID != f.RoomID {
		return false
	}
	if !f.From.IsZero() && r.CheckOut.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.CheckIn.After(f.To) {
		return false
	}
	return true
}

// ReservationSource fetches reservation snapshots. Implementations must
// reject snapshots failing models.Reservation.Validate.
type ReservationSource interface {
	ListReservations(ctx context.Context, f ReservationFilter) ([]models.Reservation, error)
	GetReservation(ctx context.Context, id string) (models.Reservation, error)
}

type FacilitySource interface {
	ListFacilities(ctx context.Context) ([]models.Facility, error)
	GetFacility(ctx context.Context, id string) (models.Facility, error)
	// ListRooms returns every room when facilityID is empty.
	ListRooms(ctx context.Context, facilityID string) ([]models.Room, error)
}

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// usable reports whether a stored reservation can be handed to callers.
// Invalid rows are bad data, not bad requests: they are logged and left out.
func usable(r models.Reservation) bool {
	if err := r.Validate(); err != nil {
		utils.Log.WithError(err).WithField("reservation_id", r.ID).Warn("skipping invalid stored reservation")
		return false
	}
	return true
}

// KeepUsable filters out invalid stored reservations.
func KeepUsable(rs []models.Reservation) []models.Reservation {
	out := make([]models.Reservation, 0, len(rs))
	for _, r := range rs {
		if usable(r) {
			out = append(out, r)
		}
	}
	return out
}
