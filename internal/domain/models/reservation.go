package models

import (
	"strings"

	"reservoria/internal/domain"
)

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationPending   ReservationStatus = "pending"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationConfirmed, ReservationPending, ReservationCancelled:
		return true
	}
	return false
}

// Reservation is a read-only snapshot of a booked stay. CheckIn and CheckOut
// are inclusive: the guest occupies every day between them.
type Reservation struct {
	ID           string            `json:"id"`
	FacilityID   string            `json:"facility_id"`
	FacilityName string            `json:"facility_name"`
	RoomID       string            `json:"room_id"`
	RoomName     string            `json:"room_name"`
	GuestName    string            `json:"guest_name"`
	CheckIn      Date              `json:"check_in"`
	CheckOut     Date              `json:"check_out"`
	Status       ReservationStatus `json:"status"`
	AdultCount   int               `json:"adult_count"`
	ChildCount   int               `json:"child_count"`
	TotalPrice   float64           `json:"total_price"`
	Source       string            `json:"source"`
}

// Occupies reports whether day falls inside the inclusive stay range.
func (r Reservation) Occupies(day Date) bool {
	return !day.Before(r.CheckIn) && !day.After(r.CheckOut)
}

// Nights is the number of nights between check-in and check-out.
func (r Reservation) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

// Validate rejects snapshots the calendar cannot reason about. Sources call
// it before handing data to callers.
func (r Reservation) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return domain.ValidationError{Field: "check_in", Msg: "reservation " + r.ID + " has no stay dates"}
	}
	if r.CheckOut.Before(r.CheckIn) {
		return domain.ValidationError{
			Field: "check_out",
			Msg:   "reservation " + r.ID + " checks out (" + r.CheckOut.String() + ") before check-in (" + r.CheckIn.String() + ")",
		}
	}
	if !r.Status.Valid() {
		return domain.ValidationError{Field: "status", Msg: "unknown status " + string(r.Status)}
	}
	if r.AdultCount < 0 || r.ChildCount < 0 {
		return domain.ValidationError{Field: "adult_count", Msg: "guest counts must not be negative"}
	}
	if r.TotalPrice < 0 {
		return domain.ValidationError{Field: "total_price", Msg: "must not be negative"}
	}
	return nil
}

// ValidateReservations returns the first invalid reservation error, if any.
func ValidateReservations(rs []Reservation) error {
	for _, r := range rs {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
