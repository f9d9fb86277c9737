package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intdb "reservoria/internal/db"
	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
)

type ReservationRepository struct {
	DB *sql.DB
}

const reservationSelect = `
	SELECT r.id, r.facility_id, COALESCE(f.name,''), r.room_id, COALESCE(rm.name,''),
	       r.guest_name, r.check_in, r.check_out, r.status,
	       COALESCE(r.adult_count,0), COALESCE(r.child_count,0), COALESCE(r.total_price,0), COALESCE(r.source,'')
	FROM reservations r
	LEFT JOIN facilities f ON f.id = r.facility_id
	LEFT JOIN rooms rm ON rm.id = r.room_id`

func (r ReservationRepository) ListReservations(ctx context.Context, f ReservationFilter) ([]models.Reservation, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if r.DB == nil || !intdb.HasTable(ctx, r.DB, "reservations") {
		return []models.Reservation{}, nil
	}

	where := []string{"1=1"}
	args := []any{}
	if f.FacilityID != "" {
		where = append(where, "r.facility_id = ?")
		args = append(args, f.FacilityID)
	}
	if f.RoomID != "" {
		where = append(where, "r.room_id = ?")
		args = append(args, f.RoomID)
	}
	if !f.From.IsZero() {
		where = append(where, "r.check_out >= ?")
		args = append(args, f.From.String())
	}
	if !f.To.IsZero() {
		where = append(where, "r.check_in <= ?")
		args = append(args, f.To.String())
	}

	query := reservationSelect + " WHERE " + strings.Join(where, " AND ") + " ORDER BY r.check_in ASC, r.id ASC"
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "query reservations", Err: err}
	}
	defer rows.Close()

	out := []models.Reservation{}
	for rows.Next() {
		rec, err := scanReservation(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan reservation", Err: err}
		}
		if !usable(rec) {
			continue
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate reservations", Err: err}
	}
	return out, nil
}

func (r ReservationRepository) GetReservation(ctx context.Context, id string) (models.Reservation, error) {
	if r.DB == nil || !intdb.HasTable(ctx, r.DB, "reservations") {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation", ID: id}
	}
	row := r.DB.QueryRowContext(ctx, reservationSelect+" WHERE r.id = ?", id)
	rec, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation", ID: id, Err: err}
	}
	if err != nil {
		return models.Reservation{}, domain.InternalError{Msg: "query reservation", Err: err}
	}
	if err := rec.Validate(); err != nil {
		return models.Reservation{}, domain.InternalError{Msg: "stored reservation " + id + " is invalid", Err: err}
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(s scanner) (models.Reservation, error) {
	var (
		rec    models.Reservation
		status string
	)
	err := s.Scan(
		&rec.ID,
		&rec.FacilityID,
		&rec.FacilityName,
		&rec.RoomID,
		&rec.RoomName,
		&rec.GuestName,
		&rec.CheckIn,
		&rec.CheckOut,
		&status,
		&rec.AdultCount,
		&rec.ChildCount,
		&rec.TotalPrice,
		&rec.Source,
	)
	rec.Status = models.ReservationStatus(strings.ToLower(strings.TrimSpace(status)))
	return rec, err
}
