package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "reservoria/internal/db"
	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
)

type FacilityRepository struct {
	DB *sql.DB
}

const facilitySelect = `
	SELECT id, name, COALESCE(city,''), COALESCE(country,''), created_at, status, COALESCE(image_url,'')
	FROM facilities`

func (r FacilityRepository) ListFacilities(ctx context.Context) ([]models.Facility, error) {
	if r.DB == nil || !intdb.HasTable(ctx, r.DB, "facilities") {
		return []models.Facility{}, nil
	}
	rows, err := r.DB.QueryContext(ctx, facilitySelect+" ORDER BY name ASC, id ASC")
	if err != nil {
		return nil, domain.InternalError{Msg: "query facilities", Err: err}
	}
	defer rows.Close()

	out := []models.Facility{}
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan facility", Err: err}
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate facilities", Err: err}
	}
	return out, nil
}

func (r FacilityRepository) GetFacility(ctx context.Context, id string) (models.Facility, error) {
	if r.DB == nil || !intdb.HasTable(ctx, r.DB, "facilities") {
		return models.Facility{}, domain.NotFoundError{Resource: "facility", ID: id}
	}
	f, err := scanFacility(r.DB.QueryRowContext(ctx, facilitySelect+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Facility{}, domain.NotFoundError{Resource: "facility", ID: id, Err: err}
	}
	if err != nil {
		return models.Facility{}, domain.InternalError{Msg: "query facility", Err: err}
	}
	return f, nil
}

func (r FacilityRepository) ListRooms(ctx context.Context, facilityID string) ([]models.Room, error) {
	if r.DB == nil || !intdb.HasTable(ctx, r.DB, "rooms") {
		return []models.Room{}, nil
	}
	query := `
		SELECT rm.id, rm.facility_id, COALESCE(f.name,''), rm.name, COALESCE(rm.type,''),
		       COALESCE(rm.capacity,0), COALESCE(rm.price,0), rm.status
		FROM rooms rm
		LEFT JOIN facilities f ON f.id = rm.facility_id`
	args := []any{}
	if facilityID != "" {
		query += " WHERE rm.facility_id = ?"
		args = append(args, facilityID)
	}
	query += " ORDER BY rm.facility_id ASC, rm.id ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "query rooms", Err: err}
	}
	defer rows.Close()

	out := []models.Room{}
	for rows.Next() {
		var (
			rm     models.Room
			status string
		)
		if err := rows.Scan(&rm.ID, &rm.FacilityID, &rm.FacilityName, &rm.Name, &rm.Type, &rm.Capacity, &rm.Price, &status); err != nil {
			return nil, domain.InternalError{Msg: "scan room", Err: err}
		}
		rm.Status = models.FacilityStatus(status)
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate rooms", Err: err}
	}
	return out, nil
}

func scanFacility(s scanner) (models.Facility, error) {
	var (
		f      models.Facility
		status string
	)
	err := s.Scan(&f.ID, &f.Name, &f.City, &f.Country, &f.CreatedAt, &status, &f.ImageURL)
	f.Status = models.FacilityStatus(status)
	return f, err
}
