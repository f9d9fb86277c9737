package services

import (
	"context"
	"strings"

	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
	"reservoria/internal/repositories"
	"reservoria/internal/utils"
)

type FacilityListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

type FacilityPage struct {
	Items      []models.Facility `json:"items"`
	Pagination domain.Pagination `json:"pagination"`
}

type FacilityService struct {
	Facilities repositories.FacilitySource
}

// List filters by search (name, city, country) and status, then pages the result.
func (s FacilityService) List(ctx context.Context, q FacilityListQuery) (FacilityPage, error) {
	status := models.FacilityStatus(strings.ToLower(strings.TrimSpace(q.Status)))
	if status != "" && status != models.FacilityActive && status != models.FacilityInactive {
		return FacilityPage{}, domain.ValidationError{Field: "status", Msg: "must be active or inactive"}
	}

	all, err := s.Facilities.ListFacilities(ctx)
	if err != nil {
		return FacilityPage{}, err
	}

	search := utils.NormalizeSpace(q.Search)
	matched := []models.Facility{}
	for _, f := range all {
		if status != "" && f.Status != status {
			continue
		}
		if search != "" && !utils.ContainsFold(search, f.Name, f.City, f.Country) {
			continue
		}
		matched = append(matched, f)
	}

	p := domain.NewPagination(q.Page, q.Limit, len(matched))
	start, end := p.Bounds()
	return FacilityPage{Items: matched[start:end], Pagination: p}, nil
}

func (s FacilityService) Get(ctx context.Context, id string) (models.Facility, error) {
	return s.Facilities.GetFacility(ctx, id)
}

// Rooms returns the rooms of an existing facility.
func (s FacilityService) Rooms(ctx context.Context, facilityID string) ([]models.Room, error) {
	if _, err := s.Facilities.GetFacility(ctx, facilityID); err != nil {
		return nil, err
	}
	return s.Facilities.ListRooms(ctx, facilityID)
}
