package services

import (
	"context"
	"testing"

	"reservoria/internal/domain"
	"reservoria/internal/repositories/fixture"
)

func TestFacilityListPaging(t *testing.T) {
	svc := FacilityService{Facilities: fixture.New()}
	page, err := svc.List(context.Background(), FacilityListQuery{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 1 || page.Pagination.Total != 3 || page.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected page %+v", page)
	}

	page, _ = svc.List(context.Background(), FacilityListQuery{Page: 5})
	if len(page.Items) != 0 || page.Pagination.Limit != domain.DefaultPageSize {
		t.Fatalf("page past the end should be empty: %+v", page)
	}
}

func TestFacilityListSearchAndStatus(t *testing.T) {
	svc := FacilityService{Facilities: fixture.New()}
	page, err := svc.List(context.Background(), FacilityListQuery{Search: "antalya", Status: "Active"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].Name != "Test-2" {
		t.Fatalf("unexpected search result %+v", page.Items)
	}
	page, _ = svc.List(context.Background(), FacilityListQuery{Status: "inactive"})
	if page.Pagination.Total != 0 {
		t.Fatalf("expected no inactive facilities")
	}
	if _, err := svc.List(context.Background(), FacilityListQuery{Status: "closed"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFacilityRooms(t *testing.T) {
	svc := FacilityService{Facilities: fixture.New()}
	rooms, err := svc.Rooms(context.Background(), "1")
	if err != nil || len(rooms) != 2 {
		t.Fatalf("unexpected rooms %v %v", rooms, err)
	}
	if _, err := svc.Rooms(context.Background(), "42"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
