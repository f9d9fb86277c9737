package models

import "time"

type FacilityStatus string

const (
	FacilityActive   FacilityStatus = "active"
	FacilityInactive FacilityStatus = "inactive"
)

// Facility is a hotel property containing rooms.
type Facility struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	City      string         `json:"city"`
	Country   string         `json:"country"`
	CreatedAt time.Time      `json:"created_at"`
	Status    FacilityStatus `json:"status"`
	ImageURL  string         `json:"image_url,omitempty"`
}

type Room struct {
	ID           string         `json:"id"`
	FacilityID   string         `json:"facility_id"`
	FacilityName string         `json:"facility_name"`
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Capacity     int            `json:"capacity"`
	Price        float64        `json:"price"`
	Status       FacilityStatus `json:"status"`
}
