package models

type ReportStatus string

const (
	ReportCompleted  ReportStatus = "completed"
	ReportProcessing ReportStatus = "processing"
)

type ReservationReport struct {
	ID                string       `json:"id"`
	Title             string       `json:"title"`
	Period            string       `json:"period"`
	TotalReservations int          `json:"total_reservations"`
	TotalRevenue      float64      `json:"total_revenue"`
	Status            ReportStatus `json:"status"`
}

type FinancialReport struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Period        string       `json:"period"`
	TotalRevenue  float64      `json:"total_revenue"`
	Commission    float64      `json:"commission"`
	HotelPayments float64      `json:"hotel_payments"`
	Status        ReportStatus `json:"status"`
}

type FacilityReport struct {
	ID                string  `json:"id"`
	FacilityID        string  `json:"facility_id"`
	FacilityName      string  `json:"facility_name"`
	Period            string  `json:"period"`
	TotalReservations int     `json:"total_reservations"`
	TotalRevenue      float64 `json:"total_revenue"`
	OccupancyRate     float64 `json:"occupancy_rate"`
	AverageStay       float64 `json:"average_stay"`
}

// Reports is the payload of the reports page.
type Reports struct {
	ReservationReports []ReservationReport `json:"reservation_reports"`
	FinancialReports   []FinancialReport   `json:"financial_reports"`
	FacilityReports    []FacilityReport    `json:"facility_reports"`
}
