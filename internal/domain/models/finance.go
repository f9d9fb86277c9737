package models

type FinancialSummary struct {
	ReservationRevenue float64 `json:"reservation_revenue"`
	CommissionEarned   float64 `json:"commission_earned"`
	PlatformCosts      float64 `json:"platform_costs"`
	AmountToPayHotel   float64 `json:"amount_to_pay_hotel"`
}

// HotelFinancialSummary is one row of the overview hotels table.
type HotelFinancialSummary struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	City                 string  `json:"city"`
	ReservationCount     int     `json:"reservation_count"`
	ReservationRevenue   float64 `json:"reservation_revenue"`
	PlatformEarnings     float64 `json:"platform_earnings"`
	AmountToPayHotel     float64 `json:"amount_to_pay_hotel"`
	ExpectedFromPlatform float64 `json:"expected_from_platform"`
	DelayedAmount        float64 `json:"delayed_amount"`
	CollectionPending    bool    `json:"collection_pending"`
}

type Statistics struct {
	TotalFacilities   int `json:"total_facilities"`
	ActiveFacilities  int `json:"active_facilities"`
	TotalRooms        int `json:"total_rooms"`
	ActiveRooms       int `json:"active_rooms"`
	TotalReservations int `json:"total_reservations"`
	ReservationsYear  int `json:"reservations_year"`
	TotalUsers        int `json:"total_users"`
	AdminUsers        int `json:"admin_users"`
}
