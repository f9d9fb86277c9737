package services

import (
	"context"
	"time"

	"reservoria/internal/domain/models"
	"reservoria/internal/repositories"
	"reservoria/internal/utils"
)

// Rates holds the platform's cut of reservation revenue.
type Rates struct {
	Commission  float64
	PlatformFee float64
}

func (r Rates) split(revenue float64) (commission, costs, hotel float64) {
	commission = utils.RoundMoney(revenue * r.Commission)
	costs = utils.RoundMoney(revenue * r.PlatformFee)
	hotel = utils.RoundMoney(revenue - commission - costs)
	return commission, costs, hotel
}

type OverviewService struct {
	Reservations repositories.ReservationSource
	Facilities   repositories.FacilitySource
	Users        repositories.UserStore
	Rates        Rates
	Now          func() time.Time
}

func (s OverviewService) today() models.Date {
	if s.Now != nil {
		return models.DateOf(s.Now())
	}
	return models.DateOf(utils.NowUTC())
}

func (s OverviewService) FinancialSummary(ctx context.Context) (models.FinancialSummary, error) {
	all, err := s.Reservations.ListReservations(ctx, repositories.ReservationFilter{})
	if err != nil {
		return models.FinancialSummary{}, err
	}
	revenue := 0.0
	for _, r := range all {
		if r.Status != models.ReservationCancelled {
			revenue += r.TotalPrice
		}
	}
	revenue = utils.RoundMoney(revenue)
	commission, costs, hotel := s.Rates.split(revenue)
	return models.FinancialSummary{
		ReservationRevenue: revenue,
		CommissionEarned:   commission,
		PlatformCosts:      costs,
		AmountToPayHotel:   hotel,
	}, nil
}

// Hotels summarizes revenue per facility. Pending reservations whose stay has
// already ended count as delayed; pending ones still ahead mark the hotel as
// awaiting collection.
func (s OverviewService) Hotels(ctx context.Context, search string) ([]models.HotelFinancialSummary, error) {
	facilities, err := s.Facilities.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.Reservations.ListReservations(ctx, repositories.ReservationFilter{})
	if err != nil {
		return nil, err
	}
	today := s.today()

	byFacility := map[string][]models.Reservation{}
	for _, r := range all {
		byFacility[r.FacilityID] = append(byFacility[r.FacilityID], r)
	}

	out := []models.HotelFinancialSummary{}
	for _, f := range facilities {
		if !utils.ContainsFold(search, f.Name, f.City) {
			continue
		}
		row := models.HotelFinancialSummary{ID: f.ID, Name: f.Name, City: f.City}
		revenue, delayed := 0.0, 0.0
		for _, r := range byFacility[f.ID] {
			if r.Status == models.ReservationCancelled {
				continue
			}
			row.ReservationCount++
			revenue += r.TotalPrice
			if r.Status == models.ReservationPending {
				if r.CheckOut.Before(today) {
					delayed += r.TotalPrice
				} else {
					row.CollectionPending = true
				}
			}
		}
		row.ReservationRevenue = utils.RoundMoney(revenue)
		commission, costs, hotel := s.Rates.split(row.ReservationRevenue)
		row.PlatformEarnings = utils.RoundMoney(commission + costs)
		row.AmountToPayHotel = hotel
		row.ExpectedFromPlatform = row.ReservationRevenue
		row.DelayedAmount = utils.RoundMoney(delayed)
		out = append(out, row)
	}
	return out, nil
}

// Statistics counts dashboard totals; year selects reservations_year and
// defaults to the current year.
func (s OverviewService) Statistics(ctx context.Context, year int) (models.Statistics, error) {
	if year <= 0 {
		year = s.today().Year()
	}
	facilities, err := s.Facilities.ListFacilities(ctx)
	if err != nil {
		return models.Statistics{}, err
	}
	rooms, err := s.Facilities.ListRooms(ctx, "")
	if err != nil {
		return models.Statistics{}, err
	}
	reservations, err := s.Reservations.ListReservations(ctx, repositories.ReservationFilter{})
	if err != nil {
		return models.Statistics{}, err
	}
	users, err := s.Users.List(ctx)
	if err != nil {
		return models.Statistics{}, err
	}

	st := models.Statistics{
		TotalFacilities:   len(facilities),
		TotalRooms:        len(rooms),
		TotalReservations: len(reservations),
		TotalUsers:        len(users),
	}
	for _, f := range facilities {
		if f.Status == models.FacilityActive {
			st.ActiveFacilities++
		}
	}
	for _, r := range rooms {
		if r.Status == models.FacilityActive {
			st.ActiveRooms++
		}
	}
	for _, r := range reservations {
		if r.CheckIn.Year() == year {
			st.ReservationsYear++
		}
	}
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			st.AdminUsers++
		}
	}
	return st, nil
}
