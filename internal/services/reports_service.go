package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"reservoria/internal/calendar"
	"reservoria/internal/domain/models"
	"reservoria/internal/events"
	"reservoria/internal/repositories"
	"reservoria/internal/utils"
)

type ReportsService struct {
	Reservations repositories.ReservationSource
	Facilities   repositories.FacilitySource
	Rates        Rates
	Currency     string
	Events       events.Publisher
	Now          func() time.Time
	RequestID    string
	UserID       string
}

type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) period() string { return utils.MonthPeriod(k.year, k.month) }

func (k monthKey) label() string {
	return fmt.Sprintf("%s %d", k.month, k.year)
}

func (k monthKey) first() models.Date { return models.NewDate(k.year, k.month, 1) }

func (s ReportsService) today() models.Date {
	if s.Now != nil {
		return models.DateOf(s.Now())
	}
	return models.DateOf(utils.NowUTC())
}

// Build groups non-cancelled reservations by check-in month. The newest
// period comes first; search filters on report titles and facility names.
func (s ReportsService) Build(ctx context.Context, search string) (models.Reports, error) {
	reservations, err := s.Reservations.ListReservations(ctx, repositories.ReservationFilter{})
	if err != nil {
		return models.Reports{}, err
	}
	facilities, err := s.Facilities.ListFacilities(ctx)
	if err != nil {
		return models.Reports{}, err
	}
	rooms, err := s.Facilities.ListRooms(ctx, "")
	if err != nil {
		return models.Reports{}, err
	}
	roomCount := map[string]int{}
	for _, r := range rooms {
		roomCount[r.FacilityID]++
	}

	byMonth := map[monthKey][]models.Reservation{}
	for _, r := range reservations {
		if r.Status == models.ReservationCancelled {
			continue
		}
		k := monthKey{r.CheckIn.Year(), r.CheckIn.Month()}
		byMonth[k] = append(byMonth[k], r)
	}
	months := make([]monthKey, 0, len(byMonth))
	for k := range byMonth {
		months = append(months, k)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].first().After(months[j].first()) })

	today := s.today()
	out := models.Reports{
		ReservationReports: []models.ReservationReport{},
		FinancialReports:   []models.FinancialReport{},
		FacilityReports:    []models.FacilityReport{},
	}
	for _, k := range months {
		rs := byMonth[k]
		status := models.ReportCompleted
		if !calendar.MonthEnd(k.first()).Before(today) {
			status = models.ReportProcessing
		}
		revenue := 0.0
		for _, r := range rs {
			revenue += r.TotalPrice
		}
		revenue = utils.RoundMoney(revenue)
		commission, costs, hotel := s.Rates.split(revenue)

		resTitle := "Reservation report " + k.label()
		if utils.ContainsFold(search, resTitle) {
			out.ReservationReports = append(out.ReservationReports, models.ReservationReport{
				ID: "res-" + k.period(), Title: resTitle, Period: k.period(),
				TotalReservations: len(rs), TotalRevenue: revenue, Status: status,
			})
		}
		finTitle := "Financial report " + k.label()
		if utils.ContainsFold(search, finTitle) {
			out.FinancialReports = append(out.FinancialReports, models.FinancialReport{
				ID: "fin-" + k.period(), Title: finTitle, Period: k.period(),
				TotalRevenue: revenue, Commission: utils.RoundMoney(commission + costs), HotelPayments: hotel, Status: status,
			})
		}

		for _, f := range facilities {
			if !utils.ContainsFold(search, f.Name) {
				continue
			}
			if rep, ok := facilityReport(f, k, rs, roomCount[f.ID]); ok {
				out.FacilityReports = append(out.FacilityReports, rep)
			}
		}
	}
	return out, nil
}

// facilityReport computes occupancy as booked room nights over available
// room nights in the month. Nights outside the month are not counted.
func facilityReport(f models.Facility, k monthKey, rs []models.Reservation, rooms int) (models.FacilityReport, bool) {
	monthStart := k.first()
	nextMonth := calendar.MonthEnd(monthStart).AddDays(1)
	daysInMonth := monthStart.DaysUntil(nextMonth)

	count, nights, booked := 0, 0, 0
	revenue := 0.0
	for _, r := range rs {
		if r.FacilityID != f.ID {
			continue
		}
		count++
		revenue += r.TotalPrice
		nights += r.Nights()

		from, to := r.CheckIn, r.CheckOut
		if from.Before(monthStart) {
			from = monthStart
		}
		if to.After(nextMonth) {
			to = nextMonth
		}
		if to.After(from) {
			booked += from.DaysUntil(to)
		}
	}
	if count == 0 {
		return models.FacilityReport{}, false
	}

	rep := models.FacilityReport{
		ID:                fmt.Sprintf("fac-%s-%s", f.ID, k.period()),
		FacilityID:        f.ID,
		FacilityName:      f.Name,
		Period:            k.period(),
		TotalReservations: count,
		TotalRevenue:      utils.RoundMoney(revenue),
		AverageStay:       utils.RoundMoney(float64(nights) / float64(count)),
	}
	if rooms > 0 {
		rep.OccupancyRate = utils.RoundMoney(float64(booked) / float64(rooms*daysInMonth) * 100)
	}
	return rep, true
}
