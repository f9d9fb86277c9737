package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservoria/internal/calendar"
	"reservoria/internal/domain/models"
	"reservoria/internal/services"
)

// MaxVisiblePerDay is how many reservations a day cell shows before
// collapsing the rest into more_count.
const MaxVisiblePerDay = 2

type calendarCell struct {
	calendar.DayCell
	VisibleCount int `json:"visible_count"`
	MoreCount    int `json:"more_count"`
}

type calendarResponse struct {
	services.CalendarPage
	Cells []calendarCell `json:"cells"`
}

func calendarQuery(c *gin.Context) (services.CalendarQuery, error) {
	step, err := queryInt(c, "step", 0)
	if err != nil {
		return services.CalendarQuery{}, err
	}
	return services.CalendarQuery{
		View:       c.Query("view"),
		Date:       c.Query("date"),
		Step:       step,
		FacilityID: c.Query("facility_id"),
		RoomID:     c.Query("room_id"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}, nil
}

// GET /api/calendar
func (a *API) GetCalendar(c *gin.Context) {
	q, err := calendarQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := a.calendar(c).Page(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	cells := make([]calendarCell, 0, len(page.Cells))
	for _, cell := range page.Cells {
		visible := min(len(cell.Reservations), MaxVisiblePerDay)
		cells = append(cells, calendarCell{
			DayCell:      cell,
			VisibleCount: visible,
			MoreCount:    len(cell.Reservations) - visible,
		})
	}
	c.JSON(http.StatusOK, calendarResponse{CalendarPage: page, Cells: cells})
}

// GET /api/calendar/reservations
func (a *API) ListReservations(c *gin.Context) {
	q, err := calendarQuery(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	list, err := a.calendar(c).ListReservations(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if list == nil {
		list = []models.Reservation{}
	}
	c.JSON(http.StatusOK, gin.H{"items": list, "total": len(list)})
}

// GET /api/calendar/reservations/:id
func (a *API) GetReservation(c *gin.Context) {
	r, err := a.calendar(c).Reservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
