package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservoria/internal/domain"
	"reservoria/internal/services"
)

// GET /api/facilities
func (a *API) ListFacilities(c *gin.Context) {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	limit, err := queryInt(c, "limit", domain.DefaultPageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	res, err := a.facilities().List(c.Request.Context(), services.FacilityListQuery{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/facilities/:id
func (a *API) GetFacility(c *gin.Context) {
	f, err := a.facilities().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// GET /api/facilities/:id/rooms
func (a *API) ListRooms(c *gin.Context) {
	rooms, err := a.facilities().Rooms(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rooms, "total": len(rooms)})
}
