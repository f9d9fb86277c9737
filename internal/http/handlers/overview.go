package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/overview/financial-summary
func (a *API) FinancialSummary(c *gin.Context) {
	sum, err := a.overview().FinancialSummary(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": sum, "currency": a.deps.Currency})
}

// GET /api/overview/hotels
func (a *API) HotelsSummary(c *gin.Context) {
	rows, err := a.overview().Hotels(c.Request.Context(), c.Query("search"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows, "total": len(rows)})
}

// GET /api/overview/statistics
func (a *API) Statistics(c *gin.Context) {
	year, err := queryInt(c, "year", 0)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	st, err := a.overview().Statistics(c.Request.Context(), year)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
