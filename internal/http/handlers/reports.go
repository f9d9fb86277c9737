package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/reports
func (a *API) GetReports(c *gin.Context) {
	reports, err := a.reports(c).Build(c.Request.Context(), c.Query("search"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GET /api/reports/export
func (a *API) ExportReports(c *gin.Context) {
	pdf, filename, err := a.reports(c).ExportPDF(c.Request.Context(), c.Query("search"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
