package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	intdb "reservoria/internal/db"
)

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "reservoria backend running"})
}

func (a *API) DBCheck(c *gin.Context) {
	if a.deps.DB == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database not connected", nil)
		return
	}
	ctx := c.Request.Context()
	if err := a.deps.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database ping failed", err.Error())
		return
	}
	tables := gin.H{}
	for _, t := range []string{"facilities", "rooms", "reservations", "users"} {
		tables[t] = intdb.HasTable(ctx, a.deps.DB, t)
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "tables": tables})
}
