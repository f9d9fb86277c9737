package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/users
func (a *API) ListUsers(c *gin.Context) {
	users, err := a.deps.Users.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": users, "total": len(users)})
}
