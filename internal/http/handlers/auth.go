package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservoria/internal/http/middleware"
	"reservoria/internal/services"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// POST /api/auth/login
func (a *API) Login(c *gin.Context) {
	var req services.LoginInput
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.auth(c).Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/auth/register
func (a *API) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.auth(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// POST /api/auth/refresh
func (a *API) Refresh(c *gin.Context) {
	var req refreshRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := a.auth(c).Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/auth/me
func (a *API) Me(c *gin.Context) {
	u, err := a.auth(c).Me(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// POST /api/auth/logout. Tokens are stateless; the client drops them.
func (a *API) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
