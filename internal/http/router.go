package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "reservoria/internal/config"
	"reservoria/internal/domain/models"
	h "reservoria/internal/http/handlers"
	"reservoria/internal/http/middleware"
	"reservoria/internal/utils"
)

func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"code":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/db-check", a.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", a.Login)
		auth.POST("/register", a.Register)
		auth.POST("/refresh", a.Refresh)

		protected := api.Group("")
		protected.Use(middleware.RequireAuth(a.Tokens()))

		protected.GET("/auth/me", a.Me)
		protected.POST("/auth/logout", a.Logout)

		// Overview
		overview := protected.Group("/overview")
		overview.GET("/financial-summary", a.FinancialSummary)
		overview.GET("/hotels", a.HotelsSummary)
		overview.GET("/statistics", a.Statistics)

		// Facilities
		facilities := protected.Group("/facilities")
		facilities.GET("", a.ListFacilities)
		facilities.GET("/:id", a.GetFacility)
		facilities.GET("/:id/rooms", a.ListRooms)

		// Calendar
		cal := protected.Group("/calendar")
		cal.GET("", a.GetCalendar)
		cal.GET("/reservations", a.ListReservations)
		cal.GET("/reservations/:id", a.GetReservation)

		// Reports
		reports := protected.Group("/reports")
		reports.GET("", a.GetReports)
		reports.GET("/export", middleware.RequireRoles(models.RoleAdmin, models.RoleManager), a.ExportReports)

		protected.GET("/users", middleware.RequireRoles(models.RoleAdmin), a.ListUsers)
	}

	return r
}
