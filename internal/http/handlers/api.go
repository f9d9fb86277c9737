package handlers

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"

	"reservoria/internal/events"
	"reservoria/internal/http/middleware"
	"reservoria/internal/repositories"
	"reservoria/internal/services"
)

// Deps are the collaborators shared by every handler.
type Deps struct {
	DB           *sql.DB
	Reservations repositories.ReservationSource
	Facilities   repositories.FacilitySource
	Users        repositories.UserStore
	Events       events.Publisher

	JWTSecret  []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	BcryptCost int

	Rates    services.Rates
	Currency string
	Now      func() time.Time
}

// API builds a service per request so each call carries its request id.
type API struct {
	deps Deps
}

func New(deps Deps) *API {
	if deps.Events == nil {
		deps.Events = events.Noop{}
	}
	return &API{deps: deps}
}

// Tokens verifies bearer tokens for the auth middleware.
func (a *API) Tokens() middleware.TokenParser {
	return a.auth(nil)
}

func (a *API) auth(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:      a.deps.Users,
		Secret:     a.deps.JWTSecret,
		AccessTTL:  a.deps.AccessTTL,
		RefreshTTL: a.deps.RefreshTTL,
		BcryptCost: a.deps.BcryptCost,
		Events:     a.deps.Events,
		Now:        a.deps.Now,
		RequestID:  middleware.GetRequestID(c),
	}
}

func (a *API) calendar(c *gin.Context) services.CalendarService {
	return services.CalendarService{
		Reservations: a.deps.Reservations,
		Now:          a.deps.Now,
		RequestID:    middleware.GetRequestID(c),
	}
}

func (a *API) facilities() services.FacilityService {
	return services.FacilityService{Facilities: a.deps.Facilities}
}

func (a *API) overview() services.OverviewService {
	return services.OverviewService{
		Reservations: a.deps.Reservations,
		Facilities:   a.deps.Facilities,
		Users:        a.deps.Users,
		Rates:        a.deps.Rates,
		Now:          a.deps.Now,
	}
}

func (a *API) reports(c *gin.Context) services.ReportsService {
	return services.ReportsService{
		Reservations: a.deps.Reservations,
		Facilities:   a.deps.Facilities,
		Rates:        a.deps.Rates,
		Currency:     a.deps.Currency,
		Events:       a.deps.Events,
		Now:          a.deps.Now,
		RequestID:    middleware.GetRequestID(c),
		UserID:       c.GetString(middleware.UserIDKey),
	}
}
