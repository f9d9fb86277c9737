package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "reservoria/internal/config"
	intdb "reservoria/internal/db"
	"reservoria/internal/events"
	router "reservoria/internal/http"
	"reservoria/internal/http/handlers"
	"reservoria/internal/repositories"
	"reservoria/internal/services"
	"reservoria/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logCloser := utils.InitLogger(env.LogLevel, env.LogFile, env.LogJSON)
	defer logCloser.Close()
	log := utils.Log

	if env.IsProduction() && env.JWTSecret == "change-me-in-production" {
		log.Fatal("JWT_SECRET must be set in production")
	}

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer intconfig.CloseDB()

	if env.DBAutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := intdb.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("schema migration failed")
		}
	}

	var reservations repositories.ReservationSource = repositories.ReservationRepository{DB: db}
	if rdb := intconfig.NewRedisClient(env); rdb != nil {
		defer rdb.Close()
		reservations = repositories.CachedReservations{
			Next:   reservations,
			Redis:  rdb,
			TTL:    env.CacheTTL,
			Prefix: "reservoria:reservations",
		}
		log.WithField("addr", env.RedisAddr).Info("reservation cache enabled")
	} else if env.RedisAddr != "" {
		log.WithField("addr", env.RedisAddr).Warn("redis unreachable, running without cache")
	}

	var publisher events.Publisher = events.Noop{}
	if env.RabbitURL != "" {
		publisher = events.NewAMQPPublisher(env.RabbitURL)
	}
	defer publisher.Close()

	api := handlers.New(handlers.Deps{
		DB:           db,
		Reservations: reservations,
		Facilities:   repositories.FacilityRepository{DB: db},
		Users:        repositories.UserRepository{DB: db},
		Events:       publisher,
		JWTSecret:    []byte(env.JWTSecret),
		AccessTTL:    env.AccessTTL,
		RefreshTTL:   env.RefreshTTL,
		BcryptCost:   env.BcryptCost,
		Rates:        services.Rates{Commission: env.CommissionRate, PlatformFee: env.PlatformFeeRate},
		Currency:     env.Currency,
	})

	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", env.AppAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown failed")
		return
	}

	log.Info("server stopped")
}
