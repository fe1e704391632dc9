package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var errHTTPServer = errors.New("errored out while serving http")

func (a *App) createRouter() *gin.Engine {
	if a.config.RunMode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(newRateLimiter().middleware())

	engine.GET("/", a.handleGetIndex())
	engine.GET("/api/matches", a.handleGetMatches())
	engine.GET("/api/rankings", a.handleGetRankings())
	engine.GET("/api/results", a.handleGetResults())
	engine.GET("/api/events", a.handleGetEvents())
	engine.GET("/api/player", a.handleGetPlayer())
	engine.GET("/api/team", a.handleGetTeam())
	engine.GET("/api/proxy", a.handleGetProxy())

	return engine
}

func (a *App) startAPI(ctx context.Context, addr string) error {
	const (
		// Player lookups chain up to three upstream fetches, so the
		// write timeout has to cover their combined worst case.
		apiHandlerTimeout = time.Second * 60

		shutdownTimeout = time.Second * 10
	)

	httpServer := &http.Server{ //nolint:exhaustruct
		Addr:              addr,
		Handler:           a.router,
		ReadTimeout:       time.Second * 10,
		ReadHeaderTimeout: time.Second * 5,
		WriteTimeout:      apiHandlerTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if errShutdown := httpServer.Shutdown(shutdownCtx); errShutdown != nil {
			slog.Error("Error shutting down http service", ErrAttr(errShutdown))
		}
	}()

	slog.Info("Starting HTTP service", slog.String("address", addr))

	if errServe := httpServer.ListenAndServe(); errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
		return errors.Join(errServe, errHTTPServer)
	}

	return nil
}
