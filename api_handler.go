package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kawakaze/hltv-api/domain"
)

// renderEnvelope picks the response status from the envelope: hard
// failures map to 500, everything else (including empty results and
// failed lookups) is a normal 200.
func renderEnvelope[T any](ctx *gin.Context, envelope domain.Envelope[T]) {
	status := http.StatusOK
	if envelope.Error != "" {
		status = http.StatusInternalServerError
	}

	ctx.JSON(status, envelope)
}

func (a *App) handleGetIndex() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"endpoints": []string{
				"/api/matches",
				"/api/rankings?limit=30",
				"/api/results",
				"/api/events",
				"/api/player?name=<player_name>",
				"/api/team?name=<team_name>",
				"/api/proxy?path=/matches",
			},
		})
	}
}

func (a *App) handleGetMatches() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		renderEnvelope(ctx, a.client.MatchesEnvelope(ctx.Request.Context()))
	}
}

func (a *App) handleGetRankings() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		limit := a.config.RankingsLimit

		if limitQuery, ok := ctx.GetQuery("limit"); ok {
			if parsed, errParse := strconv.Atoi(limitQuery); errParse == nil && parsed > 0 {
				limit = parsed
			}
		}

		renderEnvelope(ctx, a.client.RankingsEnvelope(ctx.Request.Context(), limit))
	}
}

func (a *App) handleGetResults() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		renderEnvelope(ctx, a.client.ResultsEnvelope(ctx.Request.Context()))
	}
}

func (a *App) handleGetEvents() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		renderEnvelope(ctx, a.client.EventsEnvelope(ctx.Request.Context()))
	}
}

func (a *App) handleGetPlayer() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		name, ok := ctx.GetQuery("name")
		if !ok || strings.TrimSpace(name) == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest,
				errorEnvelope(domain.PlayerProfile{}, domain.ErrPlayerNameMissing))

			return
		}

		renderEnvelope(ctx, a.client.PlayerEnvelope(ctx.Request.Context(), name))
	}
}

func (a *App) handleGetTeam() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		name, ok := ctx.GetQuery("name")
		if !ok || strings.TrimSpace(name) == "" {
			ctx.AbortWithStatusJSON(http.StatusBadRequest,
				errorEnvelope(domain.TeamProfile{}, domain.ErrTeamNameMissing))

			return
		}

		renderEnvelope(ctx, a.client.TeamEnvelope(ctx.Request.Context(), name))
	}
}

// handleGetProxy forwards a single upstream page as raw HTML, useful
// for debugging selector changes without hitting the source directly.
func (a *App) handleGetProxy() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.DefaultQuery("path", "/")
		if !strings.HasPrefix(path, "/") {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errorEnvelope("", domain.ErrProxyPath))

			return
		}

		body, errBody := a.client.fetchRaw(ctx.Request.Context(), path)
		if errBody != nil {
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, errorEnvelope("", errBody))

			return
		}

		ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
	}
}
