package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kawakaze/hltv-api/domain"
)

func newTestApp(client *HLTVClient) *App {
	var config appConfig
	config.RankingsLimit = defaultRankingsLimit

	app := &App{config: config, client: client, router: nil}
	app.router = app.createRouter()

	return app
}

func performRequest(app *App, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, path, nil)
	app.router.ServeHTTP(recorder, request)

	return recorder
}

func decodeEnvelope[T any](t *testing.T, recorder *httptest.ResponseRecorder) domain.Envelope[T] {
	t.Helper()

	var envelope domain.Envelope[T]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	return envelope
}

func TestAPIIndex(t *testing.T) {
	t.Parallel()

	recorder := performRequest(newTestApp(newTestClient(t)), "/")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "/api/matches")
	require.Contains(t, recorder.Body.String(), "/api/player?name=<player_name>")
}

func TestAPIMatches(t *testing.T) {
	t.Parallel()

	recorder := performRequest(newTestApp(newTestClient(t)), "/api/matches")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope[[]domain.MatchSummary](t, recorder)
	require.True(t, envelope.Success)
	require.Equal(t, apiSource, envelope.Source)
	require.Len(t, envelope.Data, 3)
	require.Equal(t, "Vitality", envelope.Data[0].Team1)
}

func TestAPIMatchesUpstreamDown(t *testing.T) {
	t.Parallel()

	recorder := performRequest(newTestApp(newFailingClient(t)), "/api/matches")
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	envelope := decodeEnvelope[[]domain.MatchSummary](t, recorder)
	require.False(t, envelope.Success)
	require.NotEmpty(t, envelope.Error)
}

func TestAPIRankingsLimit(t *testing.T) {
	t.Parallel()

	app := newTestApp(newTestClient(t))

	recorder := performRequest(app, "/api/rankings?limit=2")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeEnvelope[[]domain.RankingEntry](t, recorder).Data, 2)

	// A non-numeric limit falls back to the configured default.
	recorder = performRequest(app, "/api/rankings?limit=abc")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeEnvelope[[]domain.RankingEntry](t, recorder).Data, 3)
}

func TestAPIResults(t *testing.T) {
	t.Parallel()

	recorder := performRequest(newTestApp(newTestClient(t)), "/api/results")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, decodeEnvelope[[]domain.ResultEntry](t, recorder).Success)
}

func TestAPIEvents(t *testing.T) {
	t.Parallel()

	recorder := performRequest(newTestApp(newTestClient(t)), "/api/events")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope[[]domain.EventSummary](t, recorder)
	require.True(t, envelope.Success)
	require.Len(t, envelope.Data, 3)
}

func TestAPIPlayer(t *testing.T) {
	t.Parallel()

	app := newTestApp(newTestClient(t))

	recorder := performRequest(app, "/api/player?name=s1mple")
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope[domain.PlayerProfile](t, recorder)
	require.True(t, envelope.Success)
	require.Equal(t, "Oleksandr Kostyliev", envelope.Data.FullName)

	// Lookup miss is still a 200, just unsuccessful.
	recorder = performRequest(app, "/api/player?name=nobody")
	require.Equal(t, http.StatusOK, recorder.Code)

	missed := decodeEnvelope[domain.PlayerProfile](t, recorder)
	require.False(t, missed.Success)
	require.Empty(t, missed.Error)
}

func TestAPIPlayerMissingName(t *testing.T) {
	t.Parallel()

	recorder := performRequest(newTestApp(newTestClient(t)), "/api/player")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, recorder.Body.String(), "请提供选手名称")
}

func TestAPITeam(t *testing.T) {
	t.Parallel()

	app := newTestApp(newTestClient(t))

	recorder := performRequest(app, "/api/team?name=NAVI")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "Natus Vincere", decodeEnvelope[domain.TeamProfile](t, recorder).Data.Name)

	recorder = performRequest(app, "/api/team?name=")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Contains(t, recorder.Body.String(), "请提供战队名称")
}

func TestAPIProxy(t *testing.T) {
	t.Parallel()

	app := newTestApp(newTestClient(t))

	recorder := performRequest(app, "/api/proxy?path=/matches")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	require.Contains(t, recorder.Body.String(), "match-teamname")

	recorder = performRequest(app, "/api/proxy?path=matches")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}
