package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGamesBySeasonWeek(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scoreboard", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("season"))
		assert.Equal(t, "7", r.URL.Query().Get("week"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"games":[
			{"id":"401","home_team":"SEA","away_team":"SF","home_score":24,"away_score":17,"status":"STATUS_FINAL","start_time":"2025-10-19T17:00:00Z"},
			{"id":"402","home_team":"KC","away_team":"BUF","home_score":0,"away_score":0,"status":"STATUS_SCHEDULED","start_time":"2025-10-19T20:25:00Z"}
		]}`))
	}))
	defer server.Close()

	games, err := NewHTTP(server.URL).GamesBySeasonWeek(context.Background(), "2025", 7)
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "401", games[0].ExternalID)
	assert.Equal(t, "final", games[0].Status)
	assert.Equal(t, 24, games[0].HomeScore)
	assert.Equal(t, time.Date(2025, 10, 19, 17, 0, 0, 0, time.UTC), games[0].StartTime)
	assert.Equal(t, "scheduled", games[1].Status)
}

func TestGamesBySeasonWeekRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"games":[{"id":"401","home_team":"SEA","away_team":"SF","status":"STATUS_IN_PROGRESS","start_time":"2025-10-19T17:00:00Z"}]}`))
	}))
	defer server.Close()

	games, err := NewHTTP(server.URL).GamesBySeasonWeek(context.Background(), "2025", 7)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "in_progress", games[0].Status)
	assert.EqualValues(t, 2, calls.Load())
}

func TestGamesBySeasonWeekClientErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTP(server.URL).GamesBySeasonWeek(context.Background(), "2025", 7)
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestMapStatus(t *testing.T) {
	assert.Equal(t, "final", MapStatus("STATUS_FINAL"))
	assert.Equal(t, "final", MapStatus("STATUS_FINAL_OT"))
	assert.Equal(t, "in_progress", MapStatus("STATUS_HALFTIME"))
	assert.Equal(t, "scheduled", MapStatus("STATUS_SCHEDULED"))
	// Unknown statuses never make a game score-eligible.
	assert.Equal(t, "scheduled", MapStatus("STATUS_SOMETHING_NEW"))
}
