//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	inviteModel "github.com/tbrandt27/football-pick-em-sub003/internal/invite/model"
	pickModel "github.com/tbrandt27/football-pick-em-sub003/internal/pick/model"
	poolModel "github.com/tbrandt27/football-pick-em-sub003/internal/pool/model"
	"github.com/tbrandt27/football-pick-em-sub003/internal/provider"
	scheduleModel "github.com/tbrandt27/football-pick-em-sub003/internal/schedule/model"
	standingsModel "github.com/tbrandt27/football-pick-em-sub003/internal/standings/model"
)

func (s *E2ETestSuite) TestHealth() {
	resp, respBody := s.doRequest("GET", "/health", "", nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(respBody), "ok")
}

func (s *E2ETestSuite) TestAuthFlow() {
	auth := s.register("alice@example.com", "password123")
	s.NotEmpty(auth.Token)
	s.Equal("alice@example.com", auth.User.Email)
	s.False(auth.User.IsAdmin)

	// Duplicate registration is rejected.
	resp, respBody := s.doJSON("POST", "/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("EMAIL_TAKEN", code)

	// Wrong password is rejected.
	resp, respBody = s.doJSON("POST", "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	code, _ = s.parseErrorResponse(respBody)
	s.Equal("INVALID_CREDENTIALS", code)

	// Protected routes require a token.
	resp, _ = s.doRequest("GET", "/users/me", "", nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.doRequest("GET", "/users/me", auth.Token, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestSeasonAdminOnly() {
	player := s.register("player@example.com", "password123")

	resp, respBody := s.doJSON("POST", "/seasons", player.Token, map[string]any{"label": "2025"})
	s.Equal(http.StatusForbidden, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("FORBIDDEN", code)

	admin := s.registerAdmin("admin@example.com", "password123")
	season := s.createSeason(admin.Token, "2025")
	s.True(season.IsCurrent)

	resp, respBody = s.doRequest("GET", "/seasons/current", player.Token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(respBody), "2025")
}

func (s *E2ETestSuite) TestInviteFlow() {
	admin := s.registerAdmin("admin@example.com", "password123")
	season := s.createSeason(admin.Token, "2025")

	owner := s.register("owner@example.com", "password123")
	pool := s.createPool(owner.Token, "Office Pool", poolModel.ModeWeekly, season.ID)

	resp, respBody := s.doJSON("POST", fmt.Sprintf("/pools/%d/invitations", pool.ID), owner.Token,
		map[string]string{"email": "friend@example.com"})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "create invitation: %s", respBody)

	var invitation inviteModel.Invitation
	s.Require().NoError(json.Unmarshal(respBody, &invitation))
	s.NotEmpty(invitation.Token)

	// Registering with the invite token joins the pool immediately.
	resp, respBody = s.doJSON("POST", "/auth/register", "", map[string]string{
		"email":        "friend@example.com",
		"password":     "password123",
		"invite_token": invitation.Token,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var friendAuth struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(respBody, &friendAuth))

	resp, respBody = s.doRequest("GET", fmt.Sprintf("/pools/%d/participants", pool.ID), friendAuth.Token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, "friend should see the pool: %s", respBody)

	var participants struct {
		Participants []poolModel.Participant `json:"participants"`
	}
	s.Require().NoError(json.Unmarshal(respBody, &participants))
	s.Len(participants.Participants, 2)
}

func (s *E2ETestSuite) TestPickAndScoreFlow() {
	admin := s.registerAdmin("admin@example.com", "password123")
	season := s.createSeason(admin.Token, "2025")

	owner := s.register("owner@example.com", "password123")
	pool := s.createPool(owner.Token, "Office Pool", poolModel.ModeWeekly, season.ID)

	// Load week 1 via the stub feed.
	kickoff := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	result := s.syncWeek(admin.Token, season.ID, 1, []provider.GameScore{
		{ExternalID: "401", HomeAbbr: "SEA", AwayAbbr: "SF", Status: "scheduled", StartTime: kickoff},
	})
	s.Equal(1, result.GamesUpserted)

	resp, respBody := s.doRequest("GET", fmt.Sprintf("/games?season_id=%d&week=1", season.ID), owner.Token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var gameList struct {
		Games []scheduleModel.ScheduledGame `json:"games"`
	}
	s.Require().NoError(json.Unmarshal(respBody, &gameList))
	s.Require().Len(gameList.Games, 1)
	game := gameList.Games[0]

	// Pick the home team.
	resp, respBody = s.doJSON("POST", "/picks", owner.Token, map[string]any{
		"pool_id": pool.ID,
		"game_id": game.ID,
		"team_id": game.HomeTeamID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "submit pick: %s", respBody)

	// Re-picking the same game updates in place.
	resp, _ = s.doJSON("POST", "/picks", owner.Token, map[string]any{
		"pool_id": pool.ID,
		"game_id": game.ID,
		"team_id": game.HomeTeamID,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	// A team that is not playing is rejected.
	resp, respBody = s.doJSON("POST", "/picks", owner.Token, map[string]any{
		"pool_id": pool.ID,
		"game_id": game.ID,
		"team_id": 9999,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("TEAM_NOT_IN_GAME", code)

	// Final score comes in; home team wins.
	result = s.syncWeek(admin.Token, season.ID, 1, []provider.GameScore{
		{ExternalID: "401", HomeAbbr: "SEA", AwayAbbr: "SF", HomeScore: 24, AwayScore: 17, Status: "final", StartTime: kickoff},
	})
	s.Equal(1, result.GamesFinal)
	s.Equal(1, result.PicksScored)

	resp, respBody = s.doRequest("GET", fmt.Sprintf("/pools/%d/standings", pool.ID), owner.Token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var standings struct {
		Standings []standingsModel.Row `json:"standings"`
	}
	s.Require().NoError(json.Unmarshal(respBody, &standings))
	s.Require().Len(standings.Standings, 1)
	s.Equal(1, standings.Standings[0].TotalPicks)
	s.Equal(1, standings.Standings[0].CorrectPicks)
	s.InDelta(100.0, standings.Standings[0].PickPercentage, 0.01)

	// Once the game is final, picking it is rejected.
	resp, respBody = s.doJSON("POST", "/picks", owner.Token, map[string]any{
		"pool_id": pool.ID,
		"game_id": game.ID,
		"team_id": game.AwayTeamID,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	code, _ = s.parseErrorResponse(respBody)
	s.Equal("GAME_ALREADY_STARTED", code)
}

func (s *E2ETestSuite) TestSurvivorTeamExclusivity() {
	admin := s.registerAdmin("admin@example.com", "password123")
	season := s.createSeason(admin.Token, "2025")

	owner := s.register("owner@example.com", "password123")
	pool := s.createPool(owner.Token, "Survivor", poolModel.ModeSurvivor, season.ID)

	kickoff := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	s.syncWeek(admin.Token, season.ID, 1, []provider.GameScore{
		{ExternalID: "501", HomeAbbr: "SEA", AwayAbbr: "SF", Status: "scheduled", StartTime: kickoff},
	})
	s.syncWeek(admin.Token, season.ID, 2, []provider.GameScore{
		{ExternalID: "502", HomeAbbr: "SEA", AwayAbbr: "KC", Status: "scheduled", StartTime: kickoff.Add(7 * 24 * time.Hour)},
	})

	var week1, week2 scheduleModel.ScheduledGame
	s.Require().NoError(s.db.Where("external_id = ?", "501").First(&week1).Error)
	s.Require().NoError(s.db.Where("external_id = ?", "502").First(&week2).Error)

	resp, respBody := s.doJSON("POST", "/picks", owner.Token, map[string]any{
		"pool_id": pool.ID,
		"game_id": week1.ID,
		"team_id": week1.HomeTeamID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "week 1 pick: %s", respBody)

	// The same team cannot carry into a later week.
	resp, respBody = s.doJSON("POST", "/picks", owner.Token, map[string]any{
		"pool_id": pool.ID,
		"game_id": week2.ID,
		"team_id": week2.HomeTeamID,
	})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("DUPLICATE_SURVIVOR_TEAM", code)

	// Used teams reports the week 1 team for the week 2 decision.
	resp, respBody = s.doRequest("GET",
		fmt.Sprintf("/pools/%d/used-teams?season_id=%d&week=2", pool.ID, season.ID), owner.Token, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var used struct {
		TeamIDs []uint `json:"team_ids"`
	}
	s.Require().NoError(json.Unmarshal(respBody, &used))
	s.Equal([]uint{week1.HomeTeamID}, used.TeamIDs)

	// The other side of the week 2 game is still available.
	resp, respBody = s.doJSON("POST", "/picks", owner.Token, map[string]any{
		"pool_id": pool.ID,
		"game_id": week2.ID,
		"team_id": week2.AwayTeamID,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "week 2 pick: %s", respBody)

	var picks []pickModel.Pick
	s.Require().NoError(s.db.Where("pool_id = ?", pool.ID).Find(&picks).Error)
	s.Len(picks, 2)
}

func (s *E2ETestSuite) TestPoolMembershipGates() {
	admin := s.registerAdmin("admin@example.com", "password123")
	season := s.createSeason(admin.Token, "2025")

	owner := s.register("owner@example.com", "password123")
	outsider := s.register("outsider@example.com", "password123")
	pool := s.createPool(owner.Token, "Private Pool", poolModel.ModeWeekly, season.ID)

	resp, respBody := s.doRequest("GET", fmt.Sprintf("/pools/%d", pool.ID), outsider.Token, nil)
	s.Equal(http.StatusForbidden, resp.StatusCode)
	code, _ := s.parseErrorResponse(respBody)
	s.Equal("FORBIDDEN", code)

	resp, _ = s.doRequest("GET", fmt.Sprintf("/pools/%d/standings", pool.ID), outsider.Token, nil)
	s.Equal(http.StatusForbidden, resp.StatusCode)

	// Admins bypass membership.
	resp, _ = s.doRequest("GET", fmt.Sprintf("/pools/%d", pool.ID), admin.Token, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
}
