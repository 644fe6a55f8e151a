package handler_test

import (
	"context"
	"net/http"
	"testing"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDaily(t *testing.T) {
	m := newTestMocks()
	m.daily.GetDailyFunc = func(ctx context.Context) (*domain.DailySelection, error) {
		return &domain.DailySelection{
			Scenario:         domain.Scenario{ID: 1, Title: "Open the button"},
			CommunityStats:   map[string]int{"Raise": 51, "Fold": 17, "Call": 32},
			CorrectPct:       51,
			SecondsRemaining: 50400,
			Date:             "2024-03-15",
		}, nil
	}

	resp := doRequest(t, setupApp(m), http.MethodGet, "/api/daily", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decode(t, resp, &body)
	assert.EqualValues(t, 51, body["correctPct"])
	assert.EqualValues(t, 50400, body["secondsRemaining"])
	assert.Equal(t, "2024-03-15", body["date"])
	assert.Len(t, body["communityStats"], 3)
}

func TestCheckDaily(t *testing.T) {
	m := newTestMocks()
	m.daily.CheckCompletionFunc = func(ctx context.Context, userID, date string) (*dto.DailyCheckResponse, error) {
		if date == "2024-03-14" {
			return &dto.DailyCheckResponse{Completed: true, Completion: &dto.DailyCompletionItem{ID: "d1", UserID: userID, ChallengeDate: date}}, nil
		}
		return &dto.DailyCheckResponse{}, nil
	}
	app := setupApp(m)

	resp := doRequest(t, app, http.MethodGet, "/api/daily/check/alice?date=2024-03-14", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var done map[string]interface{}
	decode(t, resp, &done)
	assert.Equal(t, true, done["completed"])
	assert.NotNil(t, done["completion"])

	resp = doRequest(t, app, http.MethodGet, "/api/daily/check/alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notDone map[string]interface{}
	decode(t, resp, &notDone)
	assert.Equal(t, false, notDone["completed"])
	assert.Nil(t, notDone["completion"])
}

func TestSubmitDaily(t *testing.T) {
	m := newTestMocks()
	submitted := 0
	m.daily.SubmitDailyFunc = func(ctx context.Context, req dto.DailySubmitRequest) (*dto.DailySubmitResponse, error) {
		submitted++
		if submitted > 1 {
			return nil, domain.NewDailyAlreadyCompletedError("2024-03-15")
		}
		return &dto.DailySubmitResponse{IsCorrect: true, CorrectAnswer: "Raise", RatingChange: 15, User: *sampleUser(req.UserID)}, nil
	}
	app := setupApp(m)
	body := dto.DailySubmitRequest{UserID: "alice", ScenarioID: 1, Answer: "Raise", Date: "2024-03-15"}

	resp := doRequest(t, app, http.MethodPost, "/api/daily/submit", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ok dto.DailySubmitResponse
	decode(t, resp, &ok)
	assert.Equal(t, 15, ok.RatingChange)

	resp = doRequest(t, app, http.MethodPost, "/api/daily/submit", body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody middleware.ErrorResponse
	decode(t, resp, &errBody)
	assert.Equal(t, "DAILY_ALREADY_COMPLETED", errBody.Code)
	assert.Equal(t, "Already completed today's challenge", errBody.Error)
}
