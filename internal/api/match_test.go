package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Showroom/internal/hermes"
	"github.com/MikeSquared-Agency/Showroom/internal/quiz"
	"github.com/MikeSquared-Agency/Showroom/internal/scoring"
)

var cautiousSelections = map[string]string{
	"driving-pace": "calm", "driving-confidence": "steady",
	"sensory-cabin": "quiet", "sensory-seating": "comfort",
	"tech-attitude": "basic-tech", "tech-learning": "intuitive",
	"maintenance-attitude": "minimal", "maintenance-diy": "dealer",
}

func TestMatchEmptyBodyUsesDefaults(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/v1/match", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[matchResponse](t, w)
	assert.Equal(t, quiz.DrivingBalanced, resp.Responses.Driving)
	assert.Equal(t, quiz.TechConnected, resp.Responses.Tech)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "10", resp.Results[0].CarID)
	assert.Equal(t, "bZ4X", resp.Results[0].Car.Model)
	assert.Len(t, resp.Unanswered, 8)
}

func TestMatchCautiousOnBudget(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/v1/match", map[string]interface{}{
		"selections": cautiousSelections,
		"budget":     30000,
		"limit":      5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[matchResponse](t, w)
	assert.Equal(t, quiz.Responses{
		Driving: quiz.DrivingCautious, Sensory: quiz.SensoryQuiet,
		Tech: quiz.TechMinimal, Maintenance: quiz.MaintenanceHandsOff, Budget: 30000,
	}, resp.Responses)
	require.Len(t, resp.Results, 5)
	assert.Equal(t, "3", resp.Results[0].CarID)
	assert.Equal(t, 83, resp.Results[0].MatchScore)
	assert.Equal(t, []string{scoring.HighlightMaintenance, scoring.HighlightBudget}, resp.Results[0].Highlights)
	assert.Empty(t, resp.Unanswered)
}

func TestMatchRejectsInvalidBodies(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed json", `{"selections":`},
		{"slider above 10", map[string]interface{}{"priorities": map[string]float64{"safety": 11}}},
		{"negative budget", map[string]interface{}{"budget": -1}},
		{"limit too large", map[string]interface{}{"limit": 100}},
		{"unknown field", map[string]interface{}{"color": "red"}},
		{"non-string answer", map[string]interface{}{"selections": map[string]int{"driving-pace": 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/v1/match", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestMatchPublishesEvent(t *testing.T) {
	mockHermes := &MockHermes{}
	mockHermes.On("Publish", hermes.SubjectMatchCompleted, mock.MatchedBy(func(e hermes.MatchCompletedEvent) bool {
		return e.TopCarID == "3" && e.TopScore == 83 && e.Results == 3 && e.RequestID != ""
	})).Return(nil)

	r := newTestRouter(t, mockHermes)
	w := do(t, r, http.MethodPost, "/api/v1/match", map[string]interface{}{
		"selections": cautiousSelections,
		"budget":     30000,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	mockHermes.AssertExpectations(t)
}

func TestMatchSurvivesPublishFailure(t *testing.T) {
	mockHermes := &MockHermes{}
	mockHermes.On("Publish", mock.AnythingOfType("string"), mock.Anything).Return(errors.New("nats down"))

	r := newTestRouter(t, mockHermes)
	w := do(t, r, http.MethodPost, "/api/v1/match", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	mockHermes.AssertNumberOfCalls(t, "Publish", 1)
}

func TestMatchExplain(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(t, r, http.MethodPost, "/api/v1/match/explain/3", map[string]interface{}{
		"selections": cautiousSelections,
		"budget":     30000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[struct {
		Explanation scoring.Explanation `json:"explanation"`
	}](t, w)
	exp := body.Explanation
	assert.Equal(t, "3", exp.CarID)
	assert.Equal(t, 83, exp.MatchScore)
	assert.Len(t, exp.Factors, len(scoring.Attributes))
	assert.Greater(t, exp.BudgetAdjustment, 1.0)

	w = do(t, r, http.MethodPost, "/api/v1/match/explain/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
