package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/hermes"
	"github.com/MikeSquared-Agency/Showroom/internal/quiz"
	"github.com/MikeSquared-Agency/Showroom/internal/scoring"
)

type MatchHandler struct {
	matcher       *scoring.Matcher
	questions     []quiz.Question
	hermes        hermes.Client
	schema        *gojsonschema.Schema
	defaultBudget float64
	logger        *slog.Logger
}

func NewMatchHandler(m *scoring.Matcher, h hermes.Client, schema *gojsonschema.Schema, defaultBudget float64, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		matcher:       m,
		questions:     quiz.Questions(),
		hermes:        h,
		schema:        schema,
		defaultBudget: defaultBudget,
		logger:        logger,
	}
}

type matchRequest struct {
	Selections quiz.Selections `json:"selections"`
	Priorities *quiz.Priorities `json:"priorities,omitempty"`
	Budget     *float64         `json:"budget,omitempty"`
	Limit      int              `json:"limit,omitempty"`
}

type matchItem struct {
	scoring.MatchResult
	Car catalog.Car `json:"car"`
}

type matchResponse struct {
	Responses  quiz.Responses `json:"responses"`
	Results    []matchItem    `json:"results"`
	Unanswered []string       `json:"unanswered,omitempty"`
}

func (h *MatchHandler) responses(req matchRequest) quiz.Responses {
	budget := h.defaultBudget
	if req.Budget != nil {
		budget = *req.Budget
	}
	return quiz.Derive(h.questions, req.Selections, req.Priorities, budget)
}

// Match derives the shopper's persona and ranks the catalog against it.
// POST /api/v1/match
func (h *MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := decodeValidated(r, h.schema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	resp := h.responses(req)
	ranked := h.matcher.Match(resp, req.Limit)
	matchDuration.Observe(time.Since(start).Seconds())
	matchRequests.Inc()

	items := make([]matchItem, 0, len(ranked))
	for _, res := range ranked {
		car, err := catalog.GetCar(res.CarID)
		if err != nil {
			h.logger.Warn("ranked car missing from catalog", "car_id", res.CarID)
			continue
		}
		items = append(items, matchItem{MatchResult: res, Car: car})
	}

	if h.hermes != nil {
		evt := hermes.MatchCompletedEvent{
			RequestID:   requestID(r),
			Driving:     string(resp.Driving),
			Sensory:     string(resp.Sensory),
			Tech:        string(resp.Tech),
			Maintenance: string(resp.Maintenance),
			Budget:      resp.Budget,
			Results:     len(items),
			Timestamp:   time.Now().UTC(),
		}
		if len(items) > 0 {
			evt.TopCarID = items[0].CarID
			evt.TopScore = items[0].MatchScore
		}
		_ = h.hermes.Publish(hermes.SubjectMatchCompleted, evt)
	}

	writeJSON(w, http.StatusOK, matchResponse{
		Responses:  resp,
		Results:    items,
		Unanswered: quiz.Unanswered(h.questions, req.Selections),
	})
}

// Explain returns the per-attribute breakdown for one vehicle.
// POST /api/v1/match/explain/{car_id}
func (h *MatchHandler) Explain(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "car_id")
	profile, ok := h.matcher.Profile(carID)
	if !ok {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}

	var req matchRequest
	if err := decodeValidated(r, h.schema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.responses(req)
	exp := scoring.Explain(profile, scoring.Synthesize(resp), resp.Budget)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"responses":   resp,
		"explanation": exp,
	})
}

func requestID(r *http.Request) string {
	if id := chiMiddleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}
