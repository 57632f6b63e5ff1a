package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/hermes"
	"github.com/MikeSquared-Agency/Showroom/internal/reviews"
)

type ReviewsHandler struct {
	store  reviews.Store
	hermes hermes.Client
	schema *gojsonschema.Schema
	logger *slog.Logger
}

func NewReviewsHandler(s reviews.Store, h hermes.Client, schema *gojsonschema.Schema, logger *slog.Logger) *ReviewsHandler {
	return &ReviewsHandler{store: s, hermes: h, schema: schema, logger: logger}
}

type createReviewRequest struct {
	CarID    string `json:"car_id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Title    string `json:"title"`
	Comment  string `json:"comment"`
	Verified bool   `json:"verified"`
}

// List returns reviews matching the query filters.
// GET /api/v1/reviews
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := reviews.Filter{
		CarID:  q.Get("car_id"),
		Search: q.Get("search"),
		Sort:   reviews.SortOrder(q.Get("sort")),
	}
	if v := q.Get("rating"); v != "" && v != "all" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			writeError(w, http.StatusBadRequest, "rating must be 1-5 or all")
			return
		}
		filter.Rating = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}

	list, err := h.store.ListReviews(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create adds a review for a catalog vehicle.
// POST /api/v1/reviews
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeValidated(r, h.schema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := catalog.GetCar(req.CarID); err != nil {
		writeError(w, http.StatusBadRequest, "unknown car_id")
		return
	}

	review := &reviews.Review{
		CarID:    req.CarID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Title:    req.Title,
		Comment:  req.Comment,
		Verified: req.Verified,
	}
	if err := h.store.CreateReview(r.Context(), review); err != nil {
		if errors.Is(err, reviews.ErrInvalidRating) || errors.Is(err, reviews.ErrInvalidReview) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	reviewsCreated.Inc()

	if h.hermes != nil {
		_ = h.hermes.Publish(hermes.SubjectReviewCreated(review.ID.String()), hermes.ReviewCreatedEvent{
			ReviewID: review.ID.String(),
			CarID:    review.CarID,
			UserID:   review.UserID,
			Rating:   review.Rating,
		})
	}

	writeJSON(w, http.StatusCreated, review)
}

// Helpful records one helpful vote.
// POST /api/v1/reviews/{id}/helpful
func (h *ReviewsHandler) Helpful(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	review, err := h.store.MarkHelpful(r.Context(), id)
	if errors.Is(err, reviews.ErrNotFound) {
		writeError(w, http.StatusNotFound, "review not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.hermes != nil {
		_ = h.hermes.Publish(hermes.SubjectReviewHelpful(review.ID.String()), hermes.ReviewHelpfulEvent{
			ReviewID: review.ID.String(),
			CarID:    review.CarID,
			Helpful:  review.Helpful,
		})
	}

	writeJSON(w, http.StatusOK, review)
}

// Summary returns the rating average and distribution for a vehicle.
// GET /api/v1/reviews/summary/{car_id}
func (h *ReviewsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "car_id")
	if _, err := catalog.GetCar(carID); err != nil {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}

	sum, err := h.store.Summary(r.Context(), carID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// Friends compares a user's review with their friends' reviews.
// GET /api/v1/reviews/friends/{car_id}
func (h *ReviewsHandler) Friends(w http.ResponseWriter, r *http.Request) {
	carID := chi.URLParam(r, "car_id")
	if _, err := catalog.GetCar(carID); err != nil {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}

	q := r.URL.Query()
	cmp, err := h.store.CompareWithFriends(r.Context(), carID, q.Get("user_id"), q.Get("friend"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}
