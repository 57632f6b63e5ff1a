package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/config"
	"github.com/MikeSquared-Agency/Showroom/internal/finance"
	"github.com/MikeSquared-Agency/Showroom/internal/hermes"
)

type FinanceHandler struct {
	defaults config.FinanceConfig
	hermes   hermes.Client
	schema   *gojsonschema.Schema
	logger   *slog.Logger
}

func NewFinanceHandler(defaults config.FinanceConfig, h hermes.Client, schema *gojsonschema.Schema, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{defaults: defaults, hermes: h, schema: schema, logger: logger}
}

type financeRequest struct {
	CarID   string                 `json:"car_id,omitempty"`
	Price   float64                `json:"price,omitempty"`
	Finance *finance.FinanceOption `json:"finance,omitempty"`
	Lease   *finance.LeaseOption   `json:"lease,omitempty"`
	Used    *finance.UsedCarOption `json:"used,omitempty"`
}

type financeResponse struct {
	CarID string  `json:"car_id,omitempty"`
	Price float64 `json:"price"`
	finance.Comparison
	BestType finance.Type `json:"best_type"`
}

// Compare prices finance, lease and used options side by side.
// POST /api/v1/finance/compare
func (h *FinanceHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req financeRequest
	if err := decodeValidated(r, h.schema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	car := catalog.Car{Year: time.Now().Year()}
	if req.CarID != "" {
		c, err := catalog.GetCar(req.CarID)
		if errors.Is(err, catalog.ErrUnknownCar) {
			writeError(w, http.StatusNotFound, "car not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		car = c
	}
	if req.Price > 0 {
		car.Price = req.Price
	}

	fo, lo, uo := h.defaults.Finance, h.defaults.Lease, h.defaults.Used.UsedOption(car)
	if req.Finance != nil {
		fo = *req.Finance
	}
	if req.Lease != nil {
		lo = *req.Lease
	}
	if req.Used != nil {
		uo = *req.Used
	}
	if err := validateOptions(car.Price, fo, lo, uo); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cmp := finance.Compare(car.Price, fo, lo, uo)
	best := cmp.BestOption()
	financeComparisons.WithLabelValues(string(best.Type)).Inc()

	if h.hermes != nil {
		_ = h.hermes.Publish(hermes.SubjectFinanceCompared, hermes.FinanceComparedEvent{
			RequestID:   requestID(r),
			CarID:       req.CarID,
			Price:       car.Price,
			Best:        string(best.Type),
			BestTotal:   best.TotalCost,
			BestMonthly: best.MonthlyPayment,
			Timestamp:   time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, financeResponse{
		CarID:      req.CarID,
		Price:      car.Price,
		Comparison: cmp,
		BestType:   best.Type,
	})
}

func validateOptions(price float64, fo finance.FinanceOption, lo finance.LeaseOption, uo finance.UsedCarOption) error {
	if price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if err := fo.Validate(); err != nil {
		return fmt.Errorf("finance: %w", err)
	}
	if err := lo.Validate(); err != nil {
		return fmt.Errorf("lease: %w", err)
	}
	if err := uo.Validate(); err != nil {
		return fmt.Errorf("used: %w", err)
	}
	return nil
}
