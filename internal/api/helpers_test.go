package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/config"
	"github.com/MikeSquared-Agency/Showroom/internal/finance"
	"github.com/MikeSquared-Agency/Showroom/internal/hermes"
	"github.com/MikeSquared-Agency/Showroom/internal/reviews"
	"github.com/MikeSquared-Agency/Showroom/internal/scoring"
)

// MockHermes implements hermes.Client for testing
type MockHermes struct {
	mock.Mock
}

func (m *MockHermes) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockHermes) Subscribe(subject string, handler func(string, []byte)) error {
	args := m.Called(subject, handler)
	return args.Error(0)
}

func (m *MockHermes) Close() {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 8700, MetricsPort: 8701},
		Matching: config.MatchingConfig{TopN: 3},
		Finance: config.FinanceConfig{
			Finance: finance.DefaultFinanceOption(),
			Lease:   finance.DefaultLeaseOption(),
			Used: config.UsedDefaults{
				PriceRatio: 0.75, AgeYears: 2, Mileage: 30000,
				TermMonths: 60, InterestRate: 5.49, DownPayment: 10,
			},
		},
	}
}

func newTestRouter(t *testing.T, h hermes.Client) http.Handler {
	t.Helper()
	cfg := testConfig()
	m := scoring.NewMatcher(catalog.Profiles(), cfg.Matching.TopN, testLogger())
	return NewRouter(cfg, m, reviews.NewSeededStore(), h, testLogger())
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
