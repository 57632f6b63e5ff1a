package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/finance"
)

var showroomEnv = []string{
	"SHOWROOM_PORT", "SHOWROOM_METRICS_PORT", "SHOWROOM_RATE_LIMIT",
	"SHOWROOM_HERMES_URL", "SHOWROOM_HERMES_ENABLED", "SHOWROOM_TOP_N",
	"SHOWROOM_DEFAULT_BUDGET", "SHOWROOM_LOG_LEVEL", "SHOWROOM_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range showroomEnv {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Hermes.Enabled {
		t.Error("expected hermes disabled by default")
	}
	if cfg.Hermes.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Hermes.URL)
	}
	if cfg.Matching.TopN != 3 {
		t.Errorf("expected top_n 3, got %d", cfg.Matching.TopN)
	}
	if cfg.Matching.DefaultBudget != 0 {
		t.Errorf("expected no default budget, got %f", cfg.Matching.DefaultBudget)
	}
	if cfg.Finance.Finance.TermMonths != 60 || cfg.Finance.Finance.InterestRate != 4.99 {
		t.Errorf("unexpected finance defaults: %+v", cfg.Finance.Finance)
	}
	if cfg.Finance.Lease.MoneyFactor != 0.0015 || cfg.Finance.Lease.ResidualValue != 60 {
		t.Errorf("unexpected lease defaults: %+v", cfg.Finance.Lease)
	}
	if cfg.Finance.Used.PriceRatio != 0.75 || cfg.Finance.Used.InterestRate != 5.49 {
		t.Errorf("unexpected used defaults: %+v", cfg.Finance.Used)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHOWROOM_PORT", "9000")
	t.Setenv("SHOWROOM_METRICS_PORT", "9001")
	t.Setenv("SHOWROOM_RATE_LIMIT", "30")
	t.Setenv("SHOWROOM_HERMES_URL", "nats://nats:4222")
	t.Setenv("SHOWROOM_HERMES_ENABLED", "true")
	t.Setenv("SHOWROOM_TOP_N", "5")
	t.Setenv("SHOWROOM_DEFAULT_BUDGET", "35000")
	t.Setenv("SHOWROOM_LOG_LEVEL", "debug")
	t.Setenv("SHOWROOM_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimitPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimitPerMinute)
	}
	if !cfg.Hermes.Enabled || cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("unexpected hermes config: %+v", cfg.Hermes)
	}
	if cfg.Matching.TopN != 5 {
		t.Errorf("expected top_n 5, got %d", cfg.Matching.TopN)
	}
	if cfg.Matching.DefaultBudget != 35000 {
		t.Errorf("expected default budget 35000, got %f", cfg.Matching.DefaultBudget)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	yamlDoc := `
server:
  port: 8800
matching:
  top_n: 10
finance:
  finance:
    term_months: 72
    interest_rate: 6.5
    down_payment: 20
`
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port kept, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Matching.TopN != 10 {
		t.Errorf("expected top_n 10, got %d", cfg.Matching.TopN)
	}
	if cfg.Finance.Finance.TermMonths != 72 || cfg.Finance.Finance.DownPayment != 20 {
		t.Errorf("unexpected finance config: %+v", cfg.Finance.Finance)
	}
	if cfg.Finance.Lease.TermMonths != 36 {
		t.Errorf("expected lease defaults kept, got %+v", cfg.Finance.Lease)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8800\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHOWROOM_PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected env to win, got %d", cfg.Server.Port)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("server: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("finance:\n  lease:\n    term_months: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for zero lease term")
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg.Server.MetricsPort = cfg.Server.Port
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for clashing ports")
	}

	cfg.Server.MetricsPort = 8701
	cfg.Finance.Used.PriceRatio = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for price ratio above 1")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SHOWROOM_TOP_N=7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"), path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Matching.TopN != 7 {
		t.Errorf("expected top_n 7 from .env, got %d", cfg.Matching.TopN)
	}
}

func TestUsedOptionMatchesFinanceDefault(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	car, err := catalog.GetCar("1")
	if err != nil {
		t.Fatal(err)
	}

	got := cfg.Finance.Used.UsedOption(car)
	want := finance.DefaultUsedCarOption(car)
	if got.Price != want.Price || got.Year != want.Year || got.Mileage != want.Mileage {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if *got.Financing != *want.Financing {
		t.Errorf("expected financing %+v, got %+v", *want.Financing, *got.Financing)
	}
}
