package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/finance"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Hermes   HermesConfig   `yaml:"hermes"`
	Matching MatchingConfig `yaml:"matching"`
	Finance  FinanceConfig  `yaml:"finance"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port               int `yaml:"port"`
	MetricsPort        int `yaml:"metrics_port"`
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

type HermesConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

type MatchingConfig struct {
	TopN          int     `yaml:"top_n"`
	DefaultBudget float64 `yaml:"default_budget"`
}

type FinanceConfig struct {
	Finance finance.FinanceOption `yaml:"finance"`
	Lease   finance.LeaseOption   `yaml:"lease"`
	Used    UsedDefaults          `yaml:"used"`
}

// UsedDefaults derives a comparable used vehicle from a new one.
type UsedDefaults struct {
	PriceRatio   float64 `yaml:"price_ratio"`
	AgeYears     int     `yaml:"age_years"`
	Mileage      int     `yaml:"mileage"`
	TermMonths   int     `yaml:"term_months"`
	InterestRate float64 `yaml:"interest_rate"`
	DownPayment  float64 `yaml:"down_payment"`
}

// UsedOption builds the comparable used vehicle for car.
func (u UsedDefaults) UsedOption(car catalog.Car) finance.UsedCarOption {
	return finance.UsedCarOption{
		Price:     car.Price * u.PriceRatio,
		Year:      car.Year - u.AgeYears,
		Mileage:   u.Mileage,
		Condition: finance.ConditionExcellent,
		Financing: &finance.UsedFinancing{
			TermMonths:   u.TermMonths,
			InterestRate: u.InterestRate,
			DownPayment:  u.DownPayment,
		},
	}
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.MetricsPort <= 0 {
		return fmt.Errorf("server ports must be positive")
	}
	if c.Server.Port == c.Server.MetricsPort {
		return fmt.Errorf("server port and metrics port must differ, both are %d", c.Server.Port)
	}
	if c.Matching.TopN < 0 {
		return fmt.Errorf("matching.top_n must not be negative, got %d", c.Matching.TopN)
	}
	if c.Matching.DefaultBudget < 0 {
		return fmt.Errorf("matching.default_budget must not be negative")
	}
	if err := c.Finance.Finance.Validate(); err != nil {
		return fmt.Errorf("finance.finance: %w", err)
	}
	if err := c.Finance.Lease.Validate(); err != nil {
		return fmt.Errorf("finance.lease: %w", err)
	}
	if r := c.Finance.Used.PriceRatio; r <= 0 || r > 1 {
		return fmt.Errorf("finance.used.price_ratio must be in (0, 1], got %.2f", r)
	}
	return nil
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		Matching: MatchingConfig{
			TopN: 3,
		},
		Finance: FinanceConfig{
			Finance: finance.DefaultFinanceOption(),
			Lease:   finance.DefaultLeaseOption(),
			Used: UsedDefaults{
				PriceRatio:   0.75,
				AgeYears:     2,
				Mileage:      30000,
				TermMonths:   60,
				InterestRate: 5.49,
				DownPayment:  10,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding values already set. Missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SHOWROOM_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("SHOWROOM_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("SHOWROOM_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("SHOWROOM_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("SHOWROOM_HERMES_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Hermes.Enabled = b
		}
	}
	if v := os.Getenv("SHOWROOM_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Matching.TopN = n
		}
	}
	if v := os.Getenv("SHOWROOM_DEFAULT_BUDGET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matching.DefaultBudget = f
		}
	}
	if v := os.Getenv("SHOWROOM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SHOWROOM_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
