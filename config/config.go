package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the calculator profile: the account/risk side of an evaluation
// that stays stable across trades, so the form only asks for prices.
type Config struct {
	Risk    RiskSettings    `json:"risk" yaml:"risk"`
	Exit    ExitSettings    `json:"exit" yaml:"exit"`
	Display DisplaySettings `json:"display" yaml:"display"`
	Rates   RatesSettings   `json:"rates" yaml:"rates"`
}

// RiskSettings mirrors the account and risk-tolerance inputs.
type RiskSettings struct {
	Capital           float64 `json:"capital" yaml:"capital" envconfig:"RISKCALC_CAPITAL"`
	RiskPercent       float64 `json:"risk_percent" yaml:"risk_percent" envconfig:"RISKCALC_RISK_PERCENT"`
	AllocationPercent float64 `json:"allocation_percent" yaml:"allocation_percent" envconfig:"RISKCALC_ALLOCATION_PERCENT"`
	MaxLeverage       float64 `json:"max_leverage" yaml:"max_leverage" envconfig:"RISKCALC_MAX_LEVERAGE"`
	LeverageMode      string  `json:"leverage_mode" yaml:"leverage_mode" envconfig:"RISKCALC_LEVERAGE_MODE"`
	ManualLeverage    float64 `json:"manual_leverage,omitempty" yaml:"manual_leverage,omitempty" envconfig:"RISKCALC_MANUAL_LEVERAGE"`
}

// ExitSettings are the partial take-profit defaults.
type ExitSettings struct {
	Enabled    bool    `json:"enabled" yaml:"enabled" envconfig:"RISKCALC_EXIT_ENABLED"`
	TP1Percent float64 `json:"tp1_percent" yaml:"tp1_percent" envconfig:"RISKCALC_TP1_PERCENT"`
	TP2Percent float64 `json:"tp2_percent" yaml:"tp2_percent" envconfig:"RISKCALC_TP2_PERCENT"`
}

// DisplaySettings control output formatting only.
type DisplaySettings struct {
	Currency string `json:"currency" yaml:"currency" envconfig:"RISKCALC_CURRENCY"`
}

// RatesSettings configure the display-rate converter.
type RatesSettings struct {
	SourceURLs     []string `json:"source_urls,omitempty" yaml:"source_urls,omitempty" envconfig:"RISKCALC_RATE_SOURCES"`
	CachePath      string   `json:"cache_path,omitempty" yaml:"cache_path,omitempty" envconfig:"RISKCALC_RATE_CACHE"`
	TimeoutSeconds int      `json:"timeout_seconds" yaml:"timeout_seconds" envconfig:"RISKCALC_RATE_TIMEOUT"`
}

// LoadFromFile loads a profile from a file (YAML or JSON based on content).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves a profile to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks that the profile is internally consistent. Zero capital
// is allowed (sizing is simply skipped), everything else must be in range.
func (c *Config) Validate() error {
	if c.Risk.Capital < 0 {
		return fmt.Errorf("risk.capital must not be negative")
	}
	if c.Risk.RiskPercent <= 0 || c.Risk.RiskPercent > 100 {
		return fmt.Errorf("risk.risk_percent must be in (0, 100]")
	}
	if c.Risk.AllocationPercent <= 0 || c.Risk.AllocationPercent > 100 {
		return fmt.Errorf("risk.allocation_percent must be in (0, 100]")
	}
	if c.Risk.MaxLeverage < 1 || c.Risk.MaxLeverage > 1000 {
		return fmt.Errorf("risk.max_leverage must be in [1, 1000]")
	}
	if m := c.Risk.LeverageMode; m != "auto" && m != "manual" {
		return fmt.Errorf("risk.leverage_mode must be 'auto' or 'manual'")
	}
	if c.Risk.LeverageMode == "manual" && c.Risk.ManualLeverage < 1 {
		return fmt.Errorf("risk.manual_leverage must be at least 1 in manual mode")
	}
	if c.Exit.TP1Percent < 0 || c.Exit.TP1Percent > 100 {
		return fmt.Errorf("exit.tp1_percent must be in [0, 100]")
	}
	if c.Exit.TP2Percent < 0 || c.Exit.TP2Percent > 100 {
		return fmt.Errorf("exit.tp2_percent must be in [0, 100]")
	}
	if c.Exit.TP1Percent+c.Exit.TP2Percent > 100 {
		return fmt.Errorf("exit.tp1_percent + exit.tp2_percent must not exceed 100")
	}
	if c.Display.Currency == "" {
		return fmt.Errorf("display.currency is required")
	}
	if c.Rates.TimeoutSeconds <= 0 {
		return fmt.Errorf("rates.timeout_seconds must be positive")
	}
	return nil
}

// Default returns a profile with sensible defaults: 1% risk, 10% allocation,
// partial exits scaling out 50/30/20.
func Default() *Config {
	return &Config{
		Risk: RiskSettings{
			Capital:           0, // unknown until the trader fills it in
			RiskPercent:       1,
			AllocationPercent: 10,
			MaxLeverage:       75,
			LeverageMode:      "auto",
			ManualLeverage:    1,
		},
		Exit: ExitSettings{
			Enabled:    true,
			TP1Percent: 50,
			TP2Percent: 30,
		},
		Display: DisplaySettings{
			Currency: "USD",
		},
		Rates: RatesSettings{
			TimeoutSeconds: 10,
		},
	}
}
