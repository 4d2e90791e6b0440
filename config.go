package portafolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries the tunable parameters that are not portfolio data: manual
// fallback rates, the default withdrawal rate, the lending risk weights and
// the API listen address. It lives as an optional config.yaml in the store
// directory.
type Config struct {
	// ManualRates stand in when the rate fetch fails.
	ManualRates struct {
		USDCOP float64 `yaml:"usd_cop"`
		USDEUR float64 `yaml:"usd_eur"`
	} `yaml:"manual_rates"`

	// WithdrawalRate is the default annual withdrawal rate for the
	// independence number. 0 means use the portfolio's own rate.
	WithdrawalRate Percent `yaml:"withdrawal_rate"`

	// AnnualInflation is the default inflation assumption for projections.
	AnnualInflation Percent `yaml:"annual_inflation"`

	// Risk weighs the lending expected value.
	Risk RiskParams `yaml:"risk"`

	// Listen is the HTTP API address for the serve command.
	Listen string `yaml:"listen"`
}

const configFile = "config.yaml"

// DefaultConfig returns the configuration used without a config.yaml.
func DefaultConfig() Config {
	var c Config
	c.ManualRates.USDCOP = 4000
	c.ManualRates.USDEUR = 0.92
	c.AnnualInflation = 5
	c.Risk = DefaultRiskParams()
	c.Listen = ":8080"
	return c
}

// LoadConfig reads config.yaml from the store directory, falling back to
// the defaults when the file does not exist.
func LoadConfig(storePath string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(filepath.Join(storePath, configFile))
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("could not read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("could not decode %s: %w", configFile, err)
	}
	return c, nil
}

// ManualFallback returns the manual rates as a Rates value.
func (c Config) ManualFallback() Rates {
	return Rates{USDCOP: c.ManualRates.USDCOP, USDEUR: c.ManualRates.USDEUR, Manual: true}
}
