package market

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_market.yaml
var defaultMarketYAML []byte

var (
	ErrNoCompanies     = errors.New("market has no companies")
	ErrEmptyTicker     = errors.New("company has an empty ticker")
	ErrDuplicateTicker = errors.New("duplicate ticker")
	ErrInvalidRange    = errors.New("invalid quote range")
)

type Currency struct {
	NamePlural string `yaml:"name_plural" json:"namePlural"`
	Symbol     string `yaml:"symbol" json:"symbol"`
}

var DefaultCurrency = Currency{NamePlural: "Cogmarks", Symbol: "₡"}

// Config is the market file: which companies trade, in what currency and
// within which price range.
type Config struct {
	Currency  Currency    `yaml:"currency"`
	Quotes    *QuoteRange `yaml:"quotes"`
	Companies []Company   `yaml:"companies"`
}

// Range returns the configured quote range, or DefaultRange when the file
// has no quotes section.
func (c *Config) Range() QuoteRange {
	if c.Quotes == nil {
		return DefaultRange
	}
	return *c.Quotes
}

// DefaultConfig is the built-in market of ten steampunk companies.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(defaultMarketYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded market is invalid: %v", err))
	}
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read market file: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse market yaml: %w", err)
	}
	if cfg.Currency.NamePlural == "" {
		cfg.Currency.NamePlural = DefaultCurrency.NamePlural
	}
	if cfg.Currency.Symbol == "" {
		cfg.Currency.Symbol = DefaultCurrency.Symbol
	}
	for i := range cfg.Companies {
		cfg.Companies[i].Ticker = strings.TrimSpace(cfg.Companies[i].Ticker)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Companies) == 0 {
		return ErrNoCompanies
	}
	if err := ValidateTickers(c.Companies); err != nil {
		return err
	}
	return c.Range().Validate()
}

// ValidateTickers rejects empty tickers and tickers that repeat, ignoring case.
func ValidateTickers(companies []Company) error {
	seen := make(map[string]struct{}, len(companies))
	for i, co := range companies {
		if strings.TrimSpace(co.Ticker) == "" {
			return fmt.Errorf("company %d: %w", i+1, ErrEmptyTicker)
		}
		key := strings.ToUpper(co.Ticker)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateTicker, co.Ticker)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (r QuoteRange) Validate() error {
	switch {
	case r.PriceMin <= 0:
		return fmt.Errorf("%w: price_min must be positive, got %g", ErrInvalidRange, r.PriceMin)
	case r.PriceMin > r.PriceMax:
		return fmt.Errorf("%w: price_min %g above price_max %g", ErrInvalidRange, r.PriceMin, r.PriceMax)
	case r.ChangePctMin > r.ChangePctMax:
		return fmt.Errorf("%w: change_pct_min %g above change_pct_max %g", ErrInvalidRange, r.ChangePctMin, r.ChangePctMax)
	case r.ChangePctMin <= -100:
		return fmt.Errorf("%w: change_pct_min must be above -100, got %g", ErrInvalidRange, r.ChangePctMin)
	}
	return nil
}
