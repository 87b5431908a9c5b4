package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/stefanpenner/pace/pkg/calendar"
	"github.com/tailscale/hujson"
)

// DefaultLeadDays is how many business days out the default target sits.
const DefaultLeadDays = 21

// ErrInvalidLeadDays is returned for a negative lead_business_days.
var ErrInvalidLeadDays = errors.New("lead_business_days must not be negative")

// Config holds the optional settings read from config.jsonc.
type Config struct {
	// LeadBusinessDays places the default target this many business days
	// after today.
	LeadBusinessDays *int `json:"lead_business_days,omitempty"`

	// Target pins the default target date (YYYY-MM-DD). Overrides
	// LeadBusinessDays when set.
	Target string `json:"target,omitempty"`
}

// LeadDays returns the configured lead time, or DefaultLeadDays.
func (c Config) LeadDays() int {
	if c.LeadBusinessDays == nil {
		return DefaultLeadDays
	}
	return *c.LeadBusinessDays
}

// DefaultTarget computes the target date to show before the user picks one.
func (c Config) DefaultTarget(now time.Time) (time.Time, error) {
	if c.Target != "" {
		return calendar.Parse(c.Target)
	}
	return calendar.AddBusinessDays(now, c.LeadDays()), nil
}

func (c Config) validate() error {
	if c.LeadDays() < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLeadDays, c.LeadDays())
	}
	if c.Target != "" {
		if _, err := calendar.Parse(c.Target); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig reads a JSONC config file. A missing file yields the zero Config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC in %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
