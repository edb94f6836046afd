package date

import (
	"fmt"
	"strings"
	"time"
)

// Config holds configuration for date handling.
type Config struct {
	// Timezone is the location dates are converted in ("Local", "UTC" or an IANA name).
	Timezone string `mapstructure:"timezone" default:"Local"`
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	switch strings.TrimSpace(c.Timezone) {
	case "", "Local", "local":
		return time.Local, nil
	case "UTC", "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Apply sets the package default location from the configuration.
func (c Config) Apply() error {
	loc, err := c.Location()
	if err != nil {
		return err
	}
	SetDefaultLocation(loc)
	return nil
}
