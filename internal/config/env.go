// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the runtime options read from the environment.
type Config struct {
	SkipInvalidRows    bool          `env:"SKIP_INVALID_ROWS" envDefault:"true"`
	SteamAPIKey        string        `env:"STEAM_API_KEY"`
	SteamID64          string        `env:"STEAM_ID64"`
	TwitchClientID     string        `env:"TWITCH_CLIENT_ID"`
	TwitchClientSecret string        `env:"TWITCH_CLIENT_SECRET"`
	IGDBRateInterval   time.Duration `env:"IGDB_RATE_INTERVAL" envDefault:"250ms"`
}

// LoadConfig parses and validates the environment variables.
func LoadConfig() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if envVars.IGDBRateInterval <= 0 {
		return nil, fmt.Errorf("%w: IGDB_RATE_INTERVAL must be a positive duration", ErrEnvVariablesNotValid)
	}

	return &envVars, nil
}

// ValidateSteam checks that the Steam Web API credentials are configured.
func (c *Config) ValidateSteam() error {
	missing := make([]string, 0, 2)
	if c.SteamAPIKey == "" {
		missing = append(missing, "STEAM_API_KEY")
	}
	if c.SteamID64 == "" {
		missing = append(missing, "STEAM_ID64")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s must be set", ErrEnvVariablesNotValid, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateIGDB checks that the Twitch application credentials used by the IGDB
// API are configured.
func (c *Config) ValidateIGDB() error {
	missing := make([]string, 0, 2)
	if c.TwitchClientID == "" {
		missing = append(missing, "TWITCH_CLIENT_ID")
	}
	if c.TwitchClientSecret == "" {
		missing = append(missing, "TWITCH_CLIENT_SECRET")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s must be set", ErrEnvVariablesNotValid, strings.Join(missing, ", "))
	}
	return nil
}
