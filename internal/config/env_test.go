// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := LoadConfig()
		require.NoError(t, err)

		assert.True(t, config.SkipInvalidRows)
		assert.Equal(t, 250*time.Millisecond, config.IGDBRateInterval)
		assert.Empty(t, config.SteamAPIKey)
	})

	t.Run("values from environment", func(t *testing.T) {
		t.Setenv("SKIP_INVALID_ROWS", "false")
		t.Setenv("STEAM_API_KEY", "key")
		t.Setenv("STEAM_ID64", "76561190000000000")
		t.Setenv("IGDB_RATE_INTERVAL", "1s")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.False(t, config.SkipInvalidRows)
		assert.Equal(t, "key", config.SteamAPIKey)
		assert.Equal(t, "76561190000000000", config.SteamID64)
		assert.Equal(t, time.Second, config.IGDBRateInterval)
	})

	t.Run("invalid boolean reports error", func(t *testing.T) {
		t.Setenv("SKIP_INVALID_ROWS", "not-a-bool")

		config, err := LoadConfig()
		assert.ErrorIs(t, err, ErrEnvVariablesNotValid)
		assert.Nil(t, config)
	})

	t.Run("non positive rate interval reports error", func(t *testing.T) {
		t.Setenv("IGDB_RATE_INTERVAL", "0s")

		config, err := LoadConfig()
		assert.ErrorIs(t, err, ErrEnvVariablesNotValid)
		assert.Nil(t, config)
	})
}

func TestCredentialValidation(t *testing.T) {
	t.Parallel()

	t.Run("steam credentials", func(t *testing.T) {
		t.Parallel()

		config := &Config{}
		err := config.ValidateSteam()
		assert.ErrorIs(t, err, ErrEnvVariablesNotValid)
		assert.ErrorContains(t, err, "STEAM_API_KEY, STEAM_ID64")

		config = &Config{SteamAPIKey: "key", SteamID64: "id"}
		assert.NoError(t, config.ValidateSteam())
	})

	t.Run("igdb credentials", func(t *testing.T) {
		t.Parallel()

		config := &Config{TwitchClientID: "id"}
		err := config.ValidateIGDB()
		assert.ErrorIs(t, err, ErrEnvVariablesNotValid)
		assert.ErrorContains(t, err, "TWITCH_CLIENT_SECRET")

		config = &Config{TwitchClientID: "id", TwitchClientSecret: "secret"}
		assert.NoError(t, config.ValidateIGDB())
	})
}
