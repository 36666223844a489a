// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package igdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamtrack-tools/yamport/internal/adapter"
	"github.com/yamtrack-tools/yamport/internal/record"
	"github.com/yamtrack-tools/yamport/internal/source"
)

func TestDetectStrategy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StrategyListPlayed, DetectStrategy("/exports/played.csv"))
	assert.Equal(t, StrategyListPlaying, DetectStrategy("Playing.csv"))
	assert.Equal(t, StrategyListWant, DetectStrategy("want-to-play.csv"))
	assert.Equal(t, StrategyIGDB, DetectStrategy("my-list.csv"))
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty strategy defaults to plain list export", func(t *testing.T) {
		t.Parallel()

		a, err := New("", nil)
		require.NoError(t, err)
		assert.Equal(t, Name, a.Name())
	})

	t.Run("unknown strategy is rejected", func(t *testing.T) {
		t.Parallel()

		a, err := New("wishlist", nil)
		assert.ErrorIs(t, err, adapter.ErrUnknownStrategy)
		assert.Nil(t, a)
	})
}

func TestMapRow(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		strategy string
		fields   map[string]string
		expected record.Record
	}{
		"plain list export keeps the title": {
			strategy: StrategyIGDB,
			fields:   map[string]string{"id": "7342", "game": "Portal 2"},
			expected: record.Record{
				Source:    "igdb",
				MediaID:   "7342",
				MediaType: record.MediaTypeGame,
				Title:     "Portal 2",
				Status:    record.StatusPlanning,
			},
		},
		"played list marks games completed": {
			strategy: StrategyListPlayed,
			fields:   map[string]string{"id": "7342", "game": "Portal 2"},
			expected: record.Record{
				Source:    "igdb",
				MediaID:   "7342",
				MediaType: record.MediaTypeGame,
				Status:    record.StatusCompleted,
			},
		},
		"playing list marks games in progress": {
			strategy: StrategyListPlaying,
			fields:   map[string]string{"id": "119388"},
			expected: record.Record{
				Source:    "igdb",
				MediaID:   "119388",
				MediaType: record.MediaTypeGame,
				Status:    record.StatusInProgress,
			},
		},
		"want list marks games planned": {
			strategy: StrategyListWant,
			fields:   map[string]string{"id": "26192"},
			expected: record.Record{
				Source:    "igdb",
				MediaID:   "26192",
				MediaType: record.MediaTypeGame,
				Status:    record.StatusPlanning,
			},
		},
		"steam export uses the enriched id column": {
			strategy: StrategySteamAPI,
			fields:   map[string]string{"appid": "620", "igdb_id": "7342", "name": "Portal 2"},
			expected: record.Record{
				Source:    "igdb",
				MediaID:   "7342",
				MediaType: record.MediaTypeGame,
				Title:     "Portal 2",
				Status:    record.StatusPlanning,
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a, err := New(testCase.strategy, nil)
			require.NoError(t, err)

			mapped, err := a.MapRow(source.Row{Number: 1, Fields: testCase.fields})
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, mapped)
		})
	}
}

func TestStatusOverrides(t *testing.T) {
	t.Parallel()

	a, err := New(StrategyListPlayed, map[string]string{StrategyListPlayed: record.StatusDropped})
	require.NoError(t, err)

	mapped, err := a.MapRow(source.Row{Number: 1, Fields: map[string]string{"id": "7342"}})
	require.NoError(t, err)
	assert.Equal(t, record.StatusDropped, mapped.Status)
}
