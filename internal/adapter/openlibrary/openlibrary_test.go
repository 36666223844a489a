// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package openlibrary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamtrack-tools/yamport/internal/adapter"
	"github.com/yamtrack-tools/yamport/internal/record"
	"github.com/yamtrack-tools/yamport/internal/source"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty strategy defaults to the reading log", func(t *testing.T) {
		t.Parallel()
		a, err := New("", nil)
		require.NoError(t, err)
		assert.NotNil(t, a)
		assert.Equal(t, Name, a.Name())
	})

	t.Run("unknown strategy is rejected", func(t *testing.T) {
		t.Parallel()
		a, err := New("lists", nil)
		assert.ErrorIs(t, err, adapter.ErrUnknownStrategy)
		assert.Nil(t, a)
	})
}

func TestMapRow(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		fields   map[string]string
		expected record.Record
	}{
		"already read shelf": {
			fields: map[string]string{
				"Edition ID": "OL7353617M",
				"Bookshelf":  "Already Read",
				"My Ratings": "4",
			},
			expected: record.Record{
				Source:    "openlibrary",
				MediaID:   "OL7353617M",
				MediaType: record.MediaTypeBook,
				Status:    record.StatusCompleted,
				Score:     "8",
			},
		},
		"currently reading shelf": {
			fields: map[string]string{
				"Edition ID": "OL1M",
				"Bookshelf":  "Currently Reading",
			},
			expected: record.Record{
				Source:    "openlibrary",
				MediaID:   "OL1M",
				MediaType: record.MediaTypeBook,
				Status:    record.StatusInProgress,
			},
		},
		"custom abandoned shelf maps to dropped": {
			fields: map[string]string{
				"Edition ID": "OL2M",
				"Bookshelf":  "Abandoned",
			},
			expected: record.Record{
				Source:    "openlibrary",
				MediaID:   "OL2M",
				MediaType: record.MediaTypeBook,
				Status:    record.StatusDropped,
			},
		},
		"unknown custom shelf assumed in progress": {
			fields: map[string]string{
				"Edition ID": "OL3M",
				"Bookshelf":  "Beach Reads 2025",
			},
			expected: record.Record{
				Source:    "openlibrary",
				MediaID:   "OL3M",
				MediaType: record.MediaTypeBook,
				Status:    record.StatusInProgress,
			},
		},
		"missing shelf defaults to planning": {
			fields: map[string]string{
				"Edition ID": "OL4M",
			},
			expected: record.Record{
				Source:    "openlibrary",
				MediaID:   "OL4M",
				MediaType: record.MediaTypeBook,
				Status:    record.StatusPlanning,
			},
		},
		"non numeric rating is dropped": {
			fields: map[string]string{
				"Edition ID": "OL5M",
				"Bookshelf":  "Want to Read",
				"My Ratings": "n/a",
			},
			expected: record.Record{
				Source:    "openlibrary",
				MediaID:   "OL5M",
				MediaType: record.MediaTypeBook,
				Status:    record.StatusPlanning,
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a, err := New(StrategyReadingLog, nil)
			require.NoError(t, err)

			mapped, err := a.MapRow(source.Row{Number: 1, Fields: testCase.fields})
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, mapped)
		})
	}
}

func TestShelfOverrides(t *testing.T) {
	t.Parallel()

	a, err := New("", map[string]string{"Beach Reads 2025": record.StatusPlanning})
	require.NoError(t, err)

	mapped, err := a.MapRow(source.Row{Number: 1, Fields: map[string]string{
		"Edition ID": "OL6M",
		"Bookshelf":  "beach reads 2025",
	}})
	require.NoError(t, err)
	assert.Equal(t, record.StatusPlanning, mapped.Status)
}
