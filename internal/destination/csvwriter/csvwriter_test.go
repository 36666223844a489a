// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package csvwriter

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamtrack-tools/yamport/internal/record"
)

func TestCSVDestination(t *testing.T) {
	t.Parallel()

	t.Run("always writes the target schema header", func(t *testing.T) {
		t.Parallel()

		buffer := new(bytes.Buffer)
		dest, err := NewDestination(buffer)
		require.NoError(t, err)
		require.NoError(t, dest.Close())

		assert.Equal(t, strings.Join(record.Columns, ",")+"\n", buffer.String())
	})

	t.Run("writes records in column order", func(t *testing.T) {
		t.Parallel()

		buffer := new(bytes.Buffer)
		dest, err := NewDestination(buffer)
		require.NoError(t, err)

		require.NoError(t, dest.WriteRecord(context.Background(), record.Record{
			Source:    "hardcover",
			MediaID:   "431410",
			MediaType: record.MediaTypeBook,
			Score:     "9",
			Status:    record.StatusCompleted,
			Notes:     "great worldbuilding",
			StartDate: "2025-01-02 00:00:00+00:00",
			Progress:  "412",
		}))
		require.NoError(t, dest.Close())

		lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "hardcover,431410,book,,,,,9,Completed,great worldbuilding,2025-01-02 00:00:00+00:00,,412", lines[1])
	})

	t.Run("quotes values containing separators", func(t *testing.T) {
		t.Parallel()

		buffer := new(bytes.Buffer)
		dest, err := NewDestination(buffer)
		require.NoError(t, err)

		require.NoError(t, dest.WriteRecord(context.Background(), record.Record{
			Source:    "hardcover",
			MediaID:   "1",
			MediaType: record.MediaTypeBook,
			Status:    record.StatusCompleted,
			Notes:     "slow start, great ending",
		}))
		require.NoError(t, dest.Close())

		assert.Contains(t, buffer.String(), `"slow start, great ending"`)
	})
}
