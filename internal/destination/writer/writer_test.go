// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package writer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamtrack-tools/yamport/internal/record"
)

func TestWriterDestination(t *testing.T) {
	t.Parallel()

	buffer := new(bytes.Buffer)
	dest := NewDestination(buffer)

	require.NoError(t, dest.WriteRecord(context.Background(), record.Record{
		Source:    "igdb",
		MediaID:   "7342",
		MediaType: record.MediaTypeGame,
		Title:     "Portal 2",
		Status:    record.StatusCompleted,
	}))
	require.NoError(t, dest.Close())

	output := buffer.String()
	assert.Contains(t, output, "Record:\n")
	assert.Contains(t, output, "\tsource: igdb\n")
	assert.Contains(t, output, "\tmedia_id: 7342\n")
	assert.Contains(t, output, "\ttitle: Portal 2\n")
	assert.NotContains(t, output, "season_number")
}
