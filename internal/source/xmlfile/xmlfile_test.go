// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package xmlfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamtrack-tools/yamport/internal/source"
)

func collectRows(t *testing.T, s source.RowSource) ([]source.Row, error) {
	t.Helper()

	results := make(chan source.Row)
	collected := make([]source.Row, 0)
	done := make(chan struct{})
	go func() {
		for row := range results {
			collected = append(collected, row)
		}
		close(done)
	}()

	err := s.StreamRows(context.Background(), results)
	close(results)
	<-done
	return collected, err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStreamRows(t *testing.T) {
	t.Parallel()

	t.Run("streams every entry as a field map", func(t *testing.T) {
		t.Parallel()

		document := `<?xml version="1.0"?>
<library>
	<book id="1">
		<Title>Dune</Title>
		<Status> Read </Status>
	</book>
	<book id="2">
		<Title>Hyperion</Title>
		<Status>Want to Read</Status>
	</book>
</library>`

		rows, err := collectRows(t, New(writeFile(t, document)))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, 1, rows[0].Number)
		assert.Equal(t, map[string]string{"id": "1", "Title": "Dune", "Status": "Read"}, rows[0].Fields)
		assert.Equal(t, map[string]string{"id": "2", "Title": "Hyperion", "Status": "Want to Read"}, rows[1].Fields)
	})

	t.Run("empty root streams nothing", func(t *testing.T) {
		t.Parallel()

		rows, err := collectRows(t, New(writeFile(t, "<library></library>")))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("broken document reports parsing error", func(t *testing.T) {
		t.Parallel()

		rows, err := collectRows(t, New(writeFile(t, "<library><book>")))
		assert.ErrorIs(t, err, ErrParsing)
		assert.Empty(t, rows)
	})

	t.Run("missing file reports open error", func(t *testing.T) {
		t.Parallel()

		rows, err := collectRows(t, New(filepath.Join(t.TempDir(), "missing.xml")))
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Empty(t, rows)
	})
}
