// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package source

import (
	"context"
)

// Row groups the position and field values of a single row read from an export.
type Row struct {
	// Number is the 1-based position of the row in the input, header excluded.
	Number int
	// Fields maps the source column names to their raw string values.
	Fields map[string]string
}

// RowSource defines the interface for a reader that streams the rows of an export.
type RowSource interface {
	// StreamRows will be called to read the input and send every row on the
	// results channel. It returns an error if the input cannot be opened or is
	// structurally unreadable; problems limited to a single row must be logged
	// and must not stop the stream.
	StreamRows(ctx context.Context, results chan<- Row) (err error)
}
