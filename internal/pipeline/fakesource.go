// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import (
	"context"

	"github.com/yamtrack-tools/yamport/internal/source"
)

var _ source.RowSource = &fakeSource{}

// fakeSource streams a fixed set of rows, used in tests.
type fakeSource struct {
	rows []source.Row
	err  error
}

func (f *fakeSource) StreamRows(ctx context.Context, results chan<- source.Row) error {
	for _, row := range f.rows {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- row:
		}
	}

	return f.err
}
