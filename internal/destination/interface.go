// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package destination

import (
	"context"

	"github.com/yamtrack-tools/yamport/internal/record"
)

// Writer delivers mapped records to an output destination.
type Writer interface {
	// WriteRecord appends one record to the destination.
	WriteRecord(ctx context.Context, record record.Record) error

	// Close flushes any buffered data and releases the destination resources.
	Close() error
}
