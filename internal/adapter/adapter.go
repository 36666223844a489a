// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package adapter

import (
	"errors"

	"github.com/yamtrack-tools/yamport/internal/record"
	"github.com/yamtrack-tools/yamport/internal/source"
)

// ErrUnknownStrategy reports a strategy name not supported by the adapter.
var ErrUnknownStrategy = errors.New("unknown strategy")

// Adapter maps rows of one tracker export schema to YamTrack records.
type Adapter interface {
	// Name returns the adapter name as used on the command line and written in
	// the source column of every mapped record.
	Name() string

	// MapRow maps a single source row to a target record. The returned record
	// is not validated, callers must check it against the import schema rules.
	MapRow(row source.Row) (record.Record, error)
}
