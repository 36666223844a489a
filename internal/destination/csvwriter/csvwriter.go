// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package csvwriter implements the destination that writes YamTrack import
// files. The header row always carries the full target schema, whatever the
// source or the number of mapped rows.
package csvwriter

import (
	"context"
	"encoding/csv"
	"io"
	"sync"

	"github.com/yamtrack-tools/yamport/internal/destination"
	"github.com/yamtrack-tools/yamport/internal/record"
)

var _ destination.Writer = &csvDestination{}

type csvDestination struct {
	writer *csv.Writer

	lock sync.Mutex
}

// NewDestination returns a Writer producing a YamTrack import CSV on w. The
// header row is written immediately.
func NewDestination(w io.Writer) (destination.Writer, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(record.Columns); err != nil {
		return nil, err
	}

	return &csvDestination{writer: writer}, nil
}

func (d *csvDestination) WriteRecord(_ context.Context, rec record.Record) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.writer.Write(rec.Values())
}

func (d *csvDestination) Close() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.writer.Flush()
	return d.writer.Error()
}
