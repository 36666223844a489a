// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package writer implements a human readable destination used for dry runs,
// printing every mapped record instead of producing an import file.
package writer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/yamtrack-tools/yamport/internal/destination"
	"github.com/yamtrack-tools/yamport/internal/record"
)

var _ destination.Writer = &writerDestination{}

type writerDestination struct {
	writer io.Writer

	lock sync.Mutex
}

// NewDestination returns a Writer printing records on w.
func NewDestination(w io.Writer) destination.Writer {
	return &writerDestination{
		writer: w,
	}
}

func (d *writerDestination) WriteRecord(_ context.Context, rec record.Record) error {
	builder := new(strings.Builder)
	builder.WriteString("Record:\n")

	values := rec.Values()
	for i, column := range record.Columns {
		if values[i] == "" {
			continue
		}
		builder.WriteString("\t" + column + ": " + values[i] + "\n")
	}

	d.lock.Lock()
	defer d.lock.Unlock()
	_, err := fmt.Fprint(d.writer, builder.String())
	return err
}

func (d *writerDestination) Close() error {
	return nil
}
