// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package csvfile implements a row source that reads CSV tracker exports.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yamtrack-tools/yamport/internal/logger"
	"github.com/yamtrack-tools/yamport/internal/source"
)

const loggerName = "yamport:csvfile"

// ErrNoHeader reports a CSV input without a readable header row.
var ErrNoHeader = errors.New("csv input has no header row")

var _ source.RowSource = &Source{}

// Source streams the rows of a CSV export file.
type Source struct {
	path string
}

// New returns a Source reading the CSV file at path.
func New(path string) *Source {
	return &Source{path: path}
}

// StreamRows reads the CSV file and sends one Row per data line on results.
// Rows with broken quoting are logged and skipped, the header row is used as
// the field name set for every row.
func (s *Source) StreamRows(ctx context.Context, results chan<- source.Row) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	file, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoHeader, s.path)
	}

	log.Debug("reading csv input", "path", s.path, "columns", len(header))

	number := 0
	for {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		number++
		if err != nil {
			log.Warn("skipping unreadable csv row", "row", number, "error", err)
			continue
		}

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(values) {
				fields[name] = values[i]
			} else {
				fields[name] = ""
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- source.Row{Number: number, Fields: fields}:
		}
	}
}
