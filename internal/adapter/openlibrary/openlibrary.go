// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package openlibrary maps OpenLibrary reading log exports to the YamTrack
// import schema.
//
// Column mapping summary:
//   - media_id comes from "Edition ID"
//   - media_type and source are hardcoded to book and openlibrary
//   - score is "My Ratings" doubled, OpenLibrary uses a 5 star scale
//   - status comes from "Bookshelf": the default shelves map directly, custom
//     shelf names are matched against common dropped and paused spellings and
//     fall back to In progress
package openlibrary

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/yamtrack-tools/yamport/internal/adapter"
	"github.com/yamtrack-tools/yamport/internal/record"
	"github.com/yamtrack-tools/yamport/internal/source"
)

// Name is the adapter name used on the command line.
const Name = "openlibrary"

// StrategyReadingLog is the only supported export flavor, produced by the
// OpenLibrary import/export page download button.
const StrategyReadingLog = "reading-log"

// shelf names are matched lowercased.
var defaultShelves = map[string]string{
	"already read":      record.StatusCompleted,
	"currently reading": record.StatusInProgress,
	"want to read":      record.StatusPlanning,
	"dropped":           record.StatusDropped,
	"did not finish":    record.StatusDropped,
	"abandoned":         record.StatusDropped,
	"paused":            record.StatusPaused,
	"on hold":           record.StatusPaused,
}

var _ adapter.Adapter = &Adapter{}

// Adapter maps OpenLibrary reading log rows.
type Adapter struct {
	shelves map[string]string
}

// New returns an OpenLibrary adapter for the given strategy. statusOverrides
// entries are matched against lowercased shelf names and layered over the
// built-in shelf mapping.
func New(strategy string, statusOverrides map[string]string) (*Adapter, error) {
	if strategy != "" && strategy != StrategyReadingLog {
		return nil, fmt.Errorf("%w: %s", adapter.ErrUnknownStrategy, strategy)
	}

	shelves := maps.Clone(defaultShelves)
	for shelf, status := range statusOverrides {
		shelves[strings.ToLower(shelf)] = status
	}

	return &Adapter{shelves: shelves}, nil
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string {
	return Name
}

// MapRow implements adapter.Adapter.
func (a *Adapter) MapRow(row source.Row) (record.Record, error) {
	return record.Record{
		Source:    Name,
		MediaID:   strings.TrimSpace(row.Fields["Edition ID"]),
		MediaType: record.MediaTypeBook,
		Status:    a.status(row.Fields["Bookshelf"]),
		Score:     score(row.Fields["My Ratings"]),
	}, nil
}

// status translates a bookshelf name. An empty shelf defaults to Planning,
// unknown custom shelves are assumed to be in progress reads.
func (a *Adapter) status(shelf string) string {
	shelf = strings.ToLower(strings.TrimSpace(shelf))
	if shelf == "" {
		return record.StatusPlanning
	}

	if status, ok := a.shelves[shelf]; ok {
		return status
	}

	return record.StatusInProgress
}

// score doubles the OpenLibrary 5 star rating to the importer 0-10 scale.
// Ratings are whole stars, anything else is dropped.
func score(rating string) string {
	rating = strings.TrimSpace(rating)
	if rating == "" {
		return ""
	}

	value, err := strconv.Atoi(rating)
	if err != nil {
		return ""
	}

	return strconv.Itoa(value * 2)
}
