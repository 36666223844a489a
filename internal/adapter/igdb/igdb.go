// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package igdb maps IGDB list exports and enriched Steam library exports to
// the YamTrack import schema.
//
// Strategies:
//   - igdb: the "Download CSV" feature of IGDB lists, "id" is the media id and
//     "game" the title
//   - list-played, list-playing, list-want: IGDB default lists, same columns
//     as igdb but with a fixed status derived from the list name
//   - steam-api: a Steam library export enriched with an igdb_id column,
//     "igdb_id" is the media id and "name" the title
//
// The global rating columns of a list export are not user ratings, so score is
// always left empty.
package igdb

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yamtrack-tools/yamport/internal/adapter"
	"github.com/yamtrack-tools/yamport/internal/record"
	"github.com/yamtrack-tools/yamport/internal/source"
)

// Name is the adapter name used on the command line.
const Name = "igdb"

// Supported strategies.
const (
	StrategyIGDB        = "igdb"
	StrategyListPlayed  = "list-played"
	StrategyListPlaying = "list-playing"
	StrategyListWant    = "list-want"
	StrategySteamAPI    = "steam-api"
)

// defaultStatuses holds the status assigned by every strategy.
var defaultStatuses = map[string]string{
	StrategyIGDB:        record.StatusPlanning,
	StrategyListPlayed:  record.StatusCompleted,
	StrategyListPlaying: record.StatusInProgress,
	StrategyListWant:    record.StatusPlanning,
	StrategySteamAPI:    record.StatusPlanning,
}

// listFileStrategies maps the IGDB default list file names to their strategy.
var listFileStrategies = map[string]string{
	"played.csv":       StrategyListPlayed,
	"playing.csv":      StrategyListPlaying,
	"want-to-play.csv": StrategyListWant,
}

// Strategies returns the supported strategy names.
func Strategies() []string {
	return []string{StrategyIGDB, StrategyListPlayed, StrategyListPlaying, StrategyListWant, StrategySteamAPI}
}

// DetectStrategy picks a strategy from the input file name. The IGDB default
// list downloads keep recognizable names, everything else is treated as a
// plain list export.
func DetectStrategy(inputPath string) string {
	name := strings.ToLower(filepath.Base(inputPath))
	if strategy, ok := listFileStrategies[name]; ok {
		return strategy
	}

	return StrategyIGDB
}

var _ adapter.Adapter = &Adapter{}

// Adapter maps IGDB export rows for one strategy.
type Adapter struct {
	strategy string
	status   string
}

// New returns an IGDB adapter for the given strategy. statusOverrides entries
// are keyed by strategy name and replace the status that strategy assigns.
func New(strategy string, statusOverrides map[string]string) (*Adapter, error) {
	if strategy == "" {
		strategy = StrategyIGDB
	}

	status, ok := defaultStatuses[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", adapter.ErrUnknownStrategy, strategy)
	}

	if override, ok := statusOverrides[strategy]; ok {
		status = override
	}

	return &Adapter{
		strategy: strategy,
		status:   status,
	}, nil
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string {
	return Name
}

// MapRow implements adapter.Adapter.
func (a *Adapter) MapRow(row source.Row) (record.Record, error) {
	mapped := record.Record{
		Source:    Name,
		MediaType: record.MediaTypeGame,
		Status:    a.status,
	}

	switch a.strategy {
	case StrategySteamAPI:
		mapped.MediaID = strings.TrimSpace(row.Fields["igdb_id"])
		mapped.Title = row.Fields["name"]
	case StrategyIGDB:
		mapped.MediaID = strings.TrimSpace(row.Fields["id"])
		mapped.Title = row.Fields["game"]
	default:
		mapped.MediaID = strings.TrimSpace(row.Fields["id"])
	}

	return mapped, nil
}
