// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package steam

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/yamtrack-tools/yamport/internal/logger"
)

const enricherLoggerName = "yamport:steam"

// EnrichedColumn is the column added to a Steam library export by the Enricher.
const EnrichedColumn = "igdb_id"

// LibraryColumns lists the columns of a Steam library export in order.
var LibraryColumns = []string{
	"appid",
	"name",
	"playtime_forever",
	"playtime_windows_forever",
	"playtime_mac_forever",
	"playtime_linux_forever",
	"rtime_last_played",
	"playtime_2weeks",
	"has_community_visible_stats",
	"img_icon_url",
	"img_logo_url",
}

// ErrNoHeader reports a library CSV without a readable header row.
var ErrNoHeader = errors.New("library csv has no header row")

// RowsFromGames converts the owned games to library export rows.
func RowsFromGames(games []Game) []map[string]string {
	rows := make([]map[string]string, 0, len(games))
	for _, game := range games {
		rows = append(rows, map[string]string{
			"appid":                       strconv.FormatInt(game.AppID, 10),
			"name":                        game.Name,
			"playtime_forever":            strconv.FormatInt(game.PlaytimeForever, 10),
			"playtime_windows_forever":    strconv.FormatInt(game.PlaytimeWindows, 10),
			"playtime_mac_forever":        strconv.FormatInt(game.PlaytimeMac, 10),
			"playtime_linux_forever":      strconv.FormatInt(game.PlaytimeLinux, 10),
			"rtime_last_played":           strconv.FormatInt(game.LastPlayed, 10),
			"playtime_2weeks":             strconv.FormatInt(game.PlaytimeTwoWeeks, 10),
			"has_community_visible_stats": strconv.FormatBool(game.HasVisibleStats),
			"img_icon_url":                game.IconURL,
			"img_logo_url":                game.LogoURL,
		})
	}

	return rows
}

// ReadRows reads a library CSV returning its column names and rows.
func ReadRows(r io.Reader) ([]string, []map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, ErrNoHeader
	}

	rows := make([]map[string]string, 0)
	for {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(values) {
				row[name] = values[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// WriteRows writes a library CSV with the given column names and rows.
func WriteRows(w io.Writer, columns []string, rows []map[string]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return err
	}

	values := make([]string, len(columns))
	for _, row := range rows {
		for i, name := range columns {
			values[i] = row[name]
		}
		if err := writer.Write(values); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ColumnsWithIGDB appends the enrichment column to columns when missing.
func ColumnsWithIGDB(columns []string) []string {
	for _, name := range columns {
		if name == EnrichedColumn {
			return columns
		}
	}

	return append(append(make([]string, 0, len(columns)+1), columns...), EnrichedColumn)
}

// Enricher resolves the IGDB game id of every row in a library export.
type Enricher struct {
	igdb     *IGDBClient
	interval time.Duration
}

// NewEnricher returns an Enricher that waits interval between IGDB lookups.
func NewEnricher(igdb *IGDBClient, interval time.Duration) *Enricher {
	return &Enricher{
		igdb:     igdb,
		interval: interval,
	}
}

// Enrich adds the igdb_id field to every row, looking up the row appid against
// IGDB. Rows that fail the lookup keep an empty id and are logged, the run
// continues. The configured interval is respected between lookups.
func (e *Enricher) Enrich(ctx context.Context, rows []map[string]string) error {
	log := logger.FromContext(ctx).WithName(enricherLoggerName)
	log.Info("looking up igdb ids", "rows", len(rows))

	for i, row := range rows {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(e.interval):
			}
		}

		appID := row["appid"]
		if appID == "" {
			log.Warn("row without appid, skipping lookup", "row", i+1)
			row[EnrichedColumn] = ""
			continue
		}

		gameID, err := e.igdb.GameID(ctx, appID)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			log.Error("igdb lookup failed, leaving row unenriched", "appid", appID, "error", err)
			row[EnrichedColumn] = ""
			continue
		}

		if gameID == "" {
			log.Warn(fmt.Sprintf("no igdb match for appid %s", appID))
		}
		row[EnrichedColumn] = gameID
		log.Debug("resolved igdb id", "row", i+1, "appid", appID, "igdb_id", gameID)
	}

	return nil
}
