// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package hardcover maps Hardcover CSV exports to the YamTrack import schema.
//
// Column mapping summary:
//   - media_id comes from "Hardcover Book ID"
//   - media_type comes from "Media": Book, Audio, Audiobook and Ebook become
//     book, Comic becomes comic
//   - score is "Rating" doubled, Hardcover uses a 5 star scale
//   - status comes from "Status": Read, Want to Read and Currently Reading
//   - start_date and end_date convert "Date Started"/"Date Finished" from
//     yyyy-MM-dd to a full ISO-8601 timestamp at midnight UTC
//   - notes and progress come from "Private Notes" and "Pages" as is
package hardcover

import (
	"maps"
	"strconv"
	"strings"

	"github.com/yamtrack-tools/yamport/internal/adapter"
	"github.com/yamtrack-tools/yamport/internal/record"
	"github.com/yamtrack-tools/yamport/internal/source"
)

// Name is the adapter name used on the command line.
const Name = "hardcover"

// midnightUTCSuffix expands a plain date to the timestamp format expected by
// the importer.
const midnightUTCSuffix = " 00:00:00+00:00"

var defaultStatuses = map[string]string{
	"Read":              record.StatusCompleted,
	"Want to Read":      record.StatusPlanning,
	"Currently Reading": record.StatusInProgress,
}

var _ adapter.Adapter = &Adapter{}

// Adapter maps Hardcover export rows.
type Adapter struct {
	statuses map[string]string
}

// New returns a Hardcover adapter. statusOverrides entries are layered over
// the built-in status mapping.
func New(statusOverrides map[string]string) *Adapter {
	statuses := maps.Clone(defaultStatuses)
	maps.Copy(statuses, statusOverrides)

	return &Adapter{statuses: statuses}
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string {
	return Name
}

// MapRow implements adapter.Adapter.
func (a *Adapter) MapRow(row source.Row) (record.Record, error) {
	mapped := record.Record{
		Source:   Name,
		MediaID:  strings.TrimSpace(row.Fields["Hardcover Book ID"]),
		Notes:    row.Fields["Private Notes"],
		Progress: strings.TrimSpace(row.Fields["Pages"]),
	}

	mapped.MediaType = mediaType(row.Fields["Media"])
	mapped.Status = a.status(row.Fields["Status"])
	mapped.Score = score(row.Fields["Rating"])
	mapped.StartDate = timestamp(row.Fields["Date Started"])
	mapped.EndDate = timestamp(row.Fields["Date Finished"])

	return mapped, nil
}

// mediaType normalizes the Hardcover media names, unknown values are kept
// lowercased so validation can report them.
func mediaType(media string) string {
	switch strings.ToLower(strings.TrimSpace(media)) {
	case "book", "audio", "audiobook", "ebook":
		return record.MediaTypeBook
	case "comic":
		return record.MediaTypeComic
	default:
		return strings.ToLower(strings.TrimSpace(media))
	}
}

// status translates the Hardcover reading status, unknown values pass through
// unchanged so validation can report them.
func (a *Adapter) status(status string) string {
	status = strings.TrimSpace(status)
	if mapped, ok := a.statuses[status]; ok {
		return mapped
	}

	return status
}

// score doubles the Hardcover 5 star rating to the importer 0-10 scale.
func score(rating string) string {
	rating = strings.TrimSpace(rating)
	if rating == "" {
		return ""
	}

	value, err := strconv.ParseFloat(rating, 64)
	if err != nil {
		return ""
	}

	return strconv.FormatFloat(value*2, 'f', -1, 64)
}

// timestamp expands a yyyy-MM-dd date to a full ISO-8601 timestamp, empty
// dates stay empty.
func timestamp(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}

	return date + midnightUTCSuffix
}
