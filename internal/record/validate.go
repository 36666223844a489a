// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timestampLayout is the full ISO-8601 timestamp with timezone expected by the
// YamTrack importer (YYYY-MM-DD HH:MM:SS±HH:MM).
const timestampLayout = "2006-01-02 15:04:05Z07:00"

// ErrInvalidRecord reports a record that does not satisfy the import schema rules.
var ErrInvalidRecord = errors.New("invalid record")

var allowedSources = map[string]struct{}{
	"tmdb":         {},
	"mal":          {},
	"mangaupdates": {},
	"igdb":         {},
	"openlibrary":  {},
	"hardcover":    {},
	"comicvine":    {},
	"manual":       {},
}

var allowedMediaTypes = map[string]struct{}{
	MediaTypeTV:      {},
	MediaTypeSeason:  {},
	MediaTypeEpisode: {},
	MediaTypeMovie:   {},
	MediaTypeAnime:   {},
	MediaTypeManga:   {},
	MediaTypeGame:    {},
	MediaTypeBook:    {},
	MediaTypeComic:   {},
}

var allowedStatuses = map[string]struct{}{
	StatusCompleted:  {},
	StatusInProgress: {},
	StatusPlanning:   {},
	StatusPaused:     {},
	StatusDropped:    {},
}

// Validate checks the record against the import schema rules and returns an
// error wrapping ErrInvalidRecord describing the first violation found.
func (r Record) Validate() error {
	if !present(r.MediaID) {
		return fmt.Errorf("%w: media_id is required and cannot be blank", ErrInvalidRecord)
	}

	if !present(r.Source) {
		return fmt.Errorf("%w: source is required and cannot be blank", ErrInvalidRecord)
	}
	if _, ok := allowedSources[r.Source]; !ok {
		return fmt.Errorf("%w: source %q is not allowed", ErrInvalidRecord, r.Source)
	}

	if !present(r.MediaType) {
		return fmt.Errorf("%w: media_type is required", ErrInvalidRecord)
	}
	if _, ok := allowedMediaTypes[r.MediaType]; !ok {
		return fmt.Errorf("%w: media_type %q is not allowed", ErrInvalidRecord, r.MediaType)
	}

	if r.MediaType == MediaTypeSeason && !present(r.SeasonNumber) {
		return fmt.Errorf("%w: season_number is required when media_type is season", ErrInvalidRecord)
	}
	if r.MediaType == MediaTypeEpisode && (!present(r.SeasonNumber) || !present(r.EpisodeNumber)) {
		return fmt.Errorf("%w: season_number and episode_number are required when media_type is episode", ErrInvalidRecord)
	}

	if !present(r.Status) {
		return fmt.Errorf("%w: status is required", ErrInvalidRecord)
	}
	if _, ok := allowedStatuses[r.Status]; !ok {
		return fmt.Errorf("%w: status %q is not allowed", ErrInvalidRecord, r.Status)
	}

	if present(r.Score) {
		score, err := strconv.ParseFloat(r.Score, 64)
		if err != nil || score < 0 || score > 10 {
			return fmt.Errorf("%w: score must be a decimal between 0 and 10", ErrInvalidRecord)
		}
	}

	if present(r.Progress) {
		if _, err := strconv.Atoi(r.Progress); err != nil {
			return fmt.Errorf("%w: progress must be an integer", ErrInvalidRecord)
		}
	}

	for name, value := range map[string]string{"start_date": r.StartDate, "end_date": r.EndDate} {
		if !present(value) {
			continue
		}
		if _, err := time.Parse(timestampLayout, value); err != nil {
			return fmt.Errorf("%w: %s must be an ISO-8601 timestamp with timezone", ErrInvalidRecord, name)
		}
	}

	return nil
}

// AllowedStatus reports whether status is accepted by the importer.
func AllowedStatus(status string) bool {
	_, ok := allowedStatuses[status]
	return ok
}

// present reports whether a field holds a non blank value.
func present(value string) bool {
	return strings.TrimSpace(value) != ""
}
