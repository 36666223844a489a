// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package record

// Statuses accepted by the YamTrack importer.
const (
	StatusCompleted  = "Completed"
	StatusInProgress = "In progress"
	StatusPlanning   = "Planning"
	StatusPaused     = "Paused"
	StatusDropped    = "Dropped"
)

// Media types accepted by the YamTrack importer.
const (
	MediaTypeTV      = "tv"
	MediaTypeSeason  = "season"
	MediaTypeEpisode = "episode"
	MediaTypeMovie   = "movie"
	MediaTypeAnime   = "anime"
	MediaTypeManga   = "manga"
	MediaTypeGame    = "game"
	MediaTypeBook    = "book"
	MediaTypeComic   = "comic"
)

// Columns lists the output schema column names in their expected order.
var Columns = []string{
	"source",
	"media_id",
	"media_type",
	"title",
	"image",
	"season_number",
	"episode_number",
	"score",
	"status",
	"notes",
	"start_date",
	"end_date",
	"progress",
}

// Record is one row of the YamTrack import schema. All fields are kept as
// strings since they are read from and written to CSV files; an empty string
// marks an absent value.
type Record struct {
	Source        string
	MediaID       string
	MediaType     string
	Title         string
	Image         string
	SeasonNumber  string
	EpisodeNumber string
	Score         string
	Status        string
	Notes         string
	StartDate     string
	EndDate       string
	Progress      string
}

// Values returns the record fields in the same order as Columns.
func (r Record) Values() []string {
	return []string{
		r.Source,
		r.MediaID,
		r.MediaType,
		r.Title,
		r.Image,
		r.SeasonNumber,
		r.EpisodeNumber,
		r.Score,
		r.Status,
		r.Notes,
		r.StartDate,
		r.EndDate,
		r.Progress,
	}
}
