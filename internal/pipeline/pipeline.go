// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/yamtrack-tools/yamport/internal/adapter"
	"github.com/yamtrack-tools/yamport/internal/destination"
	"github.com/yamtrack-tools/yamport/internal/logger"
	"github.com/yamtrack-tools/yamport/internal/source"
)

const (
	loggerName = "yamport:pipeline"
)

// Stats counts the rows handled during a conversion run.
type Stats struct {
	// Read is the number of rows received from the source.
	Read int
	// Mapped is the number of rows the adapter translated successfully.
	Mapped int
	// Invalid is the number of mapped rows that failed schema validation.
	Invalid int
	// Written is the number of records delivered to the destination.
	Written int
}

// Pipeline connects a row source, an adapter and a destination.
type Pipeline struct {
	source      source.RowSource
	adapter     adapter.Adapter
	destination destination.Writer
	skipInvalid bool

	stats Stats
}

// New creates a pipeline. When skipInvalid is set, mapped rows failing schema
// validation are logged and dropped instead of being written.
func New(src source.RowSource, adp adapter.Adapter, dest destination.Writer, skipInvalid bool) *Pipeline {
	return &Pipeline{
		source:      src,
		adapter:     adp,
		destination: dest,
		skipInvalid: skipInvalid,
	}
}

// Run streams the source rows through the adapter into the destination and
// returns the run statistics. Row level failures are logged and skipped, only
// source level failures abort the run.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	log := logger.FromContext(ctx).WithName(loggerName)
	runID := uuid.NewString()
	log.Debug("starting conversion pipeline", "run_id", runID, "adapter", p.adapter.Name())

	channel := make(chan source.Row)

	// use channel to signal when the mapping loop has drained all the rows
	mappingDone := make(chan struct{})
	go func() {
		log.Trace("starting row mapping goroutine", "run_id", runID)
		p.mapRows(ctx, channel)
		mappingDone <- struct{}{}
	}()

	err := p.source.StreamRows(ctx, channel)
	log.Trace("source stream finished, closing row channel", "run_id", runID)
	close(channel)

	<-mappingDone
	log.Info("conversion finished",
		"run_id", runID,
		"read", p.stats.Read,
		"mapped", p.stats.Mapped,
		"invalid", p.stats.Invalid,
		"written", p.stats.Written,
	)
	return p.stats, err
}

func (p *Pipeline) mapRows(ctx context.Context, channel <-chan source.Row) {
	log := logger.FromContext(ctx).WithName(loggerName)
	for {
		select {
		case <-ctx.Done():
			log.Debug("pipeline cancelled from context", "error", ctx.Err())
			return
		case row, ok := <-channel:
			if !ok {
				return
			}
			p.stats.Read++

			mapped, err := p.adapter.MapRow(row)
			if err != nil {
				log.Warn("row mapping failed, skipping", "row", row.Number, "error", err)
				continue
			}
			p.stats.Mapped++

			if err := mapped.Validate(); err != nil {
				p.stats.Invalid++
				if p.skipInvalid {
					log.Warn("invalid row skipped", "row", row.Number, "error", err)
					continue
				}
				log.Warn("writing invalid row", "row", row.Number, "error", err)
			}

			if err := p.destination.WriteRecord(ctx, mapped); err != nil {
				log.Error("error writing record to destination", "row", row.Number, "error", err)
				continue
			}
			p.stats.Written++
		}
	}
}
