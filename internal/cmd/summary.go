// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/yamtrack-tools/yamport/internal/pipeline"
)

// printSummary renders the run statistics as a table on w.
func printSummary(w io.Writer, stats pipeline.Stats) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"read", "mapped", "invalid", "written"})
	tw.AppendRow(table.Row{stats.Read, stats.Mapped, stats.Invalid, stats.Written})

	columnConfigs := make([]table.ColumnConfig, 0, 4)
	for i := 0; i < 4; i++ {
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	tw.Render()
}
