// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	convertCmdUsage = "convert ADAPTER"
	convertCmdShort = "convert a media tracker export into a YamTrack import file"
	convertCmdLong  = `Convert a media tracker export into a YamTrack import file.
	Every adapter understands the export format of one tracker and maps its
	fields, statuses and dates to the YamTrack import schema. The input format
	is selected by file extension (.csv or .xml).

	The available adapters are:
	- hardcover: Hardcover book export
	- openlibrary: OpenLibrary reading log export
	- igdb: IGDB list or Steam library export

	The igdb adapter picks its strategy from the input file name (played.csv,
	playing.csv, want-to-play.csv) unless one is forced with --strategy. The
	adapter can also be selected with the --source flag instead of the
	positional argument.`

	convertCmdExample = `# Convert a Hardcover export
	yamport convert hardcover --input hardcover-export.csv

	# Convert an IGDB list forcing the played strategy
	yamport convert igdb --input my-list.csv --strategy list-played

	# Convert with custom status mappings, printing records to stdout
	yamport convert openlibrary --input reading-log.csv -f mappings/ --local-output`
)

// ConvertCmd return the "convert" cli command for transforming an export file.
func ConvertCmd() *cobra.Command {
	flags := &convertFlags{}
	cmd := &cobra.Command{
		Use:     convertCmdUsage,
		Short:   heredoc.Doc(convertCmdShort),
		Long:    heredoc.Doc(convertCmdLong),
		Example: heredoc.Doc(convertCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: validArgsFunc(availableAdapters),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
