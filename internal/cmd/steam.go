// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	steamCmdUsage = "steam"
	steamCmdShort = "export and enrich a Steam game library"
	steamCmdLong  = `Export the owned games of a Steam account as a CSV library file and
	enrich it with IGDB game ids so it can be converted with the igdb adapter.

	The export command needs the STEAM_API_KEY and STEAM_ID64 environment
	variables, enrichment needs TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET.`

	steamExportCmdUsage = "export"
	steamExportCmdShort = "export the owned games of a Steam account as CSV"

	steamExportCmdExample = `# Export the library and enrich it in one pass
	yamport steam export --enrich -o library.csv`

	steamEnrichCmdUsage = "enrich"
	steamEnrichCmdShort = "add IGDB game ids to an exported Steam library CSV"

	steamEnrichCmdExample = `# Enrich a previously exported library in place
	yamport steam enrich --input library.csv`
)

// SteamCmd return the "steam" cli command group for Steam library handling.
func SteamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   steamCmdUsage,
		Short: heredoc.Doc(steamCmdShort),
		Long:  heredoc.Doc(steamCmdLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
	}

	cmd.AddCommand(steamExportCmd(), steamEnrichCmd())
	return cmd
}

// steamExportCmd return the "steam export" cli command.
func steamExportCmd() *cobra.Command {
	flags := &steamExportFlags{}
	cmd := &cobra.Command{
		Use:     steamExportCmdUsage,
		Short:   heredoc.Doc(steamExportCmdShort),
		Example: heredoc.Doc(steamExportCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags.toOptions()
			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// steamEnrichCmd return the "steam enrich" cli command.
func steamEnrichCmd() *cobra.Command {
	flags := &steamEnrichFlags{}
	cmd := &cobra.Command{
		Use:     steamEnrichCmdUsage,
		Short:   heredoc.Doc(steamEnrichCmdShort),
		Example: heredoc.Doc(steamEnrichCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags.toOptions()
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
