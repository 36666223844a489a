// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamtrack-tools/yamport/internal/config"
	"github.com/yamtrack-tools/yamport/internal/logger"
	"github.com/yamtrack-tools/yamport/internal/source/steam"
)

const (
	steamLoggerName = "yamport:steam"

	defaultLibraryPath = "steam-library.csv"

	enrichFlagName  = "enrich"
	enrichFlagUsage = "Look up the IGDB game id of every exported game"
	defaultEnrich   = false

	libraryOutputFlagUsage = "Path of the generated library CSV file"
	enrichInputFlagUsage   = "Path to the library CSV file to enrich"
	enrichOutputFlagUsage  = "Path of the enriched CSV file. Overwrites the input file if unset."
)

// steamExportFlags holds the flags for the "steam export" command.
type steamExportFlags struct {
	output string
	enrich bool
}

// addFlags adds the cli flags to the cobra command.
func (f *steamExportFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, outputFlagName, outputFlagShort, defaultLibraryPath, libraryOutputFlagUsage)
	cmd.Flags().BoolVar(&f.enrich, enrichFlagName, defaultEnrich, enrichFlagUsage)
}

// toOptions converts the export flags to steamExportOptions.
func (f *steamExportFlags) toOptions() *steamExportOptions {
	return &steamExportOptions{
		outputPath: f.output,
		enrich:     f.enrich,
	}
}

// steamExportOptions holds the options set for the current export function.
type steamExportOptions struct {
	outputPath string
	enrich     bool
}

// execute downloads the owned games of the configured Steam account and
// writes them as a CSV library file.
func (o *steamExportOptions) execute(ctx context.Context) error {
	envConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := envConfig.ValidateSteam(); err != nil {
		return err
	}
	if o.enrich {
		if err := envConfig.ValidateIGDB(); err != nil {
			return err
		}
	}

	log := logger.FromContext(ctx).WithName(steamLoggerName)

	client := steam.NewClient(envConfig.SteamAPIKey, envConfig.SteamID64)
	games, err := client.OwnedGames(ctx)
	if err != nil {
		return err
	}
	log.Info("downloaded owned games", "games", len(games))

	columns := steam.LibraryColumns
	rows := steam.RowsFromGames(games)
	if o.enrich {
		igdbClient := steam.NewIGDBClient(ctx, envConfig.TwitchClientID, envConfig.TwitchClientSecret)
		if err := steam.NewEnricher(igdbClient, envConfig.IGDBRateInterval).Enrich(ctx, rows); err != nil {
			return err
		}

		columns = steam.ColumnsWithIGDB(columns)
	}

	return writeLibrary(o.outputPath, columns, rows)
}

// steamEnrichFlags holds the flags for the "steam enrich" command.
type steamEnrichFlags struct {
	input  string
	output string
}

// addFlags adds the cli flags to the cobra command.
func (f *steamEnrichFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, inputFlagName, inputFlagShort, "", enrichInputFlagUsage)
	cmd.Flags().StringVarP(&f.output, outputFlagName, outputFlagShort, "", enrichOutputFlagUsage)
}

// toOptions converts the enrich flags to steamEnrichOptions.
func (f *steamEnrichFlags) toOptions() *steamEnrichOptions {
	return &steamEnrichOptions{
		inputPath:  f.input,
		outputPath: f.output,
	}
}

// steamEnrichOptions holds the options set for the current enrich function.
type steamEnrichOptions struct {
	inputPath  string
	outputPath string
}

// validate validates the enrich options and returns an error if something is wrong.
func (o *steamEnrichOptions) validate() error {
	if o.inputPath == "" {
		return errNoInput
	}

	if _, err := os.Stat(o.inputPath); err != nil {
		return fmt.Errorf("input file %q: %w", o.inputPath, unwrappedError(err))
	}

	return nil
}

// execute adds the IGDB game id column to an exported library file.
func (o *steamEnrichOptions) execute(ctx context.Context) error {
	envConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := envConfig.ValidateIGDB(); err != nil {
		return err
	}

	file, err := os.Open(o.inputPath)
	if err != nil {
		return err
	}

	columns, rows, err := steam.ReadRows(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	igdbClient := steam.NewIGDBClient(ctx, envConfig.TwitchClientID, envConfig.TwitchClientSecret)
	if err := steam.NewEnricher(igdbClient, envConfig.IGDBRateInterval).Enrich(ctx, rows); err != nil {
		return err
	}

	outputPath := o.outputPath
	if outputPath == "" {
		outputPath = o.inputPath
	}

	return writeLibrary(outputPath, steam.ColumnsWithIGDB(columns), rows)
}

// writeLibrary writes a library CSV file at path.
func writeLibrary(path string, columns []string, rows []map[string]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = steam.WriteRows(file, columns, rows)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	return err
}
