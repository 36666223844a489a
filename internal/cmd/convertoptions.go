// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/yamtrack-tools/yamport/internal/config"
	"github.com/yamtrack-tools/yamport/internal/destination"
	"github.com/yamtrack-tools/yamport/internal/destination/csvwriter"
	"github.com/yamtrack-tools/yamport/internal/destination/writer"
	"github.com/yamtrack-tools/yamport/internal/logger"
	"github.com/yamtrack-tools/yamport/internal/pipeline"
)

const (
	convertLoggerName = "yamport:convert"

	sourceFlagName  = "source"
	sourceFlagUsage = "Adapter name, alternative to the positional argument"

	inputFlagName  = "input"
	inputFlagShort = "i"
	inputFlagUsage = "Path to the export file to convert"

	outputFlagName  = "output"
	outputFlagShort = "o"
	outputFlagUsage = "Path of the generated CSV file. Generated from the input name if unset."

	strategyFlagName  = "strategy"
	strategyFlagUsage = "Force the adapter strategy instead of detecting it from the input name"

	mappingPathFlagName  = "mapping-file"
	mappingPathFlagShort = "f"
	mappingPathFlagUsage = "Path to a file or directory containing custom status mappings. Can be specified multiple times."

	localOutputFlagName  = "local-output"
	localOutputFlagUsage = "If set, prints the records to stdout instead of writing a CSV file"
	defaultLocalOutput   = false
)

// convertFlags holds the flags for the "convert" command.
type convertFlags struct {
	source       string
	input        string
	output       string
	strategy     string
	mappingPaths []string
	localOutput  bool
}

// addFlags adds the cli flags to the cobra command.
func (f *convertFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.source, sourceFlagName, "", sourceFlagUsage)
	cmd.Flags().StringVarP(&f.input, inputFlagName, inputFlagShort, "", inputFlagUsage)
	cmd.Flags().StringVarP(&f.output, outputFlagName, outputFlagShort, "", outputFlagUsage)
	cmd.Flags().StringVar(&f.strategy, strategyFlagName, "", strategyFlagUsage)
	cmd.Flags().StringArrayVarP(
		&f.mappingPaths,
		mappingPathFlagName,
		mappingPathFlagShort,
		nil,
		mappingPathFlagUsage)

	cmd.Flags().BoolVar(&f.localOutput, localOutputFlagName, defaultLocalOutput, localOutputFlagUsage)
}

// toOptions converts the convert flags to convertOptions enriching it with the passed arguments.
func (f *convertFlags) toOptions(cmd *cobra.Command, args []string) (*convertOptions, error) {
	adapterName := f.source
	if len(args) > 0 {
		adapterName = args[0]
	}

	mappingPaths, err := collectPaths(f.mappingPaths)
	if err != nil {
		return nil, err
	}

	return &convertOptions{
		adapterName:  strings.ToLower(adapterName),
		strategy:     strings.ToLower(f.strategy),
		inputPath:    f.input,
		outputPath:   f.output,
		mappingPaths: mappingPaths,
		localOutput:  f.localOutput,
		stdout:       cmd.OutOrStdout(),
	}, nil
}

// convertOptions holds the options set for the current convert function.
type convertOptions struct {
	adapterName  string
	strategy     string
	inputPath    string
	outputPath   string
	mappingPaths []string
	localOutput  bool
	stdout       io.Writer

	lock sync.Mutex
}

// validate validates the convert options and returns an error if something is wrong.
func (o *convertOptions) validate() error {
	if o.adapterName == "" {
		return errNoArguments
	}

	if _, ok := availableAdapters[o.adapterName]; !ok {
		return fmt.Errorf("%w: %s", errUnknownAdapter, o.adapterName)
	}

	if o.inputPath == "" {
		return errNoInput
	}

	if _, err := os.Stat(o.inputPath); err != nil {
		return fmt.Errorf("input file %q: %w", o.inputPath, unwrappedError(err))
	}

	return nil
}

// execute runs a conversion pipeline based on the convert options.
func (o *convertOptions) execute(ctx context.Context) error {
	if !o.lock.TryLock() {
		return nil
	}
	defer o.lock.Unlock()

	envConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	overrides, err := loadStatusOverrides(o.mappingPaths)
	if err != nil {
		return err
	}

	adp, err := adapterFromName(o.adapterName, o.strategy, o.inputPath, overrides)
	if err != nil {
		return err
	}

	src, err := sourceForInput(o.inputPath)
	if err != nil {
		return err
	}

	dest, closeDest, err := o.destination(ctx)
	if err != nil {
		return err
	}

	stats, runErr := pipeline.New(src, adp, dest, envConfig.SkipInvalidRows).Run(ctx)
	if err := closeDest(); err != nil && runErr == nil {
		runErr = err
	}

	if runErr != nil {
		return runErr
	}

	printSummary(o.stdout, stats)
	return nil
}

// destination builds the configured destination and returns it together with
// the function releasing its resources.
func (o *convertOptions) destination(ctx context.Context) (destination.Writer, func() error, error) {
	if o.localOutput {
		dest := writer.NewDestination(o.stdout)
		return dest, dest.Close, nil
	}

	outputPath := o.outputPath
	if outputPath == "" {
		outputPath = autoOutputPath(o.inputPath, time.Now())
		log := logger.FromContext(ctx).WithName(convertLoggerName)
		log.Warn("no output path provided, generating one", "path", outputPath)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}

	dest, err := csvwriter.NewDestination(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	closeDest := func() error {
		closeErr := dest.Close()
		if err := file.Close(); closeErr == nil {
			closeErr = err
		}

		return closeErr
	}

	return dest, closeDest, nil
}
