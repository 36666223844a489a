// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yamtrack-tools/yamport/internal/adapter"
	"github.com/yamtrack-tools/yamport/internal/adapter/hardcover"
	"github.com/yamtrack-tools/yamport/internal/adapter/igdb"
	"github.com/yamtrack-tools/yamport/internal/adapter/openlibrary"
	"github.com/yamtrack-tools/yamport/internal/config"
	"github.com/yamtrack-tools/yamport/internal/source"
	"github.com/yamtrack-tools/yamport/internal/source/csvfile"
	"github.com/yamtrack-tools/yamport/internal/source/xmlfile"
)

var (
	errNoArguments      = errors.New("no adapter name provided")
	errUnknownAdapter   = errors.New("unknown adapter name provided")
	errNoInput          = errors.New("no input file provided")
	errUnsupportedInput = errors.New("unsupported input file format")

	// availableAdapters holds the list of available adapters and their description
	// for command completion and help messages.
	availableAdapters = map[string]string{
		hardcover.Name:   "Hardcover book export",
		openlibrary.Name: "OpenLibrary reading log export",
		igdb.Name:        "IGDB list or Steam library export",
	}
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errUnknownAdapter), errors.Is(err, errNoInput), errors.Is(err, errUnsupportedInput):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// unwrappedError returns the unwrapped error if available, otherwise it returns the original error.
func unwrappedError(err error) error {
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		return unwrapped
	}

	return err
}

func validArgsFunc(adapters map[string]string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var comps []string
		if len(args) == 0 {
			for name, description := range adapters {
				if strings.HasPrefix(name, toComplete) {
					comps = append(comps, cobra.CompletionWithDesc(name, description))
				}
			}
		}

		return comps, cobra.ShellCompDirectiveNoFileComp
	}
}

func collectPaths(paths []string) ([]string, error) {
	collected := make([]string, 0)
	for _, p := range paths {
		cleanedPath := filepath.Clean(p)
		err := filepath.Walk(cleanedPath, func(walkedPath string, info fs.FileInfo, err error) error {
			if err != nil {
				return fmt.Errorf("mapping file %q: %w", walkedPath, unwrappedError(err))
			}

			switch {
			case !info.IsDir(): // it's a file add to the collection
				collected = append(collected, walkedPath)
			case info.IsDir() && cleanedPath != walkedPath: // skip directories if is not the root path
				return filepath.SkipDir
			}

			return nil
		})

		if err != nil {
			return nil, err
		}
	}

	return collected, nil
}

// loadStatusOverrides loads the mapping configurations from the provided paths
// and merges them into one status override map per adapter name.
func loadStatusOverrides(paths []string) (map[string]map[string]string, error) {
	mappings := make([]*config.MappingConfig, 0)
	for _, path := range paths {
		fileMappings, err := config.NewMappingConfigsFromPath(path)
		if err != nil {
			return nil, err
		}

		mappings = append(mappings, fileMappings...)
	}

	return config.MergeStatusOverrides(mappings), nil
}

// adapterFromName returns the adapter for the provided name. An empty strategy
// for the igdb adapter is detected from the input file name.
func adapterFromName(name, strategy, inputPath string, overrides map[string]map[string]string) (adapter.Adapter, error) {
	switch name {
	case hardcover.Name:
		return hardcover.New(overrides[hardcover.Name]), nil
	case openlibrary.Name:
		return openlibrary.New(strategy, overrides[openlibrary.Name])
	case igdb.Name:
		if strategy == "" {
			strategy = igdb.DetectStrategy(inputPath)
		}

		return igdb.New(strategy, overrides[igdb.Name])
	}

	return nil, fmt.Errorf("%w: %s", errUnknownAdapter, name)
}

// sourceForInput returns a row source for the input path based on its file extension.
func sourceForInput(path string) (source.RowSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csvfile.New(path), nil
	case ".xml":
		return xmlfile.New(path), nil
	}

	return nil, fmt.Errorf("%w: %q", errUnsupportedInput, path)
}

// autoOutputPath builds the default output path for an input file.
func autoOutputPath(inputPath string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join("output", base+now.Format("20060102150405")+".csv")
}
