// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yamtrack-tools/yamport/internal/record"
)

const (
	AdapterField  = "adapter"
	StatusesField = "statuses"
)

var (
	// ErrParsing reports failures that occur while decoding mapping files.
	ErrParsing = errors.New("error parsing")
)

// MappingConfig holds custom status mapping rules for one adapter. Statuses
// entries are layered over the adapter built-in status mapping, the key
// interpretation (source status, shelf name or strategy) is adapter specific.
type MappingConfig struct {
	Adapter  string            `json:"adapter" yaml:"adapter"`
	Statuses map[string]string `json:"statuses" yaml:"statuses"`
}

// NewMappingConfigsFromPath parses the file at path and returns any mapping
// configurations it contains. It reports failures encountered while reading or
// decoding the data.
func NewMappingConfigsFromPath(path string) ([]*MappingConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Create a YAML decoder for the file.
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	configs := make([]*MappingConfig, 0)

	// Continue parsing until the end of the file.
	for {
		config := new(MappingConfig)
		err := decoder.Decode(&config)
		if err != nil {
			// End of file reached, stop parsing.
			if errors.Is(err, io.EOF) {
				break
			}

			// A different parsing error occurred; return it.
			return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
		}

		// Skip empty configs.
		if config == nil {
			continue
		}

		if err := validateMapping(config); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
		}

		configs = append(configs, config)
	}

	return configs, nil
}

// validateMapping checks the required fields and the mapped status values of
// a mapping configuration.
func validateMapping(config *MappingConfig) error {
	errorsList := []string{}

	if config.Adapter == "" {
		errorsList = append(errorsList, fmt.Sprintf("missing required field '%s'", AdapterField))
	}

	if len(config.Statuses) == 0 {
		errorsList = append(errorsList, fmt.Sprintf("missing or empty field '%s'", StatusesField))
	}

	for key, status := range config.Statuses {
		if !record.AllowedStatus(status) {
			errorsList = append(errorsList, fmt.Sprintf("status '%s' mapped from '%s' is not allowed", status, key))
		}
	}

	if len(errorsList) > 0 {
		return errors.New(strings.Join(errorsList, "; "))
	}

	return nil
}

// MergeStatusOverrides flattens mapping configurations into one override map
// per adapter name. Later configurations win on conflicting keys.
func MergeStatusOverrides(configs []*MappingConfig) map[string]map[string]string {
	merged := make(map[string]map[string]string)
	for _, config := range configs {
		overrides, ok := merged[config.Adapter]
		if !ok {
			overrides = make(map[string]string)
			merged[config.Adapter] = overrides
		}

		for key, status := range config.Statuses {
			overrides[key] = status
		}
	}

	return merged
}
