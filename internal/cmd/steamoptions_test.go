// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yamtrack-tools/yamport/internal/config"
)

func TestSteamEnrichValidate(t *testing.T) {
	t.Parallel()

	libraryPath := filepath.Join(t.TempDir(), "library.csv")
	require.NoError(t, os.WriteFile(libraryPath, []byte("appid,name\n10,Counter-Strike\n"), 0o600))

	testCases := map[string]struct {
		options       *steamEnrichOptions
		expectedError error
	}{
		"valid options": {
			options: &steamEnrichOptions{inputPath: libraryPath},
		},
		"missing input path": {
			options:       &steamEnrichOptions{},
			expectedError: errNoInput,
		},
		"non existent input file": {
			options:       &steamEnrichOptions{inputPath: filepath.Join("testdata", "missing.csv")},
			expectedError: os.ErrNotExist,
		},
	}

	for testName, test := range testCases {
		test := test
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			err := test.options.validate()
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSteamExecuteMissingCredentials(t *testing.T) {
	libraryPath := filepath.Join(t.TempDir(), "library.csv")
	require.NoError(t, os.WriteFile(libraryPath, []byte("appid,name\n10,Counter-Strike\n"), 0o600))

	t.Run("export without steam credentials", func(t *testing.T) {
		opts := &steamExportOptions{outputPath: filepath.Join(t.TempDir(), "out.csv")}
		err := opts.execute(testContext(t))
		assert.ErrorIs(t, err, config.ErrEnvVariablesNotValid)
		assert.ErrorContains(t, err, "STEAM_API_KEY")
	})

	t.Run("enrich without twitch credentials", func(t *testing.T) {
		opts := &steamEnrichOptions{inputPath: libraryPath}
		err := opts.execute(testContext(t))
		assert.ErrorIs(t, err, config.ErrEnvVariablesNotValid)
		assert.ErrorContains(t, err, "TWITCH_CLIENT_ID")
	})
}

func TestWriteLibrary(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "library.csv")
	rows := []map[string]string{
		{"appid": "10", "name": "Counter-Strike", "igdb_id": "241"},
	}

	require.NoError(t, writeLibrary(path, []string{"appid", "name", "igdb_id"}, rows))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "appid,name,igdb_id\n10,Counter-Strike,241\n", string(content))
}
