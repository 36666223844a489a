// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package cmd contains the cli subcommands of yamport and the wiring between
// sources, adapters and destinations.
package cmd
