// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package source defines the contracts used to implement yamport export readers.
// Readers stream the rows found in a tracker export file through a shared interface.
package source
