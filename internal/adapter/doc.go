// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package adapter defines the contract implemented by the per tracker mapping
// modules. An adapter translates the rows of one export schema into records of
// the YamTrack import schema.
package adapter
