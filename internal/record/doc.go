// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package record defines the YamTrack import schema and the validation rules
// that every mapped row must satisfy before it is written to a destination.
package record
