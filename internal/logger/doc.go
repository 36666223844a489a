// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package logger wraps the underlying logging stack behind a consistent interface.
// It centralizes configuration and makes loggers available through context helpers.
package logger
