// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package pipeline provides the core building blocks to run a conversion.
// A pipeline is composed of a row source, an adapter and a destination.
package pipeline
