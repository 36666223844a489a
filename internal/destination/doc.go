// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package destination defines the primitives used to implement yamport output
// destinations. It standardizes the write and lifecycle handling so every
// conversion run can share the same contract.
package destination
