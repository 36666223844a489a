// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package fake

import (
	"context"
	"testing"

	"github.com/yamtrack-tools/yamport/internal/destination"
	"github.com/yamtrack-tools/yamport/internal/record"
)

var _ destination.Writer = &FakeDestination{}

type FakeDestination struct {
	tb testing.TB

	Records    []record.Record
	Closed     bool
	ForceError error
}

func NewFakeDestination(tb testing.TB) *FakeDestination {
	tb.Helper()
	return &FakeDestination{tb: tb}
}

func (f *FakeDestination) WriteRecord(_ context.Context, rec record.Record) error {
	f.tb.Helper()
	if f.ForceError != nil {
		return f.ForceError
	}

	f.Records = append(f.Records, rec)
	return nil
}

func (f *FakeDestination) Close() error {
	f.tb.Helper()
	f.Closed = true
	return nil
}
