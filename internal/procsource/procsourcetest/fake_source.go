// Package procsourcetest provides a fake ProcessSource for unit tests.
// The fake replays scripted snapshots so the refresh loop and ranking
// can be exercised without touching the real process table.
package procsourcetest

import (
	"context"
	"sync"

	"github.com/procpeek/proc-peek/internal/errors"
	"github.com/procpeek/proc-peek/internal/procsource"
)

// FakeSource implements procsource.ProcessSource with scripted data.
type FakeSource struct {
	mu sync.Mutex

	// Snapshots are returned in order; the last one repeats once the
	// script is exhausted.
	Snapshots []*procsource.Snapshot

	// SnapshotErr, when set, is returned by every Snapshot call.
	SnapshotErr error

	// Details maps PID to the detail returned for it. Missing PIDs
	// produce a SAMPLE-coded error, matching the real source.
	Details map[int32]*procsource.Detail

	// OverviewData is returned by Overview; nil yields a zero overview.
	OverviewData *procsource.Overview

	// SnapshotCalls counts Snapshot invocations.
	SnapshotCalls int

	next int
}

// NewFakeSource creates a fake that replays the given snapshots.
func NewFakeSource(snapshots ...*procsource.Snapshot) *FakeSource {
	return &FakeSource{
		Snapshots: snapshots,
		Details:   make(map[int32]*procsource.Detail),
	}
}

// Snapshot returns the next scripted snapshot.
func (f *FakeSource) Snapshot(ctx context.Context) (*procsource.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.SnapshotCalls++

	if f.SnapshotErr != nil {
		return nil, f.SnapshotErr
	}
	if len(f.Snapshots) == 0 {
		return &procsource.Snapshot{}, nil
	}

	snap := f.Snapshots[f.next]
	if f.next < len(f.Snapshots)-1 {
		f.next++
	}
	return snap, nil
}

// Detail returns the scripted detail for pid.
func (f *FakeSource) Detail(ctx context.Context, pid int32) (*procsource.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if d, ok := f.Details[pid]; ok {
		return d, nil
	}
	return nil, errors.New(errors.ErrSample,
		"Process no longer exists",
		"It may have exited since the last refresh")
}

// Overview returns the scripted overview.
func (f *FakeSource) Overview(ctx context.Context) (*procsource.Overview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.OverviewData != nil {
		return f.OverviewData, nil
	}
	return &procsource.Overview{}, nil
}
