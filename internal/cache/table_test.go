// Inflection - Call Volume Seasonality Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/inflection

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/inflection/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

type fakeSource struct {
	calls atomic.Int32
	mu    sync.Mutex
	err   error
}

func (s *fakeSource) FetchCallsTable(ctx context.Context) (*models.CallsTable, error) {
	n := s.calls.Add(1)
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	records := make([]models.CallRecord, n)
	for i := range records {
		records[i] = models.CallRecord{CompanyID: "acme", Year: 2024, Month: 1, Calls: 1}
	}
	return models.NewCallsTable(records, time.Now()), nil
}

func (s *fakeSource) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func TestTableCache_ServesWithinTTL(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	src := &fakeSource{}
	c := New(src, time.Hour, WithClock(clock.Now))
	ctx := context.Background()

	first, err := c.Table(ctx)
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	clock.Advance(59 * time.Minute)
	second, err := c.Table(ctx)
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if first != second {
		t.Error("Table() within TTL returned a different snapshot")
	}
	if got := src.calls.Load(); got != 1 {
		t.Errorf("source calls = %d, want 1", got)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Refreshes != 1 {
		t.Errorf("stats = %+v, want 1 hit, 1 miss, 1 refresh", stats)
	}
	if stats.AgeSeconds != (59 * time.Minute).Seconds() {
		t.Errorf("AgeSeconds = %v, want %v", stats.AgeSeconds, (59 * time.Minute).Seconds())
	}
}

func TestTableCache_RefetchesAtTTL(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	src := &fakeSource{}
	c := New(src, time.Hour, WithClock(clock.Now))
	ctx := context.Background()

	if _, err := c.Table(ctx); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	clock.Advance(time.Hour)
	table, err := c.Table(ctx)
	if err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2 from the second fetch", table.Len())
	}
	if got := src.calls.Load(); got != 2 {
		t.Errorf("source calls = %d, want 2", got)
	}

	// The age timer restarts at the refetch.
	clock.Advance(30 * time.Minute)
	if _, err := c.Table(ctx); err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	if got := src.calls.Load(); got != 2 {
		t.Errorf("source calls = %d after refresh, want 2", got)
	}
}

func TestTableCache_PropagatesErrors(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	src := &fakeSource{}
	c := New(src, time.Hour, WithClock(clock.Now))
	ctx := context.Background()

	if _, err := c.Table(ctx); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	upstream := errors.New("warehouse unavailable")
	src.setErr(upstream)
	clock.Advance(2 * time.Hour)

	table, err := c.Table(ctx)
	if !errors.Is(err, upstream) {
		t.Fatalf("Table() error = %v, want %v", err, upstream)
	}
	if table != nil {
		t.Error("expired snapshot must not be served on failure")
	}

	stats := c.Stats()
	if stats.RefreshErrors != 1 || stats.LastError != upstream.Error() {
		t.Errorf("stats = %+v", stats)
	}

	// Every request retries until the source recovers.
	if _, err := c.Table(ctx); err == nil {
		t.Error("second Table() error = nil, want error")
	}
	src.setErr(nil)
	if _, err := c.Table(ctx); err != nil {
		t.Fatalf("Table() after recovery error = %v", err)
	}
	if got := c.Stats().LastError; got != "" {
		t.Errorf("LastError = %q after recovery, want empty", got)
	}
}

func TestTableCache_FirstFetchFails(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	src.setErr(errors.New("boom"))
	c := New(src, time.Hour)

	if _, err := c.Table(context.Background()); err == nil {
		t.Fatal("Table() error = nil, want error")
	}
	if c.Loaded() {
		t.Error("Loaded() = true after failed first fetch")
	}
	if stats := c.Stats(); stats.Loaded || stats.Rows != 0 || !stats.FetchedAt.IsZero() {
		t.Errorf("stats = %+v, want empty", stats)
	}
}

func TestTableCache_DefaultTTL(t *testing.T) {
	t.Parallel()

	if got := New(&fakeSource{}, 0).TTL(); got != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultTTL)
	}
	if got := New(&fakeSource{}, -time.Second).TTL(); got != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultTTL)
	}
}

func TestTableCache_ConcurrentReaders(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	c := New(src, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Table(context.Background()); err != nil {
				t.Errorf("Table() error = %v", err)
			}
		}()
	}
	wg.Wait()

	stats := c.Stats()
	if stats.Hits+stats.Misses != 32 {
		t.Errorf("hits+misses = %d, want 32", stats.Hits+stats.Misses)
	}
	if int64(src.calls.Load()) != stats.Misses {
		t.Errorf("source calls = %d, misses = %d", src.calls.Load(), stats.Misses)
	}
}
