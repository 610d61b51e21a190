package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"foodi/internal/app"
	"foodi/internal/domain"
)

func TestParseReportTime(t *testing.T) {
	cases := map[string]time.Time{
		"2024-05-01T12:00:00Z":             t0,
		"2024-05-01T14:00:00+02:00":        t0,
		"2024-05-01T12:00:00":              t0,
		"2024-05-01T12:00:00.250000":       t0.Add(250 * time.Millisecond),
		"2024-05-01 12:00:00":              t0,
		" 2024-05-01T12:00:00.000000001Z ": t0.Add(time.Nanosecond),
	}
	for in, want := range cases {
		got, err := app.ParseReportTime(in)
		if err != nil {
			t.Errorf("ParseReportTime(%q): %v", in, err)
			continue
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Errorf("ParseReportTime(%q) = %v, want %v UTC", in, got, want)
		}
	}
	for _, bad := range []string{"", "yesterday", "2024-13-01T00:00:00Z", "1714564800"} {
		if _, err := app.ParseReportTime(bad); !errors.Is(err, domain.ErrInvalidTimestamp) {
			t.Errorf("ParseReportTime(%q): expected ErrInvalidTimestamp, got %v", bad, err)
		}
	}
}

func TestReportStore_AppendAssignsSequentialIDs(t *testing.T) {
	p := &fakePersistence{}
	s := app.NewReportStore(p).WithClock(fixedClock(t0))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		r, err := s.Append(ctx, 7, 10*i)
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		if r.ID != int64(i) || r.RestaurantID != 7 || !r.CreatedAt.Equal(t0) {
			t.Fatalf("unexpected report: %+v", r)
		}
	}
	if len(p.recs) != 3 || p.recs[2].CreatedAt != "2024-05-01T12:00:00Z" {
		t.Fatalf("unexpected persisted records: %+v", p.recs)
	}
}

func TestReportStore_AppendRejectsNegativeWait(t *testing.T) {
	s := app.NewReportStore(&fakePersistence{})
	if _, err := s.Append(context.Background(), 1, -5); err == nil {
		t.Fatalf("expected error for negative wait")
	}
	if s.Len() != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestReportStore_PersistFailureLeavesStoreUnchanged(t *testing.T) {
	p := &fakePersistence{failErr: errors.New("disk full")}
	s := app.NewReportStore(p).WithClock(fixedClock(t0))
	ctx := context.Background()

	if _, err := s.Append(ctx, 1, 10); err == nil {
		t.Fatalf("expected persist error")
	}
	if s.Len() != 0 || len(s.RecentFor(1, time.Hour)) != 0 {
		t.Fatalf("failed append must not be visible")
	}

	p.failErr = nil
	r, err := s.Append(ctx, 1, 10)
	if err != nil || r.ID != 1 {
		t.Fatalf("id must not be consumed by a failed append: %+v err=%v", r, err)
	}
}

func TestReportStore_ConcurrentAppendsUniqueIDs(t *testing.T) {
	s := app.NewReportStore(&fakePersistence{})
	ctx := context.Background()

	const n = 200
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := s.Append(ctx, int64(i%5), i)
			if err != nil {
				t.Errorf("append: %v", err)
				return
			}
			ids <- r.ID
		}(i)
	}
	// concurrent readers are allowed alongside writers
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.RecentFor(1, time.Hour)
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n || s.Len() != n {
		t.Fatalf("expected %d reports, got ids=%d len=%d", n, len(seen), s.Len())
	}
	for i := int64(1); i <= n; i++ {
		if !seen[i] {
			t.Fatalf("missing id %d", i)
		}
	}
}

func TestReportStore_RecentForWindow(t *testing.T) {
	p := &fakePersistence{recs: []domain.ReportRecord{
		rec(1, 1, 10, t0.Add(-10*time.Minute)),
		rec(2, 1, 20, t0.Add(-120*time.Minute)), // exactly on the boundary: kept
		rec(3, 1, 30, t0.Add(-121*time.Minute)),
		rec(4, 2, 40, t0.Add(-5*time.Minute)),
		rec(5, 1, 50, t0.Add(3*time.Minute)), // clock skew, still eligible
	}}
	s := app.NewReportStore(p).WithClock(fixedClock(t0))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	got := s.RecentFor(1, app.RecentWindow)
	ids := map[int64]bool{}
	for _, r := range got {
		ids[r.ID] = true
	}
	if len(got) != 3 || !ids[1] || !ids[2] || !ids[5] {
		t.Fatalf("unexpected recent set: %+v", got)
	}
	if n := len(s.RecentFor(3, app.RecentWindow)); n != 0 {
		t.Fatalf("unknown restaurant should have no reports, got %d", n)
	}
}

func TestReportStore_LoadSkipsMalformedTimestamps(t *testing.T) {
	p := &fakePersistence{recs: []domain.ReportRecord{
		rec(1, 1, 10, t0.Add(-5*time.Minute)),
		{ID: 2, RestaurantID: 1, WaitMinutes: 90, CreatedAt: "not-a-time"},
		rec(3, 2, 15, t0.Add(-5*time.Minute)),
	}}
	s := app.NewReportStore(p).WithClock(fixedClock(t0))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("a bad record must not fail the load: %v", err)
	}

	if s.Len() != 2 {
		t.Fatalf("expected 2 good reports, got %d", s.Len())
	}
	an := s.Anomalies()
	if len(an) != 1 || an[0].Record.ID != 2 || !errors.Is(an[0].Err, domain.ErrInvalidTimestamp) {
		t.Fatalf("unexpected anomalies: %+v", an)
	}
	if got := s.RecentFor(1, time.Hour); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("bad record leaked into reads: %+v", got)
	}

	// the skipped record still holds its id
	r, err := s.Append(context.Background(), 1, 5)
	if err != nil || r.ID != 4 {
		t.Fatalf("expected next id 4, got %+v err=%v", r, err)
	}
}

func TestReportStore_LoadContinuesPastHighestID(t *testing.T) {
	p := &fakePersistence{recs: []domain.ReportRecord{
		rec(1, 1, 10, t0),
		rec(9, 1, 10, t0),
	}}
	s := app.NewReportStore(p).WithClock(fixedClock(t0))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	r, err := s.Append(context.Background(), 1, 5)
	if err != nil || r.ID != 10 {
		t.Fatalf("expected id 10, got %+v err=%v", r, err)
	}
}
