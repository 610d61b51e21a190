package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"foodi/internal/adapters/observability"
	"foodi/internal/domain"
)

// zone-less layouts are what the legacy reports.json writer produced (naive UTC)
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseReportTime parses an ISO-8601 report timestamp. Values without a zone
// are taken as UTC.
func ParseReportTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, s)
}

// ReportAnomaly records a persisted report that could not be loaded.
type ReportAnomaly struct {
	Record domain.ReportRecord
	Err    error
}

// ReportStore is the append-only set of wait reports. Appends are serialized
// so IDs are never reused; reads may run concurrently with each other.
type ReportStore struct {
	mu        sync.RWMutex
	reports   []domain.Report
	byRest    map[int64][]int // restaurant id -> indexes into reports
	nextID    int64
	anomalies []ReportAnomaly

	persist domain.ReportPersistence
	now     func() time.Time
}

func NewReportStore(p domain.ReportPersistence) *ReportStore {
	return &ReportStore{
		byRest:  make(map[int64][]int),
		nextID:  1,
		persist: p,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the store clock (tests).
func (s *ReportStore) WithClock(now func() time.Time) *ReportStore {
	s.now = now
	return s
}

// Load replaces the store contents with what persistence holds. A record
// with an unparseable timestamp is skipped and kept as an anomaly; it never
// fails the whole load.
func (s *ReportStore) Load(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	recs, err := s.persist.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = make([]domain.Report, 0, len(recs))
	s.byRest = make(map[int64][]int)
	s.anomalies = nil
	var maxID int64
	for _, rec := range recs {
		if rec.ID > maxID {
			maxID = rec.ID
		}
		ts, err := ParseReportTime(rec.CreatedAt)
		if err != nil {
			s.anomalies = append(s.anomalies, ReportAnomaly{Record: rec, Err: err})
			observability.ObserveReportAnomaly("timestamp")
			log.Warn().
				Err(err).
				Int64("report_id", rec.ID).
				Int64("restaurant_id", rec.RestaurantID).
				Msg("skipping report with malformed timestamp")
			continue
		}
		s.add(domain.Report{
			ID:           rec.ID,
			RestaurantID: rec.RestaurantID,
			WaitMinutes:  rec.WaitMinutes,
			CreatedAt:    ts,
		})
	}

	// next id is count+1, pushed past any id already on disk
	s.nextID = int64(len(recs)) + 1
	if maxID >= s.nextID {
		s.nextID = maxID + 1
	}
	log.Info().Int("loaded", len(s.reports)).Int("skipped", len(s.anomalies)).Msg("report store loaded")
	return nil
}

// Append stores a new report for restaurantID. The report becomes visible
// only after persistence accepted it.
func (s *ReportStore) Append(ctx context.Context, restaurantID int64, waitMinutes int) (domain.Report, error) {
	if waitMinutes < 0 {
		return domain.Report{}, fmt.Errorf("wait minutes must be non-negative, got %d", waitMinutes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rep := domain.Report{
		ID:           s.nextID,
		RestaurantID: restaurantID,
		WaitMinutes:  waitMinutes,
		CreatedAt:    s.now().UTC(),
	}
	if s.persist != nil {
		if err := s.persist.Append(ctx, rep.Record()); err != nil {
			return domain.Report{}, fmt.Errorf("persist report: %w", err)
		}
	}
	s.add(rep)
	s.nextID++
	observability.ObserveReportAppended()
	return rep, nil
}

// caller holds the write lock
func (s *ReportStore) add(r domain.Report) {
	s.reports = append(s.reports, r)
	s.byRest[r.RestaurantID] = append(s.byRest[r.RestaurantID], len(s.reports)-1)
}

// RecentFor returns the restaurant's reports created within window of now.
// Order is not guaranteed.
func (s *ReportStore) RecentFor(restaurantID int64, window time.Duration) []domain.Report {
	return s.RecentAt(restaurantID, window, s.now())
}

// RecentAt is RecentFor against an explicit clock.
func (s *ReportStore) RecentAt(restaurantID int64, window time.Duration, now time.Time) []domain.Report {
	cutoff := now.Add(-window)

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.byRest[restaurantID]
	out := make([]domain.Report, 0, len(idx))
	for _, i := range idx {
		if r := s.reports[i]; !r.CreatedAt.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// Len is the number of loaded reports.
func (s *ReportStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// Anomalies returns the records skipped by the last Load.
func (s *ReportStore) Anomalies() []ReportAnomaly {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ReportAnomaly, len(s.anomalies))
	copy(out, s.anomalies)
	return out
}
