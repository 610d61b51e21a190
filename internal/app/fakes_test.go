package app_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"foodi/internal/domain"
)

// ---- fakes ----

type fakeCatalog struct {
	mu       sync.Mutex
	rs       []domain.Restaurant
	lists    int
	failList error
}

func (f *fakeCatalog) ListAvailable(ctx context.Context) ([]domain.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.failList != nil {
		return nil, f.failList
	}
	var out []domain.Restaurant
	for _, r := range f.rs {
		if r.Available {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListAll(ctx context.Context) ([]domain.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Restaurant(nil), f.rs...), nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id int64) (domain.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rs {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Restaurant{}, domain.ErrNotFound
}

func (f *fakeCatalog) FindByName(ctx context.Context, name string) (domain.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rs {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return domain.Restaurant{}, domain.ErrNotFound
}

func (f *fakeCatalog) Create(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, x := range f.rs {
		if strings.EqualFold(x.Name, r.Name) {
			return domain.Restaurant{}, domain.ErrDuplicateName
		}
	}
	r.ID = int64(len(f.rs) + 1)
	f.rs = append(f.rs, r)
	return r, nil
}

func (f *fakeCatalog) InsertIfAbsent(ctx context.Context, r domain.Restaurant) (bool, error) {
	_, err := f.Create(ctx, r)
	if errors.Is(err, domain.ErrDuplicateName) {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeCatalog) UpdateWaitTime(ctx context.Context, id int64, minutes int) error {
	return f.mutate(id, func(r *domain.Restaurant) { r.WaitTime = minutes })
}

func (f *fakeCatalog) UpdateType(ctx context.Context, id int64, typ string) error {
	return f.mutate(id, func(r *domain.Restaurant) { r.Type = typ })
}

func (f *fakeCatalog) mutate(id int64, fn func(*domain.Restaurant)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rs {
		if f.rs[i].ID == id {
			fn(&f.rs[i])
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.Restaurant:
		*d = v.([]domain.Restaurant)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

type fakePersistence struct {
	mu      sync.Mutex
	recs    []domain.ReportRecord
	failErr error
}

func (p *fakePersistence) LoadAll(ctx context.Context) ([]domain.ReportRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ReportRecord(nil), p.recs...), nil
}

func (p *fakePersistence) SaveAll(ctx context.Context, rs []domain.ReportRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.recs = append([]domain.ReportRecord(nil), rs...)
	return nil
}

func (p *fakePersistence) Append(ctx context.Context, r domain.ReportRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failErr != nil {
		return p.failErr
	}
	p.recs = append(p.recs, r)
	return nil
}

// ---- helpers ----

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func ptr[T any](v T) *T { return &v }

func rest(id int64, name, typ string, lat, lon *float64) domain.Restaurant {
	return domain.Restaurant{ID: id, Name: name, Type: typ, Lat: lat, Lon: lon, Available: true}
}

func rec(id, restID int64, wait int, at time.Time) domain.ReportRecord {
	return domain.ReportRecord{ID: id, RestaurantID: restID, WaitMinutes: wait, CreatedAt: at.Format(time.RFC3339Nano)}
}
