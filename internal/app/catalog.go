package app

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"foodi/internal/domain"
)

type CatalogService struct {
	catalog domain.Catalog
	cache   domain.Cache
}

func NewCatalogService(c domain.Catalog, cache domain.Cache) *CatalogService {
	return &CatalogService{catalog: c, cache: cache}
}

// AddRestaurant creates an available restaurant with its type normalized.
func (s *CatalogService) AddRestaurant(ctx context.Context, in domain.NewRestaurant) (domain.Restaurant, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return domain.Restaurant{}, err
	}
	r, err := s.catalog.Create(ctx, domain.Restaurant{
		Name:      in.Name,
		Type:      domain.NormalizeType(in.Type),
		Lat:       in.Lat,
		Lon:       in.Lon,
		Contact:   in.Contact,
		Available: true,
	})
	if err != nil {
		return domain.Restaurant{}, err
	}
	s.invalidate(ctx)
	return r, nil
}

// NormalizeStoredTypes rewrites every stored type that is not in canonical
// form and returns how many rows changed.
func (s *CatalogService) NormalizeStoredTypes(ctx context.Context) (int, error) {
	rs, err := s.catalog.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	changed := 0
	for _, r := range rs {
		norm := domain.NormalizeType(r.Type)
		if norm == r.Type {
			continue
		}
		if err := s.catalog.UpdateType(ctx, r.ID, norm); err != nil {
			return changed, err
		}
		changed++
	}
	if changed > 0 {
		s.invalidate(ctx)
	}
	log.Info().Int("changed", changed).Msg("normalized stored cuisine types")
	return changed, nil
}

// Seed inserts seeds whose name is not in the catalog yet, using at most
// workers concurrent inserts. It returns the number of inserted rows.
func (s *CatalogService) Seed(ctx context.Context, seeds []domain.RestaurantSeed, workers int) (int, error) {
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg       sync.WaitGroup
		inserted atomic.Int64
		mu       sync.Mutex
		firstErr error
	)

	for _, sd := range seeds {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return int(inserted.Load()), err
		}
		wg.Add(1)
		go func(sd domain.RestaurantSeed) {
			defer wg.Done()
			defer sem.Release(1)

			lat, lon := sd.Lat, sd.Lon
			ok, err := s.catalog.InsertIfAbsent(ctx, domain.Restaurant{
				Name:      sd.Name,
				Type:      domain.NormalizeType(sd.Type),
				Lat:       &lat,
				Lon:       &lon,
				Available: true,
			})
			if err != nil {
				log.Warn().Str("name", sd.Name).Err(err).Msg("seed insert failed")
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			if ok {
				inserted.Add(1)
			}
		}(sd)
	}
	wg.Wait()

	if inserted.Load() > 0 {
		s.invalidate(ctx)
	}
	return int(inserted.Load()), firstErr
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, availableKey)
	}
}
