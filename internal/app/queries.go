package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"foodi/internal/domain"
)

const availableKey = "restaurants:available"

type QueryService struct {
	catalog  domain.Catalog
	cache    domain.Cache
	cacheTTL time.Duration
	pred     *Predictor
	ranker   *Ranker
	now      func() time.Time
}

func NewQueryService(c domain.Catalog, cache domain.Cache, ttl time.Duration, p *Predictor) *QueryService {
	return &QueryService{
		catalog:  c,
		cache:    cache,
		cacheTTL: ttl,
		pred:     p,
		ranker:   NewRanker(p),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the query clock (tests).
func (s *QueryService) WithClock(now func() time.Time) *QueryService {
	s.now = now
	return s
}

// Restaurants lists available restaurants, served from cache when possible.
func (s *QueryService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, availableKey, &out); ok {
			return out, nil
		}
	}
	rs, err := s.catalog.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	// copy so later repo mutations never leak into the cached value
	out = make([]domain.Restaurant, len(rs))
	copy(out, rs)
	if s.cache != nil {
		if err := s.cache.Set(ctx, availableKey, out, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Str("key", availableKey).Msg("cache set failed")
		}
	}
	return out, nil
}

// AllWithPredictions pairs every available restaurant with its predicted
// wait, in catalog order.
func (s *QueryService) AllWithPredictions(ctx context.Context) ([]domain.Prediction, error) {
	rs, err := s.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]domain.Prediction, 0, len(rs))
	for _, r := range rs {
		out = append(out, s.pred.Bundle(r, now))
	}
	return out, nil
}

// FindNearby ranks available restaurants around q. A missing location is not
// an error: the view comes back empty with LocationUnavailable set.
func (s *QueryService) FindNearby(ctx context.Context, q *domain.Coords, cuisine string) (domain.NearbyView, error) {
	if !validCoords(q) {
		return unavailableView(), nil
	}
	rs, err := s.Restaurants(ctx)
	if err != nil {
		return domain.NearbyView{}, err
	}
	ranked, err := s.ranker.Rank(q, cuisine, rs, s.now())
	if errors.Is(err, domain.ErrLocationUnavailable) {
		return unavailableView(), nil
	}
	if err != nil {
		return domain.NearbyView{}, err
	}
	return domain.NearbyView{Results: ranked}, nil
}

func unavailableView() domain.NearbyView {
	return domain.NearbyView{
		Results:             []domain.RankedResult{},
		LocationUnavailable: true,
		Error:               "no location received; share your location and try again",
	}
}

// InvalidateRestaurants drops the cached catalog listing.
func (s *QueryService) InvalidateRestaurants(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, availableKey); err != nil {
		log.Warn().Err(err).Str("key", availableKey).Msg("cache invalidate failed")
	}
}
