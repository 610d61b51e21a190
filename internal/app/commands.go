package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"foodi/internal/domain"
)

type ReportService struct {
	catalog domain.Catalog
	reports *ReportStore
	cache   domain.Cache
}

func NewReportService(c domain.Catalog, rs *ReportStore, cache domain.Cache) *ReportService {
	return &ReportService{catalog: c, reports: rs, cache: cache}
}

// Submit records a wait report. The restaurant is resolved by id, then by
// case-insensitive name, and finally created from the name when nothing
// matches.
func (s *ReportService) Submit(ctx context.Context, in domain.SubmitReport) (domain.SubmitResult, error) {
	in.RestaurantName = strings.TrimSpace(in.RestaurantName)
	if err := validateStruct(in); err != nil {
		return domain.SubmitResult{}, err
	}
	wait := *in.WaitMinutes

	rest, created, err := s.resolve(ctx, in, wait)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	rep, err := s.reports.Append(ctx, rest.ID, wait)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	// display cache only; predictions always come from the report store
	if err := s.catalog.UpdateWaitTime(ctx, rest.ID, wait); err != nil {
		log.Warn().Err(err).Int64("restaurant_id", rest.ID).Msg("update cached wait time failed")
	} else {
		rest.WaitTime = wait
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, availableKey)
	}

	log.Info().
		Int64("report_id", rep.ID).
		Int64("restaurant_id", rest.ID).
		Int("wait_minutes", wait).
		Bool("restaurant_created", created).
		Msg("report accepted")
	return domain.SubmitResult{Report: rep, Restaurant: rest, Created: created}, nil
}

func (s *ReportService) resolve(ctx context.Context, in domain.SubmitReport, wait int) (domain.Restaurant, bool, error) {
	switch {
	case in.RestaurantID != nil:
		r, err := s.catalog.GetByID(ctx, *in.RestaurantID)
		if err != nil {
			return domain.Restaurant{}, false, fmt.Errorf("restaurant %d: %w", *in.RestaurantID, err)
		}
		return r, false, nil

	case in.RestaurantName != "":
		r, err := s.catalog.FindByName(ctx, in.RestaurantName)
		if err == nil {
			return r, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Restaurant{}, false, err
		}
		// unknown name: the catalog gets a new, available entry
		r, err = s.catalog.Create(ctx, domain.Restaurant{
			Name:      in.RestaurantName,
			Available: true,
			WaitTime:  wait,
		})
		if err != nil {
			return domain.Restaurant{}, false, fmt.Errorf("create restaurant %q: %w", in.RestaurantName, err)
		}
		return r, true, nil

	default:
		return domain.Restaurant{}, false, domain.ErrRestaurantRequired
	}
}
