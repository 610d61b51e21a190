package domain

import "context"

type Catalog interface {
	// Read paths
	ListAvailable(ctx context.Context) ([]Restaurant, error)
	ListAll(ctx context.Context) ([]Restaurant, error)
	GetByID(ctx context.Context, id int64) (Restaurant, error)
	FindByName(ctx context.Context, name string) (Restaurant, error) // case-insensitive

	// Write paths
	Create(ctx context.Context, r Restaurant) (Restaurant, error)
	InsertIfAbsent(ctx context.Context, r Restaurant) (bool, error)
	UpdateWaitTime(ctx context.Context, id int64, minutes int) error
	UpdateType(ctx context.Context, id int64, typ string) error
}

// ReportPersistence backs the in-memory report store.
type ReportPersistence interface {
	LoadAll(ctx context.Context) ([]ReportRecord, error)
	SaveAll(ctx context.Context, rs []ReportRecord) error
	Append(ctx context.Context, r ReportRecord) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
