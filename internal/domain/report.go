package domain

import "time"

type Report struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurant_id"`
	WaitMinutes  int       `json:"wait_minutes"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportRecord is the persisted shape of a report. CreatedAt stays an
// ISO-8601 string so that a bad value surfaces when the store is loaded.
type ReportRecord struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurant_id"`
	WaitMinutes  int    `json:"wait_minutes"`
	CreatedAt    string `json:"created_at"`
}

// Record converts a report to its persisted form.
func (r Report) Record() ReportRecord {
	return ReportRecord{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		WaitMinutes:  r.WaitMinutes,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// SubmitReport is a user wait-time report. RestaurantID wins over RestaurantName.
type SubmitReport struct {
	RestaurantID   *int64 `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name" validate:"max=200"`
	WaitMinutes    *int   `json:"wait_minutes" validate:"required,gte=0"`
}

type SubmitResult struct {
	Report     Report     `json:"report"`
	Restaurant Restaurant `json:"restaurant"`
	Created    bool       `json:"restaurant_created"`
}

// Prediction is the per-restaurant predicted wait bundle. It is derived per
// query and never stored.
type Prediction struct {
	RestaurantID  int64   `json:"restaurant_id"`
	Name          string  `json:"name"`
	PredictedWait float64 `json:"predicted_wait"`
	ReportsUsed   int     `json:"n_reports_used"`
	IsDefault     bool    `json:"is_default"`
}

type RankedResult struct {
	Prediction
	DistanceKm float64 `json:"distance_km"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// NearbyView is what the nearby search hands to the presentation layer.
// LocationUnavailable is set when the caller gave no usable location, which
// is a different state from an empty Results slice.
type NearbyView struct {
	Results             []RankedResult `json:"results"`
	LocationUnavailable bool           `json:"location_unavailable"`
	Error               string         `json:"error,omitempty"`
}
