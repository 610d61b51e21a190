package app

import (
	"math"
	"time"

	"foodi/internal/adapters/observability"
	"foodi/internal/domain"
)

const (
	RecentWindow = 120 * time.Minute
	HalfLife     = 30 * time.Minute
	DefaultWait  = 25.0
)

type PredictorConfig struct {
	Window      time.Duration // report eligibility window
	HalfLife    time.Duration // a report's weight halves every HalfLife of age
	DefaultWait float64       // returned when no report is eligible
}

func DefaultPredictorConfig() PredictorConfig {
	return PredictorConfig{Window: RecentWindow, HalfLife: HalfLife, DefaultWait: DefaultWait}
}

// Predictor blends a restaurant's recent reports into one expected wait,
// weighting each report by exp(-lambda * age).
type Predictor struct {
	reports *ReportStore
	cfg     PredictorConfig
	lambda  float64 // per minute
}

func NewPredictor(rs *ReportStore, cfg PredictorConfig) *Predictor {
	def := DefaultPredictorConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.HalfLife <= 0 {
		cfg.HalfLife = def.HalfLife
	}
	return &Predictor{
		reports: rs,
		cfg:     cfg,
		lambda:  math.Ln2 / cfg.HalfLife.Minutes(),
	}
}

// Predict returns the predicted wait in minutes (one decimal) and the number
// of reports behind it. Zero samples means the value is the configured
// default, not a model output.
func (p *Predictor) Predict(restaurantID int64, now time.Time) (float64, int) {
	recents := p.reports.RecentAt(restaurantID, p.cfg.Window, now)
	if len(recents) == 0 {
		observability.ObservePrediction("default")
		return p.cfg.DefaultWait, 0
	}

	var sumW, sumWM, sumM float64
	for _, r := range recents {
		age := now.Sub(r.CreatedAt).Minutes()
		if age < 0 {
			age = 0 // future timestamp; treat as fresh
		}
		w := math.Exp(-p.lambda * age)
		sumW += w
		sumWM += w * float64(r.WaitMinutes)
		sumM += float64(r.WaitMinutes)
	}

	var pred float64
	if sumW > 0 {
		pred = sumWM / sumW
	} else {
		// every weight underflowed; fall back to the plain mean
		pred = sumM / float64(len(recents))
	}
	observability.ObservePrediction("reports")
	return round(pred, 1), len(recents)
}

// Bundle builds the prediction bundle for r.
func (p *Predictor) Bundle(r domain.Restaurant, now time.Time) domain.Prediction {
	pred, n := p.Predict(r.ID, now)
	return domain.Prediction{
		RestaurantID:  r.ID,
		Name:          r.Name,
		PredictedWait: pred,
		ReportsUsed:   n,
		IsDefault:     n == 0,
	}
}

func round(x float64, places int) float64 {
	f := math.Pow(10, float64(places))
	return math.Round(x*f) / f
}
