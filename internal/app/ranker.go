package app

import (
	"math"
	"sort"
	"time"

	"foodi/internal/domain"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in km between two points given
// in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	sLat, sLon := math.Sin(dLat/2), math.Sin(dLon/2)
	a := sLat*sLat + math.Cos(radians(lat1))*math.Cos(radians(lat2))*sLon*sLon
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(math.Min(a, 1)))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Ranker orders restaurants by distance from a query point.
type Ranker struct {
	pred *Predictor
}

func NewRanker(p *Predictor) *Ranker { return &Ranker{pred: p} }

// Rank returns restaurants nearest first, each with its prediction bundle.
// Restaurants without both coordinates are left out. A non-empty cuisine
// keeps only restaurants of the same canonical type. Equal distances keep
// input order. A nil or non-finite query yields ErrLocationUnavailable.
func (k *Ranker) Rank(q *domain.Coords, cuisine string, restaurants []domain.Restaurant, now time.Time) ([]domain.RankedResult, error) {
	if !validCoords(q) {
		return nil, domain.ErrLocationUnavailable
	}
	want := domain.NormalizeType(cuisine)

	out := make([]domain.RankedResult, 0, len(restaurants))
	for _, r := range restaurants {
		c := r.Coords()
		if c == nil {
			continue
		}
		if want != "" && domain.NormalizeType(r.Type) != want {
			continue
		}
		d := Haversine(q.Lat, q.Lon, c.Lat, c.Lon)
		out = append(out, domain.RankedResult{
			Prediction: k.pred.Bundle(r, now),
			DistanceKm: round(d, 2),
			Lat:        c.Lat,
			Lon:        c.Lon,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}

func validCoords(q *domain.Coords) bool {
	if q == nil {
		return false
	}
	for _, v := range []float64{q.Lat, q.Lon} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
