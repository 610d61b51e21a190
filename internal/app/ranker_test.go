package app_test

import (
	"errors"
	"math"
	"testing"

	"foodi/internal/app"
	"foodi/internal/domain"
)

func TestHaversine_KnownPair(t *testing.T) {
	// נאיה -> מינאטו, about 2.66 km apart
	d := app.Haversine(31.772836, 35.192510, 31.780541, 35.219102)
	if math.Abs(d-2.656) > 0.02 {
		t.Fatalf("unexpected distance %.4f km", d)
	}
}

func TestHaversine_SelfAndSymmetry(t *testing.T) {
	pts := [][2]float64{{31.772836, 35.192510}, {31.780541, 35.219102}, {-33.8688, 151.2093}, {51.5074, -0.1278}}
	for _, a := range pts {
		if d := app.Haversine(a[0], a[1], a[0], a[1]); d != 0 {
			t.Fatalf("distance to self should be 0, got %v", d)
		}
		for _, b := range pts {
			ab := app.Haversine(a[0], a[1], b[0], b[1])
			ba := app.Haversine(b[0], b[1], a[0], a[1])
			if math.Abs(ab-ba) > 1e-9 {
				t.Fatalf("not symmetric: %v vs %v", ab, ba)
			}
		}
	}
	// antipodal points stay finite
	if d := app.Haversine(0, 0, 0, 180); math.Abs(d-math.Pi*6371.0) > 1e-6 {
		t.Fatalf("antipodal distance %v", d)
	}
}

func newRanker(t *testing.T) *app.Ranker {
	t.Helper()
	return app.NewRanker(app.NewPredictor(loadedStore(t), app.DefaultPredictorConfig()))
}

func TestRank_MissingLocation(t *testing.T) {
	r := newRanker(t)
	rs := []domain.Restaurant{rest(1, "a", "", ptr(31.7), ptr(35.2))}

	for _, q := range []*domain.Coords{nil, {Lat: math.NaN(), Lon: 35}, {Lat: 31, Lon: math.Inf(1)}} {
		out, err := r.Rank(q, "", rs, t0)
		if !errors.Is(err, domain.ErrLocationUnavailable) || out != nil {
			t.Fatalf("q=%v: expected ErrLocationUnavailable, got %v %v", q, out, err)
		}
	}
}

func TestRank_ExcludesMissingCoordinates(t *testing.T) {
	rs := []domain.Restaurant{
		rest(1, "no lat", "", nil, ptr(35.2)),
		rest(2, "no lon", "", ptr(31.7), nil),
		rest(3, "none", "", nil, nil),
		rest(4, "ok", "", ptr(31.78), ptr(35.21)),
	}
	out, err := newRanker(t).Rank(&domain.Coords{Lat: 31.77, Lon: 35.2}, "", rs, t0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(out) != 1 || out[0].RestaurantID != 4 || out[0].Lat != 31.78 || out[0].Lon != 35.21 {
		t.Fatalf("unexpected results: %+v", out)
	}
}

func TestRank_SortedWithStableTies(t *testing.T) {
	q := &domain.Coords{Lat: 31.7728, Lon: 35.2}
	rs := []domain.Restaurant{
		rest(1, "far", "", ptr(31.80), ptr(35.25)),
		rest(2, "tie-a", "", ptr(31.78), ptr(35.21)),
		rest(3, "near", "", ptr(31.7729), ptr(35.2001)),
		rest(4, "tie-b", "", ptr(31.78), ptr(35.21)),
		rest(5, "tie-c", "", ptr(31.78), ptr(35.21)),
	}
	out, err := newRanker(t).Rank(q, "", rs, t0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	got := make([]int64, len(out))
	for i, r := range out {
		got[i] = r.RestaurantID
	}
	want := []int64{3, 2, 4, 5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].DistanceKm > out[i].DistanceKm {
			t.Fatalf("not ascending: %+v", out)
		}
	}
}

func TestRank_DistanceRoundedToTwoDecimals(t *testing.T) {
	rs := []domain.Restaurant{rest(2, "מינאטו", "אסייתי", ptr(31.780541), ptr(35.219102))}
	out, err := newRanker(t).Rank(&domain.Coords{Lat: 31.772836, Lon: 35.192510}, "", rs, t0)
	if err != nil || len(out) != 1 {
		t.Fatalf("rank: %v %v", out, err)
	}
	if out[0].DistanceKm != 2.66 {
		t.Fatalf("expected 2.66 km, got %v", out[0].DistanceKm)
	}
	if !out[0].IsDefault || out[0].PredictedWait != app.DefaultWait {
		t.Fatalf("expected default prediction, got %+v", out[0].Prediction)
	}
}

func TestRank_CuisineSynonymsFilterAlike(t *testing.T) {
	q := &domain.Coords{Lat: 31.777, Lon: 35.214}
	rs := []domain.Restaurant{
		rest(1, "אגאדיר", "המבורגר", ptr(31.777420), ptr(35.219870)),
		rest(2, "בורגר רום", "בורגר", ptr(31.777114), ptr(35.213114)),
		rest(3, "מחניודה", "בשרים", ptr(31.785720), ptr(35.212320)),
		rest(4, "בלי סוג", "", ptr(31.777), ptr(35.214)),
	}
	r := newRanker(t)

	a, err := r.Rank(q, "בורגר", rs, t0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	b, err := r.Rank(q, " המבורגר ", rs, t0)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("expected 2 burger places, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].RestaurantID != b[i].RestaurantID {
			t.Fatalf("synonym filters differ: %+v vs %+v", a, b)
		}
	}

	all, _ := r.Rank(q, "", rs, t0)
	if len(all) != 4 {
		t.Fatalf("empty filter should keep everything, got %d", len(all))
	}
	none, err := r.Rank(q, "סושי", rs, t0)
	if err != nil || len(none) != 0 {
		t.Fatalf("unknown cuisine: %v %v", none, err)
	}
}
