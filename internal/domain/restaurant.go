package domain

type Restaurant struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	Contact   *string  `json:"contact,omitempty"`
	Available bool     `json:"available"`
	WaitTime  int      `json:"wait_time"` // last reported wait, display only
}

// Coords returns the restaurant location, or nil when either coordinate is missing.
func (r Restaurant) Coords() *Coords {
	if r.Lat == nil || r.Lon == nil {
		return nil
	}
	return &Coords{Lat: *r.Lat, Lon: *r.Lon}
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewRestaurant is the admin create payload.
type NewRestaurant struct {
	Name    string   `json:"name" validate:"required,max=200"`
	Type    string   `json:"type" validate:"max=100"`
	Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
	Lon     *float64 `json:"lon" validate:"omitempty,longitude"`
	Contact *string  `json:"contact" validate:"omitempty,max=50"`
}

// RestaurantSeed is one entry of the built-in catalog seed list.
type RestaurantSeed struct {
	Name string
	Type string
	Lat  float64
	Lon  float64
}
