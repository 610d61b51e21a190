package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrRestaurantRequired  = errors.New("no restaurant selected")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrInvalidTimestamp    = errors.New("invalid report timestamp")
	ErrDuplicateName       = errors.New("restaurant name already exists")
)
