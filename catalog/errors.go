package catalog

import "errors"

var (
	ErrServiceTitleRequired = errors.New("catalog: service title is required")
	ErrServiceIDRequired    = errors.New("catalog: service id required")
	ErrServiceSlugInvalid   = errors.New("catalog: service slug contains invalid characters")
	ErrServiceSlugExists    = errors.New("catalog: service slug already exists")

	ErrCityNameRequired  = errors.New("catalog: city name is required")
	ErrCityStateRequired = errors.New("catalog: city state is required")
	ErrCityIDRequired    = errors.New("catalog: city id required")
	ErrCitySlugInvalid   = errors.New("catalog: city slug contains invalid characters")
	ErrCitySlugExists    = errors.New("catalog: city slug already exists")

	ErrTierNameRequired = errors.New("catalog: tier name is required")
)
