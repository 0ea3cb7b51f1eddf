package pages

import "errors"

var (
	ErrPageIDRequired   = errors.New("pages: page id required")
	ErrPageSlugExists   = errors.New("pages: slug already exists")
	ErrPagePairExists   = errors.New("pages: page already exists for service and city")
	ErrCityRequired     = errors.New("pages: city does not exist")
	ErrServiceRequired  = errors.New("pages: service does not exist")
	ErrNoActiveServices = errors.New("pages: no active services to generate pages for")
)
