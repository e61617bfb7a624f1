package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidExternalID     = errors.New("invalid external order id")
	ErrInvalidRegion         = errors.New("invalid region")
	ErrInvalidDeliveryDate   = errors.New("invalid delivery date")

	ErrOrderNotFound = errors.New("order not found")
)
