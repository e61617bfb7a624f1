package schedule

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRegion         = errors.New("invalid region")
	ErrInvalidDate           = errors.New("invalid date")
	ErrInvalidVehicleID      = errors.New("invalid vehicle id")

	// ErrRegionNotServed — штатный исход, а не авария: у вызывающего
	// всегда должен быть свой fallback (балансировка в autoassign).
	ErrRegionNotServed = errors.New("region is not served by any vehicle")

	ErrOverrideNotFound = errors.New("region override not found")
	ErrStandingNotFound = errors.New("standing schedule entry not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrConflict         = errors.New("region override conflict")
)
