package schedule

import "time"

type RegionOverrideDB struct {
	ID        int64
	Date      time.Time
	Region    string
	VehicleID int64
	CreatedBy string
	Notes     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
