package vehicle

import "time"

type VehicleDB struct {
	ID          int64
	Name        string
	Capacity    int
	IsActive    bool
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type AssignableVehicleDB struct {
	VehicleDB
	PrimaryDriverID *int64
}
