package entities

import "time"

type Vehicle struct {
	ID          int64
	Name        string
	Capacity    int
	IsActive    bool
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type VehicleModify struct {
	ID          *int64
	Name        *string
	Capacity    *int
	IsActive    *bool
	IsAvailable *bool
}

// VehicleRef — ссылка на машину в результатах движка назначений.
type VehicleRef struct {
	ID   int64
	Name string
}

// AssignableVehicle — машина вместе с её основным водителем (если есть),
// как её видит движок автоназначения.
type AssignableVehicle struct {
	Vehicle
	PrimaryDriverID *int64
}

// DriverVehicleLink связывает водителя с машиной. is_primary отмечает
// основную машину водителя, запасные цепляются как не-primary.
type DriverVehicleLink struct {
	ID        int64
	DriverID  int64
	VehicleID int64
	IsPrimary bool
	IsActive  bool
	CreatedAt time.Time
}
