package entities

import "time"

type Driver struct {
	ID        int64
	Name      string
	Login     string
	PinHash   string
	Status    DriverStatusType
	IsAdmin   bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverStatusType string

const (
	DriverOnline        DriverStatusType = "online"
	DriverOffline       DriverStatusType = "offline"
	DriverBrokenVehicle DriverStatusType = "broken_vehicle"
)

const DefaultDriverStatus = DriverOffline

func (t DriverStatusType) String() string {
	return string(t)
}

type DriverModify struct {
	ID      *int64
	Name    *string
	Login   *string
	PinHash *string
	Status  *DriverStatusType
	IsAdmin *bool
}
