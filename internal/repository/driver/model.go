package driver

import "time"

type DriverDB struct {
	ID        int64
	Name      string
	Login     string
	PinHash   string
	Status    string
	IsAdmin   bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverModifyDB struct {
	ID      *int64
	Name    *string
	Login   *string
	PinHash *string
	Status  *string
	IsAdmin *bool
}
