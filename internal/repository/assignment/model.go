package assignment

import "time"

type AssignmentDB struct {
	ID           int64
	OrderID      int64
	VehicleID    *int64
	DriverID     *int64
	DeliveryDate time.Time
	TimeWindow   string
	Status       string
	AcceptedAt   *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	DriverNotes  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AssignmentModifyDB struct {
	ID           *int64
	OrderID      *int64
	VehicleID    *int64
	DriverID     *int64
	DeliveryDate *time.Time
	TimeWindow   *string
	Status       *string
	AcceptedAt   *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	DriverNotes  *string
}
