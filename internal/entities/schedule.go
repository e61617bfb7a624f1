package entities

import "time"

// StandingScheduleEntry — постоянная привязка региона к машине,
// без даты. Работает как fallback, когда нет override на день.
type StandingScheduleEntry struct {
	ID        int64
	Region    string
	VehicleID int64
	IsActive  bool
}

// RegionOverride заменяет постоянное расписание на конкретный день.
// Активный override на пару (дата, регион) всегда один.
type RegionOverride struct {
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

type RegionOverrideModify struct {
	ID        *int64
	Date      *time.Time
	Region    *string
	VehicleID *int64
	CreatedBy *string
	Notes     *string
	IsActive  *bool
}
