package entities

import "time"

// Order неизменяем после создания, меняются только смежные с жизненным
// циклом поля (оплата).
type Order struct {
	ID           int64
	ExternalID   string
	Region       string
	DeliveryDate time.Time
	TimeWindow   string
	Products     string
	Total        int64
	IsPaid       bool
	CreatedAt    time.Time
}

type OrderModify struct {
	ID           *int64
	ExternalID   *string
	Region       *string
	DeliveryDate *time.Time
	TimeWindow   *string
	Products     *string
	Total        *int64
	IsPaid       *bool
}

// TimeWindowAll — значение "окно не задано", autoassign берет все заказы дня.
const TimeWindowAll = "all"
