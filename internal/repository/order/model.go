package order

import "time"

type OrderDB struct {
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
