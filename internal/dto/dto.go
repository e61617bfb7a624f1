// Package dto содержит тела HTTP-запросов и ответов. Даты передаются
// строками формата 2006-01-02, статусы — словарем жизненного цикла
// (легаси-написания принимаются и нормализуются на входе).
package dto

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LoginRequest struct {
	Login string `json:"login"`
	Pin   string `json:"pin"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

type CreateDriverRequest struct {
	Name  string `json:"name"`
	Login string `json:"login"`
	Pin   string `json:"pin"`
}

type CreateDriverResponse struct {
	ID int64 `json:"id"`
}

type CreateOrderRequest struct {
	ExternalID   string `json:"external_id"`
	Region       string `json:"region"`
	DeliveryDate string `json:"delivery_date"`
	TimeWindow   string `json:"time_window,omitempty"`
	Products     string `json:"products,omitempty"`
	Total        int64  `json:"total,omitempty"`
	IsPaid       bool   `json:"is_paid,omitempty"`
}

type OrderResponse struct {
	ID           int64  `json:"id"`
	ExternalID   string `json:"external_id"`
	Region       string `json:"region"`
	DeliveryDate string `json:"delivery_date"`
	TimeWindow   string `json:"time_window"`
	IsPaid       bool   `json:"is_paid"`
}

type AutoAssignRequest struct {
	Date       string `json:"date"`
	TimeWindow string `json:"time_window,omitempty"`
}

type AutoAssignResponse struct {
	Assigned     map[int64]int64  `json:"assigned"`
	VehicleLoads map[int64]int    `json:"vehicle_loads"`
	Skipped      []int64          `json:"skipped"`
	Errors       map[int64]string `json:"errors,omitempty"`
}

type AssignmentStatusRequest struct {
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	VehicleBroken bool   `json:"vehicle_broken,omitempty"`
	VehicleID     *int64 `json:"vehicle_id,omitempty"`
}

type AssignmentResponse struct {
	ID           int64   `json:"id"`
	OrderID      int64   `json:"order_id"`
	VehicleID    *int64  `json:"vehicle_id,omitempty"`
	DriverID     *int64  `json:"driver_id,omitempty"`
	DeliveryDate string  `json:"delivery_date"`
	TimeWindow   string  `json:"time_window"`
	Status       string  `json:"status"`
	AcceptedAt   *string `json:"accepted_at,omitempty"`
	StartedAt    *string `json:"started_at,omitempty"`
	CompletedAt  *string `json:"completed_at,omitempty"`
	DriverNotes  string  `json:"driver_notes,omitempty"`
}

type RecoveryResponse struct {
	DriverID     int64  `json:"driver_id"`
	ReassignedTo *int64 `json:"reassigned_to,omitempty"`
	DriverStatus string `json:"driver_status"`
	Migrated     int64  `json:"migrated"`
}

type AssignmentStatusResponse struct {
	Assignment AssignmentResponse `json:"assignment"`
	Recovery   *RecoveryResponse  `json:"recovery,omitempty"`
}

type UpsertOverrideRequest struct {
	Date      string `json:"date"`
	Region    string `json:"region"`
	VehicleID int64  `json:"vehicle_id"`
	Notes     string `json:"notes,omitempty"`
}

type OverrideResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Region    string `json:"region"`
	VehicleID int64  `json:"vehicle_id"`
	CreatedBy string `json:"created_by,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type ResolveResponse struct {
	Region    string `json:"region"`
	Date      string `json:"date"`
	VehicleID int64  `json:"vehicle_id"`
	Vehicle   string `json:"vehicle"`
}
