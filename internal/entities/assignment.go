package entities

import "time"

// Assignment связывает заказ с машиной (и обычно водителем) на конкретную
// дату доставки. Не удаляется физически: отмена это статус, а не DELETE.
type Assignment struct {
	ID           int64
	OrderID      int64
	VehicleID    *int64
	DriverID     *int64
	DeliveryDate time.Time
	TimeWindow   string
	Status       AssignmentStatusType
	AcceptedAt   *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	DriverNotes  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AssignmentStatusType string

// Канонический словарь статусов. Легаси-написания in_progress/completed
// нормализуются на границе HTTP, внутри движка живут только эти значения.
const (
	AssignmentAssigned  AssignmentStatusType = "assigned"
	AssignmentAccepted  AssignmentStatusType = "accepted"
	AssignmentStarted   AssignmentStatusType = "started"
	AssignmentDelivered AssignmentStatusType = "delivered"
	AssignmentCancelled AssignmentStatusType = "cancelled"
	AssignmentBroken    AssignmentStatusType = "broken"
)

func (t AssignmentStatusType) String() string {
	return string(t)
}

// IsTerminal сообщает, что из статуса нет выхода.
func (t AssignmentStatusType) IsTerminal() bool {
	return t == AssignmentDelivered || t == AssignmentCancelled
}

type AssignmentModify struct {
	ID           *int64
	OrderID      *int64
	VehicleID    *int64
	DriverID     *int64
	DeliveryDate *time.Time
	TimeWindow   *string
	Status       *AssignmentStatusType
	AcceptedAt   *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	DriverNotes  *string
}

// AssignmentBatchResult — итог пакетного автоназначения. Ошибки по
// отдельным заказам собираются, а не прерывают пакет.
type AssignmentBatchResult struct {
	Assigned     map[int64]int64 // orderID -> vehicleID
	VehicleLoads map[int64]int   // vehicleID -> количество заказов
	Skipped      []int64         // заказы, защищенные от перезаписи
	Errors       map[int64]error // orderID -> ошибка upsert
}

// RecoveryOutcome — итог обработки поломки машины.
type RecoveryOutcome struct {
	DriverID     int64
	ReassignedTo *int64
	DriverStatus DriverStatusType
	Migrated     int64
}
