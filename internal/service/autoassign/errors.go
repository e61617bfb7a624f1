package autoassign

import "errors"

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidTimeWindow  = errors.New("invalid time window")
	ErrNoEligibleVehicles = errors.New("no eligible vehicles for balancing")

	// ErrConcurrencyConflict — уникальный индекс сработал даже после
	// ON CONFLICT. Транзиентная ошибка, повторный запуск пакета её разрешит.
	ErrConcurrencyConflict = errors.New("concurrent assignment upsert conflict")

	// ErrProtectedRecord — запись уже подтверждена водителем или закрыта,
	// автоназначение её не трогает. Для пакета это skip, а не ошибка.
	ErrProtectedRecord = errors.New("assignment is protected from overwrite")
)
