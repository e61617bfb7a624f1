package recovery

import "errors"

var (
	ErrInvalidDriverID  = errors.New("invalid driver id")
	ErrInvalidVehicleID = errors.New("invalid vehicle id")
	ErrInvalidDate      = errors.New("invalid date")

	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrDriverNotFound  = errors.New("driver not found")

	// ErrNoSpareVehicle возвращает репозиторий, когда свободных машин нет.
	// Для сервиса это не ошибка, а деградация: водитель блокируется до
	// ручного вмешательства админа.
	ErrNoSpareVehicle = errors.New("no spare vehicle available")
)
