package driver

import (
	"strings"
	"unicode"

	"dispatch/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidLogin(login string) bool {
	login = strings.TrimSpace(login)
	return len(login) >= 3
}

// PIN — 4-6 цифр, как в мобильном клиенте водителя.
func isValidPin(pin string) bool {
	if len(pin) < 4 || len(pin) > 6 {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isValidStatus(status entities.DriverStatusType) bool {
	switch status {
	case entities.DriverOnline, entities.DriverOffline, entities.DriverBrokenVehicle:
		return true
	default:
		return false
	}
}
