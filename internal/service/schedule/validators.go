package schedule

import "strings"

func isValidRegion(region string) bool {
	return strings.TrimSpace(region) != ""
}

func isValidVehicleID(id int64) bool {
	return id > 0
}
