package order

import "strings"

func isValidExternalID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidRegion(region string) bool {
	return strings.TrimSpace(region) != ""
}
