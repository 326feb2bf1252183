package icon

import (
	"strconv"
)

const (
	// FullMarker is shown instead of digits once a charging battery is topped off.
	FullMarker = "^_^"
	// ChargingMarker is appended to the percentage while charging.
	ChargingMarker = "*"

	// fullThreshold is the percentage above which a charging battery counts as full.
	fullThreshold = 97
)

// FormatText maps a battery reading to the short string drawn on the icon.
func FormatText(percentage int, charging bool) string {
	switch {
	case charging && percentage > fullThreshold:
		return FullMarker
	case charging:
		return strconv.Itoa(percentage) + ChargingMarker
	default:
		return strconv.Itoa(percentage)
	}
}
