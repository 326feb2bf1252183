package powerinfo

import (
	"fmt"
)

// ChargingState represents the charging state of a battery.
type ChargingState int

const (
	// Unknown is reported for any state the source cannot classify
	// (empty, idle, not charging, ...).
	Unknown ChargingState = iota
	// Charging indicates the battery is charging.
	Charging
	// Discharging indicates the battery is discharging.
	Discharging
	// Full indicates the battery is full.
	Full
)

func (s ChargingState) String() string {
	switch s {
	case Charging:
		return "Charging"
	case Discharging:
		return "Discharging"
	case Full:
		return "Full"
	default:
		return "Unknown"
	}
}

// Device is a single battery as reported by a battery source.
// Fraction is the state of charge in [0, 1].
type Device struct {
	// Index is the position of the battery in the system's battery list. It
	// stays the same when other batteries fail to report.
	Index    int
	Fraction float64
	State    ChargingState
}

// Sample is one battery reading handed from the sampler to the tray.
type Sample struct {
	Percentage int
	State      ChargingState
	// Device is the Index of the battery the sample was read from.
	Device int
}

// Charging reports whether the icon should be drawn in its charging form.
func (s Sample) Charging() bool {
	return s.State == Charging
}

// SameReading reports whether two samples carry the same percentage and state.
func (s Sample) SameReading(o Sample) bool {
	return s.Percentage == o.Percentage && s.State == o.State
}

// Tooltip is the hover text shown next to the tray icon.
func (s Sample) Tooltip() string {
	switch s.State {
	case Charging:
		return fmt.Sprintf("Charging: %d%%", s.Percentage)
	case Discharging:
		return fmt.Sprintf("Discharging: %d%%", s.Percentage)
	case Full:
		return "Full"
	default:
		return fmt.Sprintf("Unknown state: %d%%", s.Percentage)
	}
}
