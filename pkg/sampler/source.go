package sampler

import (
	"errors"
	"math"

	"github.com/distatus/battery"
	pkgerrors "github.com/pkg/errors"

	"github.com/ordosx/percentage/pkg/powerinfo"
)

// Source reports the batteries present in the system.
type Source interface {
	Devices() ([]powerinfo.Device, error)
}

var _ Source = SystemSource{}

// SystemSource reads batteries from the operating system.
type SystemSource struct{}

// Devices returns every battery that reported a usable charge and state,
// tagged with its position in the system's battery list. Batteries that
// failed to report are left out; an error is only returned when the
// batteries could not be listed at all.
func (SystemSource) Devices() ([]powerinfo.Device, error) {
	batteries, err := battery.GetAll()

	var errs battery.Errors
	if err != nil && !errors.As(err, &errs) {
		return nil, pkgerrors.Wrap(err, "failed to get batteries")
	}

	devices := make([]powerinfo.Device, 0, len(batteries))
	for i, b := range batteries {
		var batErr error
		if i < len(errs) {
			batErr = errs[i]
		}
		d, ok := deviceFromBattery(i, b, batErr)
		if !ok {
			continue
		}
		devices = append(devices, d)
	}

	return devices, nil
}

// deviceFromBattery converts the battery at index in the system's battery
// list. Fields other than the charge and the state may fail without making
// the battery unusable.
func deviceFromBattery(index int, b *battery.Battery, err error) (powerinfo.Device, bool) {
	if b == nil {
		return powerinfo.Device{}, false
	}

	if err != nil {
		var partial battery.ErrPartial
		if !errors.As(err, &partial) {
			return powerinfo.Device{}, false
		}
		if partial.State != nil || partial.Current != nil || partial.Full != nil {
			return powerinfo.Device{}, false
		}
	}

	if b.Full <= 0 {
		return powerinfo.Device{}, false
	}

	fraction := b.Current / b.Full
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return powerinfo.Device{}, false
	}

	return powerinfo.Device{
		Index:    index,
		Fraction: fraction,
		State:    stateFromBattery(b.State),
	}, true
}

func stateFromBattery(s battery.State) powerinfo.ChargingState {
	switch s {
	case battery.Charging:
		return powerinfo.Charging
	case battery.Discharging:
		return powerinfo.Discharging
	case battery.Full:
		return powerinfo.Full
	default:
		return powerinfo.Unknown
	}
}
