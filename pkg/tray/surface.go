package tray

import (
	"errors"

	"github.com/getlantern/systray"
)

// Surface is the part of the tray the updater draws on.
type Surface interface {
	SetIcon(icon []byte) error
	SetTooltip(tooltip string) error
}

var errEmptyIcon = errors.New("icon is empty")

var _ Surface = systraySurface{}

// systraySurface draws on the process-wide systray icon. systray copies the
// icon bytes it is given.
type systraySurface struct{}

func (systraySurface) SetIcon(icon []byte) error {
	if len(icon) == 0 {
		return errEmptyIcon
	}
	systray.SetIcon(icon)
	return nil
}

func (systraySurface) SetTooltip(tooltip string) error {
	systray.SetTooltip(tooltip)
	return nil
}
