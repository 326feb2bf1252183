package tray

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ordosx/percentage/pkg/powerinfo"
	"github.com/ordosx/percentage/pkg/updates"
)

// IconProvider renders the tray icon for a reading.
type IconProvider interface {
	Icon(percentage int, charging bool) ([]byte, error)
}

// Updater applies battery samples to a tray surface.
type Updater struct {
	icons IconProvider
	in    *updates.Channel

	// mu guards surface. It is held only while the icon and tooltip are set.
	mu      *sync.Mutex
	surface Surface
}

// NewUpdater returns an Updater reading samples from in.
func NewUpdater(surface Surface, icons IconProvider, in *updates.Channel) *Updater {
	return &Updater{
		icons:   icons,
		in:      in,
		mu:      &sync.Mutex{},
		surface: surface,
	}
}

// Run applies samples until the sender closes the channel or ctx is done.
// On return the receiving side is closed, which stops the sampler.
func (u *Updater) Run(ctx context.Context) {
	defer u.in.Close()

	logrus.Debug("tray updater starts")

	for {
		select {
		case <-ctx.Done():
			logrus.Debug("tray updater stops: context done")
			return
		case s, ok := <-u.in.Receive():
			if !ok {
				logrus.Debug("tray updater stops: sampler closed the channel")
				return
			}
			u.Apply(s)
		}
	}
}

// Apply renders s and puts it on the surface. Failures are logged, and a
// failed render leaves the surface untouched.
func (u *Updater) Apply(s powerinfo.Sample) {
	icon, err := u.icons.Icon(s.Percentage, s.Charging())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"percentage": s.Percentage,
			"state":      s.State.String(),
		}).Errorf("failed to generate tray icon: %v", err)
		return
	}

	tooltip := s.Tooltip()

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.surface.SetIcon(icon); err != nil {
		logrus.Errorf("failed to update tray icon: %v", err)
	}
	if err := u.surface.SetTooltip(tooltip); err != nil {
		logrus.Errorf("failed to update tray tooltip: %v", err)
	}
}
