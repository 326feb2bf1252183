// Package tray runs the system tray icon that shows the battery percentage.
package tray

import (
	"context"

	"github.com/getlantern/systray"
	"github.com/sirupsen/logrus"

	"github.com/ordosx/percentage/pkg/config"
	"github.com/ordosx/percentage/pkg/sampler"
	"github.com/ordosx/percentage/pkg/updates"
)

// Autostart toggles starting the app at login.
type Autostart interface {
	IsEnabled() (bool, error)
	Toggle() (bool, error)
}

// Options configures the tray app.
type Options struct {
	Icons  IconProvider
	Source sampler.Source
	Config config.Config
	// Autostart is optional. Without it the menu has no autostart item.
	Autostart Autostart
	// OnExit is called after the tray has exited.
	OnExit func()
}

// Run starts the tray and blocks until Quit is called or the user picks
// "Quit" from the menu. It must be called from the main goroutine.
func Run(opts Options) {
	ctx, cancel := context.WithCancel(context.Background())

	systray.Run(
		func() { onReady(ctx, cancel, opts) },
		func() {
			cancel()
			logrus.Info("tray exiting")
			if opts.OnExit != nil {
				opts.OnExit()
			}
		},
	)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

func onReady(ctx context.Context, cancel context.CancelFunc, opts Options) {
	systray.SetTooltip("Loading...")

	var mAutostart *systray.MenuItem
	if opts.Autostart != nil {
		mAutostart = systray.AddMenuItem(autostartTitle(opts.Autostart), "Start at login")
	}
	mQuit := systray.AddMenuItem("Quit", "Quit the app")

	ch := updates.New()
	s := sampler.New(opts.Source, ch, opts.Config)
	u := NewUpdater(systraySurface{}, opts.Icons, ch)

	go s.Run()
	go u.Run(ctx)

	go func() {
		// A nil channel never fires, which disables the case.
		var autostartClicked chan struct{}
		if mAutostart != nil {
			autostartClicked = mAutostart.ClickedCh
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-autostartClicked:
				enabled, err := opts.Autostart.Toggle()
				if err != nil {
					logrus.Errorf("failed to toggle autostart: %v", err)
				} else {
					logrus.Infof("autostart enabled: %t", enabled)
				}
				mAutostart.SetTitle(autostartTitle(opts.Autostart))
			case <-mQuit.ClickedCh:
				logrus.Info("user clicked quit")
				cancel()
				systray.Quit()
				return
			}
		}
	}()
}

func autostartTitle(a Autostart) string {
	enabled, err := a.IsEnabled()
	if err != nil {
		logrus.Warnf("failed to check autostart: %v", err)
	}
	if enabled {
		return "Disable autostart"
	}
	return "Enable autostart"
}
