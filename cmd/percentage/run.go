package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ordosx/percentage/pkg/autostart"
	"github.com/ordosx/percentage/pkg/config"
	"github.com/ordosx/percentage/pkg/icon"
	"github.com/ordosx/percentage/pkg/sampler"
	"github.com/ordosx/percentage/pkg/tray"
	"github.com/ordosx/percentage/pkg/version"
)

func runTray() error {
	logrus.WithFields(logrus.Fields{
		"version": version.Version,
		"commit":  version.GitCommit,
	}).Info("percentage starting")

	conf, err := config.NewFile(configPath)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to load config")
	}
	logrus.WithFields(conf.LogrusFields()).Infof("config loaded from %s", conf.Path())

	icons, err := newIconProvider(conf)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Icon size, font and caching are fixed for the life of the tray. The
	// sampler picks up every other change on its next poll.
	size, fontPath, cacheIcons := conf.IconSize(), conf.FontPath(), conf.CacheIcons()
	onReload := func() {
		if conf.IconSize() != size || conf.FontPath() != fontPath || conf.CacheIcons() != cacheIcons {
			logrus.Warn("icon settings changed, restart percentage to apply them")
		}
	}

	go func() {
		if err := config.Watch(ctx, conf, onReload); err != nil {
			logrus.Errorf("failed to watch config: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigc:
				if sig == syscall.SIGHUP {
					if err := conf.Load(); err != nil {
						logrus.Errorf("failed to reload config: %v", err)
						continue
					}
					logrus.WithFields(conf.LogrusFields()).Info("config reloaded")
					onReload()
					continue
				}
				logrus.Infof("received signal %s, exiting", sig)
				tray.Quit()
				return
			}
		}
	}()

	opts := tray.Options{
		Icons:  icons,
		Source: sampler.SystemSource{},
		Config: conf,
		OnExit: cancel,
	}
	if m, err := autostart.New(); err != nil {
		logrus.Debugf("autostart menu disabled: %v", err)
	} else {
		opts.Autostart = m
	}

	tray.Run(opts)

	return nil
}

func newIconProvider(conf config.Config) (tray.IconProvider, error) {
	font, err := icon.LoadFont(conf.FontPath())
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to load font")
	}

	gen := icon.NewGenerator(font, conf.IconSize())
	if !conf.CacheIcons() {
		return gen, nil
	}

	return icon.NewCache(gen.Icon), nil
}
