package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Watch reloads f whenever its file is written, created or replaced, until
// ctx is done. The parent directory is watched so that editors that save by
// renaming a temporary file are noticed too. onReload, if not nil, is called
// after every successful reload.
func Watch(ctx context.Context, f *File, onReload func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to create file watcher")
	}
	defer func() {
		if err := w.Close(); err != nil {
			logrus.Warnf("failed to close file watcher: %v", err)
		}
	}()

	dir := filepath.Dir(f.Path())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return pkgerrors.Wrapf(err, "failed to create config directory %s", dir)
	}
	if err := w.Add(dir); err != nil {
		return pkgerrors.Wrapf(err, "failed to watch %s", dir)
	}

	name := filepath.Clean(f.Path())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := f.Load(); err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.WithFields(f.LogrusFields()).Info("config reloaded")
			if onReload != nil {
				onReload()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logrus.Warnf("config watcher error: %v", err)
		}
	}
}
