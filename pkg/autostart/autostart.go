// Package autostart registers the program to start when the user logs in.
package autostart

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrUnsupported is returned on platforms without a supported login item
// mechanism.
var ErrUnsupported = errors.New("autostart is not supported on this platform")

const (
	launchAgentLabel = "io.github.ordosx.percentage"
	desktopEntryName = "percentage.desktop"
)

const launchAgentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`

const desktopEntryTemplate = `[Desktop Entry]
Type=Application
Name=percentage
Comment=Battery percentage in the system tray
Exec=%s
X-GNOME-Autostart-enabled=true
`

// Manager installs and removes the login item for one executable.
type Manager struct {
	path    string
	content string
}

// New returns a Manager for the running executable on the current platform.
func New() (*Manager, error) {
	exePath, err := os.Executable()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get the path to the current executable")
	}
	exePath, err = filepath.Abs(exePath)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to get the absolute path to the current executable")
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "failed to get home directory")
		}
		dir = filepath.Join(home, "Library", "LaunchAgents")
	case "linux":
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "failed to get config directory")
		}
		dir = filepath.Join(configDir, "autostart")
	default:
		return nil, ErrUnsupported
	}

	return NewFor(runtime.GOOS, dir, exePath)
}

// NewFor returns a Manager that writes the login item for goos into dir and
// starts exePath.
func NewFor(goos, dir, exePath string) (*Manager, error) {
	switch goos {
	case "darwin":
		var escaped bytes.Buffer
		if err := xml.EscapeText(&escaped, []byte(exePath)); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to escape executable path")
		}
		return &Manager{
			path:    filepath.Join(dir, launchAgentLabel+".plist"),
			content: fmt.Sprintf(launchAgentTemplate, launchAgentLabel, escaped.String()),
		}, nil
	case "linux":
		return &Manager{
			path:    filepath.Join(dir, desktopEntryName),
			content: fmt.Sprintf(desktopEntryTemplate, quoteExec(exePath)),
		}, nil
	default:
		return nil, ErrUnsupported
	}
}

// quoteExec quotes a path for the Exec key of a desktop entry.
func quoteExec(path string) string {
	if !strings.ContainsAny(path, " \t\"'\\$`") {
		return path
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(path) + `"`
}

// Path is the login item file.
func (m *Manager) Path() string {
	return m.path
}

// IsEnabled reports whether the login item file exists.
func (m *Manager) IsEnabled() (bool, error) {
	_, err := os.Stat(m.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, pkgerrors.Wrapf(err, "failed to stat %s", m.path)
}

// Enable writes the login item, replacing any existing one.
func (m *Manager) Enable() error {
	dir := filepath.Dir(m.path)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to create %s", dir)
	}

	logrus.Infof("writing login item to %s", m.path)

	err = os.WriteFile(m.path, []byte(m.content), 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to write %s", m.path)
	}

	return nil
}

// Disable removes the login item. A missing item is not an error.
func (m *Manager) Disable() error {
	logrus.Infof("removing login item %s", m.path)

	err := os.Remove(m.path)
	if err != nil && !os.IsNotExist(err) {
		return pkgerrors.Wrapf(err, "failed to remove %s", m.path)
	}

	return nil
}

// Toggle flips the login item and returns the new state.
func (m *Manager) Toggle() (bool, error) {
	enabled, err := m.IsEnabled()
	if err != nil {
		return false, err
	}
	if enabled {
		return false, m.Disable()
	}
	return true, m.Enable()
}
