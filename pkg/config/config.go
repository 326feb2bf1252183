package config

import (
	"time"
)

// DevicePolicy selects which batteries the sampler reports.
type DevicePolicy string

const (
	// DevicePolicyFirst reports the first battery that answers.
	DevicePolicyFirst DevicePolicy = "first"
	// DevicePolicyAll reports every battery, one sample each.
	DevicePolicyAll DevicePolicy = "all"
)

type Config interface {
	// SampleInterval is the pause between two battery polls.
	SampleInterval() time.Duration
	// EmitOnChangeOnly suppresses samples equal to the last one sent.
	EmitOnChangeOnly() bool
	DevicePolicy() DevicePolicy
	// CacheIcons memoises rendered icons.
	CacheIcons() bool
	// IconSize is the side length of the tray icon.
	IconSize() int
	// FontPath names a TTF/OTF file. Empty means the embedded font.
	FontPath() string

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
