package config

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ordosx/percentage/pkg/icon"
	"github.com/ordosx/percentage/pkg/utils/ptr"
)

var (
	defaultFileConfig = &RawFileConfig{
		SampleIntervalSeconds: ptr.To(1),
		EmitOnChangeOnly:      ptr.To(true),
		DevicePolicy:          ptr.To(DevicePolicyFirst),
		CacheIcons:            ptr.To(true),
		IconSize:              ptr.To(icon.DefaultSize),
		FontPath:              ptr.To(""),
	}
)

var _ Config = &File{}

type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	err := f.Load()
	if err != nil {
		return nil, err
	}

	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = defaultFileConfig
	}

	f := &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}

	return f
}

type RawFileConfig struct {
	SampleIntervalSeconds *int          `json:"sampleIntervalSeconds,omitempty"`
	EmitOnChangeOnly      *bool         `json:"emitOnChangeOnly,omitempty"`
	DevicePolicy          *DevicePolicy `json:"devicePolicy,omitempty"`
	CacheIcons            *bool         `json:"cacheIcons,omitempty"`
	IconSize              *int          `json:"iconSize,omitempty"`
	FontPath              *string       `json:"fontPath,omitempty"`
}

// Validate rejects values the program cannot run with. Nil fields fall back
// to defaults and are always valid.
func (c *RawFileConfig) Validate() error {
	if c.SampleIntervalSeconds != nil && *c.SampleIntervalSeconds < 1 {
		return pkgerrors.Errorf("sampleIntervalSeconds must be at least 1, got %d", *c.SampleIntervalSeconds)
	}
	if c.DevicePolicy != nil {
		switch *c.DevicePolicy {
		case DevicePolicyFirst, DevicePolicyAll:
		default:
			return pkgerrors.Errorf("devicePolicy must be %q or %q, got %q", DevicePolicyFirst, DevicePolicyAll, *c.DevicePolicy)
		}
	}
	if c.IconSize != nil && (*c.IconSize < icon.MinSize || *c.IconSize > icon.MaxSize) {
		return pkgerrors.Errorf("iconSize must be between %d and %d, got %d", icon.MinSize, icon.MaxSize, *c.IconSize)
	}
	return nil
}

// Path is the file this config is loaded from and saved to.
func (f *File) Path() string {
	return f.filepath
}

func (f *File) SampleInterval() time.Duration {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		panic("config is nil")
	}

	seconds := ptr.Deref(f.c.SampleIntervalSeconds, *defaultFileConfig.SampleIntervalSeconds)

	return time.Duration(seconds) * time.Second
}

func (f *File) EmitOnChangeOnly() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		panic("config is nil")
	}

	return ptr.Deref(f.c.EmitOnChangeOnly, *defaultFileConfig.EmitOnChangeOnly)
}

func (f *File) DevicePolicy() DevicePolicy {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		panic("config is nil")
	}

	return ptr.Deref(f.c.DevicePolicy, *defaultFileConfig.DevicePolicy)
}

func (f *File) CacheIcons() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		panic("config is nil")
	}

	return ptr.Deref(f.c.CacheIcons, *defaultFileConfig.CacheIcons)
}

func (f *File) IconSize() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		panic("config is nil")
	}

	return ptr.Deref(f.c.IconSize, *defaultFileConfig.IconSize)
}

func (f *File) FontPath() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		panic("config is nil")
	}

	return ptr.Deref(f.c.FontPath, *defaultFileConfig.FontPath)
}

// Load re-reads the file. On any error the previous configuration is kept.
func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// If the file does not exist, return the empty config.
			// Do not make f.c a nil.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	// Since we want to tell if the file is empty, using json.Decoder will
	// not work.
	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	err = json.Unmarshal(b, &conf)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	if err := conf.Validate(); err != nil {
		return pkgerrors.Wrapf(err, "invalid config in file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		err := fp.Close()
		if err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	err = enc.Encode(f.c)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	f.mu.RLock()
	isNil := f.c == nil
	f.mu.RUnlock()
	if isNil {
		panic("config is nil")
	}

	return logrus.Fields{
		"sampleInterval":   f.SampleInterval().String(),
		"emitOnChangeOnly": f.EmitOnChangeOnly(),
		"devicePolicy":     f.DevicePolicy(),
		"cacheIcons":       f.CacheIcons(),
		"iconSize":         f.IconSize(),
		"fontPath":         f.FontPath(),
	}
}
