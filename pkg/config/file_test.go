package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordosx/percentage/pkg/icon"
	"github.com/ordosx/percentage/pkg/utils/ptr"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewFileDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{name: "missing file", content: nil},
		{name: "empty file", content: ptr.To("")},
		{name: "whitespace", content: ptr.To("  \n\t")},
		{name: "empty object", content: ptr.To("{}")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if tt.content != nil {
				writeConfig(t, path, *tt.content)
			}

			f, err := NewFile(path)
			require.NoError(t, err)

			assert.Equal(t, time.Second, f.SampleInterval())
			assert.True(t, f.EmitOnChangeOnly())
			assert.Equal(t, DevicePolicyFirst, f.DevicePolicy())
			assert.True(t, f.CacheIcons())
			assert.Equal(t, icon.DefaultSize, f.IconSize())
			assert.Equal(t, "", f.FontPath())
		})
	}
}

func TestNewFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, path, `{
  "sampleIntervalSeconds": 5,
  "emitOnChangeOnly": false,
  "devicePolicy": "all",
  "cacheIcons": false,
  "iconSize": 32,
  "fontPath": "/tmp/font.ttf"
}`)

	f, err := NewFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, f.SampleInterval())
	assert.False(t, f.EmitOnChangeOnly())
	assert.Equal(t, DevicePolicyAll, f.DevicePolicy())
	assert.False(t, f.CacheIcons())
	assert.Equal(t, 32, f.IconSize())
	assert.Equal(t, "/tmp/font.ttf", f.FontPath())
}

func TestNewFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{"},
		{name: "zero interval", content: `{"sampleIntervalSeconds": 0}`},
		{name: "unknown policy", content: `{"devicePolicy": "average"}`},
		{name: "icon too small", content: `{"iconSize": 8}`},
		{name: "icon too large", content: `{"iconSize": 512}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			writeConfig(t, path, tt.content)

			_, err := NewFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadKeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, path, `{"devicePolicy": "all"}`)

	f, err := NewFile(path)
	require.NoError(t, err)

	writeConfig(t, path, `{"devicePolicy": "bogus"}`)
	assert.Error(t, f.Load())
	assert.Equal(t, DevicePolicyAll, f.DevicePolicy())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	f := NewFileFromConfig(&RawFileConfig{
		EmitOnChangeOnly: ptr.To(false),
	}, path)
	require.NoError(t, f.Save())

	loaded, err := NewFile(path)
	require.NoError(t, err)
	assert.False(t, loaded.EmitOnChangeOnly())
	assert.Equal(t, DevicePolicyFirst, loaded.DevicePolicy())
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, path, `{"emitOnChangeOnly": true}`)

	f, err := NewFile(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, f, func() { reloaded <- struct{}{} })
	}()

	// Keep rewriting until the watcher, which starts asynchronously, sees it.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-reloaded:
			break loop
		case <-tick.C:
			writeConfig(t, path, `{"emitOnChangeOnly": false}`)
		case <-deadline:
			t.Fatal("config was not reloaded")
		}
	}

	assert.False(t, f.EmitOnChangeOnly())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestGettersDuringReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, path, `{"sampleIntervalSeconds": 2, "devicePolicy": "all"}`)

	f, err := NewFile(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			assert.NoError(t, f.Load())
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			assert.Equal(t, 2*time.Second, f.SampleInterval())
			assert.Equal(t, DevicePolicyAll, f.DevicePolicy())
			assert.NotEmpty(t, f.LogrusFields())
		}
	}()
	wg.Wait()
}
