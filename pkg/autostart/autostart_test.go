package autostart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerLifecycle(t *testing.T) {
	tests := []struct {
		goos     string
		file     string
		contains []string
	}{
		{
			goos:     "darwin",
			file:     launchAgentLabel + ".plist",
			contains: []string{"<string>/opt/percentage &amp; co/percentage</string>", "<key>RunAtLoad</key>"},
		},
		{
			goos:     "linux",
			file:     desktopEntryName,
			contains: []string{`Exec="/opt/percentage & co/percentage"`, "Type=Application"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested")
			m, err := NewFor(tt.goos, dir, "/opt/percentage & co/percentage")
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.file), m.Path())

			enabled, err := m.IsEnabled()
			require.NoError(t, err)
			assert.False(t, enabled)

			require.NoError(t, m.Enable())
			enabled, err = m.IsEnabled()
			require.NoError(t, err)
			assert.True(t, enabled)

			b, err := os.ReadFile(m.Path())
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, string(b), s)
			}

			require.NoError(t, m.Disable())
			require.NoError(t, m.Disable())
			enabled, err = m.IsEnabled()
			require.NoError(t, err)
			assert.False(t, enabled)
		})
	}
}

func TestManagerToggle(t *testing.T) {
	m, err := NewFor("linux", t.TempDir(), "/usr/bin/percentage")
	require.NoError(t, err)

	enabled, err := m.Toggle()
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = m.Toggle()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestNewForUnsupported(t *testing.T) {
	_, err := NewFor("plan9", t.TempDir(), "/bin/percentage")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestQuoteExec(t *testing.T) {
	assert.Equal(t, "/usr/bin/percentage", quoteExec("/usr/bin/percentage"))
	assert.Equal(t, `"/a b/c"`, quoteExec("/a b/c"))
	assert.Equal(t, `"/a\$b/c"`, quoteExec("/a$b/c"))
}
