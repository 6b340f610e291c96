package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snptkdn/pomodoro/internal/ui/theme"
)

const testAppName = "pomodoro-test"

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings, err := LoadSettings(testAppName)
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultSettings(), settings)
}

func TestLoadSettingsAppliesFileValues(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, testAppName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "break_color: \"14\"\nshow_help: false\nlog_path: /tmp/pomodoro.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(content), 0o644))

	settings, err := LoadSettings(testAppName)
	require.NoError(t, err)
	assert.Equal(t, "14", settings.BreakColor)
	assert.False(t, settings.ShowHelp)
	assert.Equal(t, "/tmp/pomodoro.log", settings.LogPath)
	// Unset fields keep their defaults.
	assert.Equal(t, theme.DefaultSettings().WorkColor, settings.WorkColor)
}

func TestLoadSettingsMalformedYaml(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, testAppName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("{not yaml"), 0o644))

	settings, err := LoadSettings(testAppName)
	require.Error(t, err)
	assert.Equal(t, theme.DefaultSettings(), settings)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := theme.Settings{
		BreakColor: "12",
		WorkColor:  "9",
		LunchColor: "11",
		AxisColor:  "240",
		ShowHelp:   false,
		LogPath:    "/tmp/debug.log",
	}
	require.NoError(t, SaveSettings(testAppName, saved))

	loaded, err := LoadSettings(testAppName)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}
