package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/snptkdn/pomodoro/internal/ui/theme"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	BreakColor string `yaml:"break_color"`
	WorkColor  string `yaml:"work_color"`
	LunchColor string `yaml:"lunch_color"`
	AxisColor  string `yaml:"axis_color"`
	ShowHelp   *bool  `yaml:"show_help"`
	LogPath    string `yaml:"log_path"`
}

// LoadSettings reads appearance preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (theme.Settings, error) {
	settings := theme.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes appearance preferences to YAML.
func SaveSettings(appName string, settings theme.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	showHelp := settings.ShowHelp
	fileData := yamlSettings{
		BreakColor: settings.BreakColor,
		WorkColor:  settings.WorkColor,
		LunchColor: settings.LunchColor,
		AxisColor:  settings.AxisColor,
		ShowHelp:   &showHelp,
		LogPath:    settings.LogPath,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *theme.Settings, fileData yamlSettings) {
	if fileData.BreakColor != "" {
		settings.BreakColor = fileData.BreakColor
	}
	if fileData.WorkColor != "" {
		settings.WorkColor = fileData.WorkColor
	}
	if fileData.LunchColor != "" {
		settings.LunchColor = fileData.LunchColor
	}
	if fileData.AxisColor != "" {
		settings.AxisColor = fileData.AxisColor
	}
	if fileData.ShowHelp != nil {
		settings.ShowHelp = *fileData.ShowHelp
	}
	settings.LogPath = fileData.LogPath
}
