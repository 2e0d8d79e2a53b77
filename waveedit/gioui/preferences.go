package gioui

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"gioui.org/unit"
)

type (
	Preferences struct {
		Window     WindowPreferences
		EdgeMargin unit.Dp `yaml:"edgemargin"`
		Stretching bool
		Generator  int
		Clipboard  string
		YmlError   error `yaml:"-"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ConfigPath returns the path of a file in the user's wavedraw config
// directory.
func ConfigPath(filename string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "wavedraw", filename), nil
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	path, err := ConfigPath(filename)
	if err != nil {
		return false, err
	}
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	err = yaml.UnmarshalStrict(bytes, target)
	return true, err
}

// MakePreferences returns the default preferences overridden by the user's
// preferences.yml, if there is one. Errors in the user's file are reported in
// YmlError.
func MakePreferences() Preferences {
	preferences := loadDefaultPreferences()
	exists, err := ReadCustomConfigYml("preferences.yml", &preferences)
	if exists {
		preferences.YmlError = err
	}
	return preferences
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}

// ClipboardPath returns where the clipboard slot is persisted. A relative
// name is resolved in the config directory; an empty name disables the file.
func (p Preferences) ClipboardPath() (string, bool) {
	if p.Clipboard == "" {
		return "", false
	}
	if filepath.IsAbs(p.Clipboard) {
		return p.Clipboard, true
	}
	path, err := ConfigPath(p.Clipboard)
	if err != nil {
		return "", false
	}
	return path, true
}
