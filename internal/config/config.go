package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rofi-tmuxp/rofi-tmuxp/internal/errors"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/process"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/tmuxp"
)

// Error reporters
const (
	ReporterDialog = "dialog"
	ReporterNotify = "notify"
)

// Environment overrides applied on top of the settings file.
const (
	EnvTerminal = "ROFI_TMUXP_TERMINAL"
	EnvLoader   = "ROFI_TMUXP_LOADER"
	EnvDialog   = "ROFI_TMUXP_DIALOG"
)

// Settings holds the launcher's own configuration
type Settings struct {
	Terminal      string `json:"terminal,omitempty"`       // Terminal emulator accepting -e <command...>
	Loader        string `json:"loader,omitempty"`         // Session loading command (tmuxp)
	Dialog        string `json:"dialog,omitempty"`         // Error dialog accepting -e <message>
	ErrorReporter string `json:"error_reporter,omitempty"` // "dialog" or "notify"
	ConfigDir     string `json:"config_dir,omitempty"`     // Workspace directory override
	UnsetVars     string `json:"unset_vars,omitempty"`     // "keep" or "empty"
	EnvFile       string `json:"env_file,omitempty"`       // Extra variables for placeholder expansion

	filePath string
}

// Defaults returns the settings used when no file exists.
func Defaults() *Settings {
	return &Settings{
		Terminal:      process.DefaultTerminal,
		Loader:        process.DefaultLoader,
		Dialog:        process.DefaultDialog,
		ErrorReporter: ReporterDialog,
	}
}

// settingsDir returns the path to the settings directory
func settingsDir(lookup tmuxp.LookupFunc) (string, error) {
	if xdg, ok := lookup("XDG_CONFIG_HOME"); ok && xdg != "" {
		return filepath.Join(xdg, "rofi-tmuxp"), nil
	}
	home, ok := lookup("HOME")
	if !ok || home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(home, ".config", "rofi-tmuxp"), nil
}

// Path returns the default settings file location.
func Path(lookup tmuxp.LookupFunc) (string, error) {
	if lookup == nil {
		lookup = tmuxp.EnvLookup(nil)
	}
	dir, err := settingsDir(lookup)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads settings from the default location, or returns defaults if
// the file doesn't exist. Environment overrides are applied afterwards.
func Load(lookup tmuxp.LookupFunc) (*Settings, error) {
	if lookup == nil {
		lookup = tmuxp.EnvLookup(nil)
	}
	path, err := Path(lookup)
	if err != nil {
		return nil, err
	}
	return LoadFile(path, lookup)
}

// LoadFile reads settings from path. A missing file yields defaults.
func LoadFile(path string, lookup tmuxp.LookupFunc) (*Settings, error) {
	if lookup == nil {
		lookup = tmuxp.EnvLookup(nil)
	}
	s := Defaults()
	s.filePath = path

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.SettingsLoadFailed(path, err)
	}
	if err == nil {
		if err := json.Unmarshal(data, s); err != nil {
			return nil, errors.SettingsLoadFailed(path, err)
		}
	}

	s.applyEnv(lookup)
	s.ensureDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyEnv(lookup tmuxp.LookupFunc) {
	if v, ok := lookup(EnvTerminal); ok && v != "" {
		s.Terminal = v
	}
	if v, ok := lookup(EnvLoader); ok && v != "" {
		s.Loader = v
	}
	if v, ok := lookup(EnvDialog); ok && v != "" {
		s.Dialog = v
	}
}

// ensureDefaults fills fields a settings file blanked out.
func (s *Settings) ensureDefaults() {
	d := Defaults()
	if s.Terminal == "" {
		s.Terminal = d.Terminal
	}
	if s.Loader == "" {
		s.Loader = d.Loader
	}
	if s.Dialog == "" {
		s.Dialog = d.Dialog
	}
	if s.ErrorReporter == "" {
		s.ErrorReporter = d.ErrorReporter
	}
}

// Validate checks that enumerated settings hold known values.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.ErrorReporter) {
	case ReporterDialog, ReporterNotify:
	default:
		return errors.SettingsInvalid(fmt.Sprintf("unknown error_reporter %q (want %s or %s)", s.ErrorReporter, ReporterDialog, ReporterNotify))
	}
	if _, err := tmuxp.ParseUnsetPolicy(s.UnsetVars); err != nil {
		return errors.SettingsInvalid(err.Error())
	}
	return nil
}

// UnsetPolicy returns the parsed unset_vars setting.
func (s *Settings) UnsetPolicy() tmuxp.UnsetPolicy {
	p, _ := tmuxp.ParseUnsetPolicy(s.UnsetVars)
	return p
}

// UseNotifications reports whether errors go to desktop notifications.
func (s *Settings) UseNotifications() bool {
	return strings.EqualFold(s.ErrorReporter, ReporterNotify)
}

// FilePath returns the file the settings were loaded from.
func (s *Settings) FilePath() string {
	return s.filePath
}
