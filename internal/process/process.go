// Package process starts the external programs rofi-tmuxp hands off to: a
// terminal running `tmuxp load`, and rofi's error dialog.
package process

import (
	"log/slog"
	"os"
	"os/exec"

	"github.com/rofi-tmuxp/rofi-tmuxp/internal/errors"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/logger"
)

// Default programs, matching a stock rofi installation.
const (
	DefaultTerminal = "rofi-sensible-terminal"
	DefaultLoader   = "tmuxp"
	DefaultDialog   = "rofi"
)

// Spawner starts a process from an argument vector without waiting for it.
type Spawner interface {
	Start(argv []string) error
}

// ExecSpawner starts processes with os/exec and releases them right away.
type ExecSpawner struct{}

// Start launches argv[0] with the remaining arguments.
func (ExecSpawner) Start(argv []string) error {
	if len(argv) == 0 {
		return errors.SpawnFailed("", errors.E("empty argument vector"))
	}
	cmd := command(argv)
	if err := cmd.Start(); err != nil {
		return errors.SpawnFailed(argv[0], err)
	}
	return cmd.Process.Release()
}

// command builds the child process. Stdout stays nil, which os/exec connects
// to the null device: rofi reads the menu from our stdout. Stdin and stderr
// are inherited.
func command(argv []string) *exec.Cmd {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = os.Stderr
	return cmd
}

// Reporter shows an error message to the user.
type Reporter interface {
	ReportError(message string) error
}

// Launcher opens sessions in a new terminal and reports errors through rofi.
type Launcher struct {
	Terminal string
	Loader   string
	Dialog   string

	spawner Spawner
	log     *slog.Logger
}

// NewLauncher creates a launcher that starts processes through spawner.
// Empty program names fall back to the defaults.
func NewLauncher(spawner Spawner, terminal, loader, dialog string, log *slog.Logger) *Launcher {
	if spawner == nil {
		spawner = ExecSpawner{}
	}
	if terminal == "" {
		terminal = DefaultTerminal
	}
	if loader == "" {
		loader = DefaultLoader
	}
	if dialog == "" {
		dialog = DefaultDialog
	}
	return &Launcher{
		Terminal: terminal,
		Loader:   loader,
		Dialog:   dialog,
		spawner:  spawner,
		log:      logger.WithComponent(log, "launcher"),
	}
}

// LaunchArgs returns the argument vector that opens configPath in a terminal.
func (l *Launcher) LaunchArgs(configPath string) []string {
	return []string{l.Terminal, "-e", l.Loader, "load", configPath}
}

// ErrorArgs returns the argument vector for rofi's error dialog.
func (l *Launcher) ErrorArgs(message string) []string {
	return []string{l.Dialog, "-e", message}
}

// Launch runs `tmuxp load configPath` in a new terminal window.
func (l *Launcher) Launch(configPath string) error {
	argv := l.LaunchArgs(configPath)
	l.log.Info("Launching session", "path", configPath, "terminal", l.Terminal)
	return l.spawner.Start(argv)
}

// ReportError shows message in rofi's error dialog.
func (l *Launcher) ReportError(message string) error {
	return l.spawner.Start(l.ErrorArgs(message))
}
