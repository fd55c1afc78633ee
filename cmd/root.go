package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rofi-tmuxp/rofi-tmuxp/internal/config"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/errors"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/logger"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/notification"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/process"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/session"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/tmuxp"
)

var version, commit, date string

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// deps are the process-level collaborators of a run.
type deps struct {
	stdout  io.Writer
	stderr  io.Writer
	lookup  tmuxp.LookupFunc
	spawner process.Spawner
}

func defaultDeps() deps {
	return deps{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		lookup:  os.LookupEnv,
		spawner: process.ExecSpawner{},
	}
}

// options holds the flag values of one command instance.
type options struct {
	quiet        bool
	configDir    string
	envFile      string
	settingsFile string
}

var rootCmd = newRootCmd(defaultDeps())

func newRootCmd(d deps) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "rofi-tmuxp [session]",
		Short: "rofi script mode launcher for tmuxp sessions",
		Long: `rofi-tmuxp lists the tmuxp sessions found in the tmuxp workspace directory.

Without arguments it prints one session name per line, which is what rofi shows
as the menu. Called with a session name, it opens that session in a new terminal
window with "tmuxp load". Unknown session names are reported through rofi's
error dialog.

Use it as a rofi mode:

  rofi -show tmuxp -modi tmuxp:rofi-tmuxp`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(d, opts, args)
		},
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	}

	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Reduce log verbosity")
	cmd.Flags().StringVar(&opts.configDir, "config-dir", "", "tmuxp workspace directory (default: tmuxp's lookup order)")
	cmd.Flags().StringVar(&opts.envFile, "env-file", "", "dotenv file with extra variables for ${VAR} expansion")
	cmd.Flags().StringVar(&opts.settingsFile, "settings", "", "settings file (default: $XDG_CONFIG_HOME/rofi-tmuxp/config.json)")
	return cmd
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return execute(rootCmd, os.Args[1:])
}

// execute runs cmd with unknown flags stripped from args, so a session name
// following an unknown flag is not taken as that flag's value.
func execute(cmd *cobra.Command, args []string) error {
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	cmd.SetArgs(knownArgs(cmd.Flags(), args))
	return cmd.Execute()
}

// knownArgs drops flags that fs does not define. Values of known flags and
// everything after "--" pass through untouched.
func knownArgs(fs *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			out = append(out, arg)
			if !hasValue && flag.NoOptDefVal == "" && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case len(arg) > 1 && arg[0] == '-':
			shorts, takesNext := knownShorthands(fs, arg[1:])
			if shorts == "" {
				continue
			}
			out = append(out, "-"+shorts)
			if takesNext && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		default:
			out = append(out, arg)
		}
	}
	return out
}

// knownShorthands filters a shorthand cluster such as "qx" down to the
// letters fs defines. A letter taking a value ends the cluster; takesNext
// reports whether that value is the next argument.
func knownShorthands(fs *pflag.FlagSet, cluster string) (kept string, takesNext bool) {
	var b strings.Builder
	for i := 0; i < len(cluster); i++ {
		flag := fs.ShorthandLookup(cluster[i : i+1])
		if flag == nil {
			continue
		}
		b.WriteByte(cluster[i])
		if flag.NoOptDefVal == "" {
			rest := cluster[i+1:]
			b.WriteString(rest)
			return b.String(), rest == ""
		}
	}
	return b.String(), false
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("rofi-tmuxp %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("rofi-tmuxp %s\n", version)
}

// run lists sessions, or opens the one named by the first argument.
// Extra arguments are ignored.
func run(d deps, opts *options, args []string) error {
	log := logger.New(d.stderr, logger.LevelFor(opts.quiet))

	settings, err := loadSettings(d.lookup, opts.settingsFile)
	if err != nil {
		return err
	}
	logger.WithComponent(log, "cli").Debug("Loaded settings", "path", settings.FilePath())

	envFile := opts.envFile
	if envFile == "" {
		envFile = settings.EnvFile
	}
	extra, err := config.LoadEnvFile(envFile, d.lookup)
	if err != nil {
		return err
	}
	lookup := tmuxp.Overlay(d.lookup, extra)

	catalog := session.NewCatalog(tmuxp.Expander{Lookup: lookup, Unset: settings.UnsetPolicy()}, log)
	sessions, err := catalog.List(workspaceDir(opts, settings, lookup))
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, name := range session.Names(sessions) {
			fmt.Fprintln(d.stdout, name)
		}
		return nil
	}

	launcher := process.NewLauncher(d.spawner, settings.Terminal, settings.Loader, settings.Dialog, log)
	name := args[0]
	path, err := session.Lookup(sessions, name)
	if errors.Is(err, errors.KindNotFound) {
		return reportMissing(log, errorReporter(settings, launcher, log), name)
	}
	if err != nil {
		return err
	}
	return launcher.Launch(path)
}

func reportMissing(log *slog.Logger, reporter process.Reporter, name string) error {
	msg := fmt.Sprintf("No such session: %s", name)
	logger.WithComponent(log, "cli").Warn(msg)
	return reporter.ReportError(msg)
}

func errorReporter(settings *config.Settings, launcher *process.Launcher, log *slog.Logger) process.Reporter {
	if settings.UseNotifications() {
		return notification.NewReporter(log)
	}
	return launcher
}

func loadSettings(lookup tmuxp.LookupFunc, path string) (*config.Settings, error) {
	if path != "" {
		return config.LoadFile(config.ExpandPath(path, lookup), lookup)
	}
	return config.Load(lookup)
}

// workspaceDir picks the directory to scan: --config-dir, then the
// config_dir setting, then tmuxp's own lookup order.
func workspaceDir(opts *options, settings *config.Settings, lookup tmuxp.LookupFunc) string {
	if opts.configDir != "" {
		return config.ExpandPath(opts.configDir, lookup)
	}
	if settings.ConfigDir != "" {
		return config.ExpandPath(settings.ConfigDir, lookup)
	}
	return tmuxp.WorkspaceDir(lookup)
}
