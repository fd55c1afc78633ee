package session

import (
	"log/slog"
	"sort"

	"github.com/rofi-tmuxp/rofi-tmuxp/internal/errors"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/logger"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/tmuxp"
)

// Outcome tags the result of loading one workspace file.
type Outcome int

const (
	// Loaded means the file parsed and named a session.
	Loaded Outcome = iota
	// Invalid means the file parsed but has no usable session_name.
	Invalid
	// Failed means the file could not be read or parsed.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case Invalid:
		return "invalid"
	default:
		return "failed"
	}
}

// Result is the outcome of loading a single workspace file.
type Result struct {
	Path    string
	Outcome Outcome
	Name    string       // set when Outcome is Loaded
	Config  tmuxp.Config // set when Outcome is Loaded
	Err     error        // set when Outcome is Invalid or Failed
}

// Catalog discovers tmuxp sessions in a workspace directory.
type Catalog struct {
	expander tmuxp.Expander
	log      *slog.Logger
}

// NewCatalog creates a catalog that expands configs with exp and reports
// skipped files to log.
func NewCatalog(exp tmuxp.Expander, log *slog.Logger) *Catalog {
	return &Catalog{
		expander: exp,
		log:      logger.WithComponent(log, "sessions"),
	}
}

// Load reads, expands and validates one workspace file.
func (c *Catalog) Load(path string) Result {
	cfg, err := tmuxp.ReadFile(path)
	if err != nil {
		return Result{Path: path, Outcome: Failed, Err: err}
	}

	c.expander.Config(cfg)

	name, ok := cfg.SessionName()
	if !ok {
		return Result{Path: path, Outcome: Invalid, Err: errors.ConfigMissingSessionName()}
	}
	return Result{Path: path, Outcome: Loaded, Name: name, Config: cfg}
}

// List maps session names to the workspace files defining them. Files that
// fail to load are logged and skipped. When two files name the same session,
// the one listed later wins.
func (c *Catalog) List(dir string) (map[string]string, error) {
	paths, err := tmuxp.ConfigsInDir(dir)
	if err != nil {
		return nil, err
	}

	sessions := make(map[string]string, len(paths))
	for _, path := range paths {
		res := c.Load(path)
		switch res.Outcome {
		case Loaded:
			if prev, ok := sessions[res.Name]; ok {
				c.log.Debug("Session name redefined", "session", res.Name, "previous", prev, "path", path)
			}
			sessions[res.Name] = path
		case Invalid:
			c.log.Warn("Invalid config", "path", path, "error", errors.MissingSessionName)
		default:
			c.log.Error("Error loading config", "path", path, "kind", errors.GetKind(res.Err).String(), "error", res.Err.Error())
		}
	}
	return sessions, nil
}

// Names returns the session names of a catalog in lexicographic order.
func Names(sessions map[string]string) []string {
	names := make([]string, 0, len(sessions))
	for name := range sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the workspace file for name, or a KindNotFound error.
func Lookup(sessions map[string]string, name string) (string, error) {
	path, ok := sessions[name]
	if !ok {
		return "", errors.SessionNotFound(name)
	}
	return path, nil
}
