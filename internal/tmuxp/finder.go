package tmuxp

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions are the workspace file types tmuxp loads.
var Extensions = []string{".yml", ".yaml", ".json"}

// IsConfigFile reports whether name looks like a workspace file: a
// recognized extension and not a dotfile.
func IsConfigFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := filepath.Ext(name)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ConfigsInDir returns the paths of workspace files directly inside dir, in
// directory order. A missing dir yields no paths and no error.
func ConfigsInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsConfigFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// WorkspaceDir resolves the tmuxp workspace directory. Candidates, in order:
// $TMUXP_CONFIGDIR, $XDG_CONFIG_HOME/tmuxp (or ~/.config/tmuxp), ~/.tmuxp.
// The first existing directory wins; ~/.tmuxp is returned when none exist.
func WorkspaceDir(lookup LookupFunc) string {
	if lookup == nil {
		lookup = EnvLookup(nil)
	}
	home := homeDir(lookup)

	var candidates []string
	if dir, ok := lookup("TMUXP_CONFIGDIR"); ok && dir != "" {
		candidates = append(candidates, dir)
	}
	if xdg, ok := lookup("XDG_CONFIG_HOME"); ok && xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "tmuxp"))
	} else {
		candidates = append(candidates, filepath.Join(home, ".config", "tmuxp"))
	}
	candidates = append(candidates, filepath.Join(home, ".tmuxp"))

	exp := Expander{Lookup: MapLookup(map[string]string{"HOME": home})}
	for _, dir := range candidates {
		dir = exp.expandHome(dir)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return candidates[len(candidates)-1]
}

func homeDir(lookup LookupFunc) string {
	if home, ok := lookup("HOME"); ok && home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
