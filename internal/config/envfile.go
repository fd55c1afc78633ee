package config

import (
	"github.com/joho/godotenv"

	"github.com/rofi-tmuxp/rofi-tmuxp/internal/errors"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/tmuxp"
)

// LoadEnvFile reads extra expansion variables from a dotenv file. The
// process environment is left untouched. An empty path yields no variables.
func LoadEnvFile(path string, lookup tmuxp.LookupFunc) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	path = ExpandPath(path, lookup)
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.E(errors.Op("config.LoadEnvFile"), errors.KindConfig, "failed to read env file "+path, err)
	}
	return vars, nil
}

// ExpandPath expands ~ and environment placeholders in a path setting.
func ExpandPath(path string, lookup tmuxp.LookupFunc) string {
	if path == "" {
		return ""
	}
	return tmuxp.Expander{Lookup: lookup}.String(path)
}
