package tmuxp

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// UnsetPolicy decides what happens to a placeholder naming an unset variable.
type UnsetPolicy int

const (
	// UnsetKeep leaves the placeholder text as written, like os.path.expandvars.
	UnsetKeep UnsetPolicy = iota
	// UnsetEmpty replaces the placeholder with the empty string.
	UnsetEmpty
)

func (p UnsetPolicy) String() string {
	switch p {
	case UnsetEmpty:
		return "empty"
	default:
		return "keep"
	}
}

// ParseUnsetPolicy converts a settings value into an UnsetPolicy.
// The empty string selects the default.
func ParseUnsetPolicy(s string) (UnsetPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return UnsetKeep, nil
	case "empty":
		return UnsetEmpty, nil
	default:
		return UnsetKeep, fmt.Errorf("unknown unset variable policy %q (want keep or empty)", s)
	}
}

// LookupFunc resolves an environment variable.
type LookupFunc func(name string) (string, bool)

// EnvLookup returns a LookupFunc over the process environment. Values in
// overrides win over the environment.
func EnvLookup(overrides map[string]string) LookupFunc {
	return Overlay(os.LookupEnv, overrides)
}

// Overlay returns a LookupFunc that consults overrides before base.
func Overlay(base LookupFunc, overrides map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		if v, ok := overrides[name]; ok {
			return v, true
		}
		if base == nil {
			return "", false
		}
		return base(name)
	}
}

// MapLookup returns a LookupFunc backed only by env.
func MapLookup(env map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

var placeholderRE = regexp.MustCompile(`\$(\{[A-Za-z_][A-Za-z0-9_]*\}|[A-Za-z_][A-Za-z0-9_]*)`)

// Expander substitutes environment placeholders inside config values.
type Expander struct {
	Lookup LookupFunc
	Unset  UnsetPolicy
}

// Config expands every string value in cfg, in place, and returns cfg.
// Keys are left alone.
func (e Expander) Config(cfg Config) Config {
	for k, v := range cfg {
		cfg[k] = e.value(v)
	}
	return cfg
}

func (e Expander) value(v any) any {
	switch t := v.(type) {
	case string:
		return e.String(t)
	case Config:
		// yaml.v3 decodes nested mappings into the parent's map type.
		return e.Config(t)
	case map[string]any:
		for k, child := range t {
			t[k] = e.value(child)
		}
		return t
	case map[any]any:
		for k, child := range t {
			t[k] = e.value(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = e.value(child)
		}
		return t
	default:
		return v
	}
}

// String expands a leading ~ and then every $NAME or ${NAME} placeholder.
func (e Expander) String(s string) string {
	s = e.expandHome(s)
	if !strings.Contains(s, "$") {
		return s
	}
	return placeholderRE.ReplaceAllStringFunc(s, func(m string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(m[1:], "{"), "}")
		if v, ok := e.lookup(name); ok {
			return v
		}
		if e.Unset == UnsetEmpty {
			return ""
		}
		return m
	})
}

func (e Expander) expandHome(s string) string {
	if s != "~" && !strings.HasPrefix(s, "~/") {
		return s
	}
	home, ok := e.lookup("HOME")
	if !ok || home == "" {
		return s
	}
	return home + s[1:]
}

func (e Expander) lookup(name string) (string, bool) {
	if e.Lookup == nil {
		return os.LookupEnv(name)
	}
	return e.Lookup(name)
}
