package tmuxp

import (
	"testing"
)

func TestExpander_String(t *testing.T) {
	env := MapLookup(map[string]string{
		"EXPAND_ENV": "expanded",
		"HOME":       "/home/tester",
		"EMPTY":      "",
	})

	tests := []struct {
		name  string
		in    string
		keep  string
		empty string
	}{
		{"no placeholder", "plain name", "plain name", "plain name"},
		{"braced", "${EXPAND_ENV} session", "expanded session", "expanded session"},
		{"bare", "$EXPAND_ENV session", "expanded session", "expanded session"},
		{"set but empty", "a${EMPTY}b", "ab", "ab"},
		{"unset braced", "${NOPE} session", "${NOPE} session", " session"},
		{"unset bare", "$NOPE-x", "$NOPE-x", "-x"},
		{"mixed", "${EXPAND_ENV}/${NOPE}", "expanded/${NOPE}", "expanded/"},
		{"lone dollar", "costs $5", "costs $5", "costs $5"},
		{"home", "~/projects", "/home/tester/projects", "/home/tester/projects"},
		{"bare home", "~", "/home/tester", "/home/tester"},
		{"tilde in middle", "a ~/b", "a ~/b", "a ~/b"},
		{"tilde user", "~bob/x", "~bob/x", "~bob/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep := Expander{Lookup: env, Unset: UnsetKeep}
			if got := keep.String(tt.in); got != tt.keep {
				t.Errorf("UnsetKeep: String(%q) = %q, want %q", tt.in, got, tt.keep)
			}
			empty := Expander{Lookup: env, Unset: UnsetEmpty}
			if got := empty.String(tt.in); got != tt.empty {
				t.Errorf("UnsetEmpty: String(%q) = %q, want %q", tt.in, got, tt.empty)
			}
		})
	}
}

func TestExpander_ConfigRecursive(t *testing.T) {
	cfg := Config{
		"session_name":    "${PROJECT} dev",
		"start_directory": "~/src/${PROJECT}",
		"windows": []any{
			map[string]any{
				"window_name": "$PROJECT",
				"panes":       []any{"echo ${PROJECT}", nil, 3},
			},
		},
		"options":    map[any]any{1: "${PROJECT}"},
		"${PROJECT}": "key untouched",
		"count":      2,
	}

	exp := Expander{Lookup: MapLookup(map[string]string{"PROJECT": "rofi", "HOME": "/h"})}
	exp.Config(cfg)

	if got := cfg["session_name"]; got != "rofi dev" {
		t.Errorf("session_name = %v, want %q", got, "rofi dev")
	}
	if got := cfg["start_directory"]; got != "/h/src/rofi" {
		t.Errorf("start_directory = %v, want %q", got, "/h/src/rofi")
	}
	window := cfg["windows"].([]any)[0].(map[string]any)
	if got := window["window_name"]; got != "rofi" {
		t.Errorf("window_name = %v, want %q", got, "rofi")
	}
	panes := window["panes"].([]any)
	if panes[0] != "echo rofi" {
		t.Errorf("panes[0] = %v, want %q", panes[0], "echo rofi")
	}
	if panes[1] != nil || panes[2] != 3 {
		t.Errorf("non-string panes changed: %v", panes)
	}
	if got := cfg["options"].(map[any]any)[1]; got != "rofi" {
		t.Errorf("options[1] = %v, want %q", got, "rofi")
	}
	if got := cfg["${PROJECT}"]; got != "key untouched" {
		t.Errorf("keys must not be expanded, got %v", got)
	}
	if got := cfg["count"]; got != 2 {
		t.Errorf("count = %v, want 2", got)
	}
}

func TestExpander_ParsedNestedDocument(t *testing.T) {
	doc := "session_name: ${P}\n" +
		"environment:\n  FOO: ${P}\n" +
		"windows:\n  - window_name: ${P}\n    panes: [\"echo ${P}\"]\n"
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	Expander{Lookup: MapLookup(map[string]string{"P": "proj"})}.Config(cfg)

	if got := cfg["session_name"]; got != "proj" {
		t.Errorf("session_name = %v, want proj", got)
	}
	if got := asMap(t, cfg["environment"])["FOO"]; got != "proj" {
		t.Errorf("environment.FOO = %v, want proj", got)
	}
	window := asMap(t, cfg["windows"].([]any)[0])
	if got := window["window_name"]; got != "proj" {
		t.Errorf("window_name = %v, want proj", got)
	}
	if got := window["panes"].([]any)[0]; got != "echo proj" {
		t.Errorf("panes[0] = %v, want %q", got, "echo proj")
	}
}

func asMap(t *testing.T, v any) map[string]any {
	t.Helper()
	switch m := v.(type) {
	case Config:
		return m
	case map[string]any:
		return m
	}
	t.Fatalf("value %v (%T) is not a mapping", v, v)
	return nil
}

func TestExpander_DefaultsToProcessEnv(t *testing.T) {
	t.Setenv("ROFI_TMUXP_TEST_VAR", "from-env")

	var exp Expander
	if got := exp.String("${ROFI_TMUXP_TEST_VAR}"); got != "from-env" {
		t.Errorf("String() = %q, want %q", got, "from-env")
	}
}

func TestEnvLookup_OverridesWin(t *testing.T) {
	t.Setenv("ROFI_TMUXP_TEST_VAR", "from-env")
	t.Setenv("ROFI_TMUXP_OTHER", "other")

	lookup := EnvLookup(map[string]string{"ROFI_TMUXP_TEST_VAR": "from-file"})

	if v, _ := lookup("ROFI_TMUXP_TEST_VAR"); v != "from-file" {
		t.Errorf("override lookup = %q, want %q", v, "from-file")
	}
	if v, _ := lookup("ROFI_TMUXP_OTHER"); v != "other" {
		t.Errorf("env lookup = %q, want %q", v, "other")
	}
	if _, ok := lookup("ROFI_TMUXP_DEFINITELY_UNSET"); ok {
		t.Error("unset variable reported as set")
	}
}

func TestOverlay(t *testing.T) {
	base := MapLookup(map[string]string{"A": "base", "B": "base"})
	lookup := Overlay(base, map[string]string{"A": "override"})

	if v, _ := lookup("A"); v != "override" {
		t.Errorf("A = %q, want override", v)
	}
	if v, _ := lookup("B"); v != "base" {
		t.Errorf("B = %q, want base", v)
	}
	if _, ok := Overlay(nil, nil)("A"); ok {
		t.Error("nil base should report unset")
	}
}

func TestParseUnsetPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    UnsetPolicy
		wantErr bool
	}{
		{"", UnsetKeep, false},
		{"keep", UnsetKeep, false},
		{"KEEP", UnsetKeep, false},
		{" empty ", UnsetEmpty, false},
		{"blank", UnsetKeep, true},
	}

	for _, tt := range tests {
		got, err := ParseUnsetPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseUnsetPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseUnsetPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnsetPolicy_String(t *testing.T) {
	if UnsetKeep.String() != "keep" || UnsetEmpty.String() != "empty" {
		t.Errorf("unexpected names: %q, %q", UnsetKeep, UnsetEmpty)
	}
}
