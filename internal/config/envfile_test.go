package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rofi-tmuxp/rofi-tmuxp/internal/errors"
	"github.com/rofi-tmuxp/rofi-tmuxp/internal/tmuxp"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmuxp.env")
	content := "# project variables\nPROJECT=rofi\nexport EDITOR=nvim\nQUOTED=\"two words\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	vars, err := LoadEnvFile(path, tmuxp.MapLookup(nil))
	if err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}

	want := map[string]string{"PROJECT": "rofi", "EDITOR": "nvim", "QUOTED": "two words"}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%s] = %q, want %q", k, vars[k], v)
		}
	}
	if _, ok := os.LookupEnv("QUOTED"); ok {
		t.Error("LoadEnvFile must not modify the process environment")
	}
}

func TestLoadEnvFile_TildePath(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, ".tmuxp.env"), []byte("A=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	vars, err := LoadEnvFile("~/.tmuxp.env", tmuxp.MapLookup(map[string]string{"HOME": home}))
	if err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if vars["A"] != "1" {
		t.Errorf("vars = %v, want A=1", vars)
	}
}

func TestLoadEnvFile_Empty(t *testing.T) {
	vars, err := LoadEnvFile("", nil)
	if err != nil || vars != nil {
		t.Errorf("LoadEnvFile(\"\") = (%v, %v), want (nil, nil)", vars, err)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	_, err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env"), tmuxp.MapLookup(nil))
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("kind = %v, want KindConfig", errors.GetKind(err))
	}
}

func TestExpandPath(t *testing.T) {
	lookup := tmuxp.MapLookup(map[string]string{"HOME": "/h", "WS": "work"})

	tests := map[string]string{
		"":                 "",
		"/abs/path":        "/abs/path",
		"~/tmuxp":          "/h/tmuxp",
		"~/tmuxp/${WS}":    "/h/tmuxp/work",
		"/srv/$WS/configs": "/srv/work/configs",
	}
	for in, want := range tests {
		if got := ExpandPath(in, lookup); got != want {
			t.Errorf("ExpandPath(%q) = %q, want %q", in, got, want)
		}
	}
}
