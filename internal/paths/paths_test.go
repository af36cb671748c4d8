// Tests for directory resolution precedence chains.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("/flag/config")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if got != filepath.FromSlash("/flag/config") {
		t.Errorf("flag should win over env, got %q", got)
	}

	got, err = ResolveConfigDir("")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if got != filepath.FromSlash("/env/config") {
		t.Errorf("env should win when flag is empty, got %q", got)
	}
}

func TestResolveConfigDirDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		got, err := ResolveConfigDir("")
		if err != nil {
			t.Fatalf("ResolveConfigDir failed: %v", err)
		}
		if got != filepath.Join("/xdg", "strata") {
			t.Errorf("XDG default mismatch: %q", got)
		}
	} else {
		got, err := ResolveConfigDir("")
		if err != nil {
			t.Fatalf("ResolveConfigDir failed: %v", err)
		}
		if filepath.Base(got) != "strata" {
			t.Errorf("default config dir should end in strata, got %q", got)
		}
	}
}

func TestResolveConfigDirRelativeFlag(t *testing.T) {
	got, err := ResolveConfigDir("rel/config")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("resolved dir should be absolute, got %q", got)
	}
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	got, err := ResolveDataDir("/flag/data", "/yaml/data")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if got != filepath.FromSlash("/flag/data") {
		t.Errorf("flag should win, got %q", got)
	}

	got, err = ResolveDataDir("", "/yaml/data")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if got != filepath.FromSlash("/yaml/data") {
		t.Errorf("config value should win over env, got %q", got)
	}

	got, err = ResolveDataDir("", "")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if got != filepath.FromSlash("/env/data") {
		t.Errorf("env should win when flag and config are empty, got %q", got)
	}
}

func TestResolveDataDirDefault(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ResolveDataDir("", "")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if got != filepath.Join(cwd, DefaultDataDirName) {
		t.Errorf("default should be CWD-relative, got %q", got)
	}
}
