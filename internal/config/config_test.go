// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Config loading tests

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sony-level/clrun/internal/config"
	"github.com/sony-level/clrun/internal/lang"
)

// isolate clears every variable the loader reads
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	for _, key := range []string{
		"XDG_CONFIG_HOME", "CLRUN_CC", "CLRUN_CXX", "CLRUN_BUILD_DIR",
		"CLRUN_VERBOSE", "CLRUN_TIMEOUT", "CLRUN_STALE_AFTER",
	} {
		t.Setenv(key, "")
	}
	return home
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CCompiler != "clang" || cfg.CppCompiler != "clang++" {
		t.Errorf("compilers = %q/%q, want clang/clang++", cfg.CCompiler, cfg.CppCompiler)
	}
	if cfg.BuildDir != "" {
		t.Errorf("BuildDir = %q, want empty", cfg.BuildDir)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
	if cfg.RunTimeout != 0 {
		t.Errorf("RunTimeout = %v, want 0", cfg.RunTimeout)
	}
	if cfg.StaleAfter != config.DefaultStaleAfter {
		t.Errorf("StaleAfter = %v, want %v", cfg.StaleAfter, config.DefaultStaleAfter)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
}

func TestCompilerFor_FallsBackToLanguageDefault(t *testing.T) {
	empty := &config.Config{}
	defaults := config.Default()

	for _, l := range []lang.Language{lang.C, lang.Cpp} {
		if got := empty.CompilerFor(l); got != l.Compiler() {
			t.Errorf("empty CompilerFor(%s) = %q, want %q", l, got, l.Compiler())
		}
		if got := defaults.CompilerFor(l); got != l.Compiler() {
			t.Errorf("Default().CompilerFor(%s) = %q, want %q", l, got, l.Compiler())
		}
	}
}

func TestLoad_File(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".clrun", "config.yaml")
	writeConfig(t, path, `
c_compiler: gcc
cpp_compiler: g++
build_dir: /tmp/clrun-build
verbose: true
timeout: 30s
stale_after: 2h
`)

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
	if cfg.CompilerFor(lang.C) != "gcc" {
		t.Errorf("CompilerFor(C) = %q, want gcc", cfg.CompilerFor(lang.C))
	}
	if cfg.CompilerFor(lang.Cpp) != "g++" {
		t.Errorf("CompilerFor(Cpp) = %q, want g++", cfg.CompilerFor(lang.Cpp))
	}
	if cfg.BuildDir != "/tmp/clrun-build" {
		t.Errorf("BuildDir = %q", cfg.BuildDir)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
	if cfg.RunTimeout != 30*time.Second {
		t.Errorf("RunTimeout = %v, want 30s", cfg.RunTimeout)
	}
	if cfg.StaleAfter != 2*time.Hour {
		t.Errorf("StaleAfter = %v, want 2h", cfg.StaleAfter)
	}
}

func TestLoad_XDGTakesPrecedence(t *testing.T) {
	home := isolate(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	writeConfig(t, filepath.Join(xdg, "clrun", "config.yaml"), "c_compiler: from-xdg\n")
	writeConfig(t, filepath.Join(home, ".clrun", "config.yaml"), "c_compiler: from-home\n")

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CCompiler != "from-xdg" {
		t.Errorf("CCompiler = %q, want from-xdg", cfg.CCompiler)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".clrun", "config.yaml"), "c_compiler: gcc\nverbose: true\n")

	t.Setenv("CLRUN_CC", "tcc")
	t.Setenv("CLRUN_VERBOSE", "false")
	t.Setenv("CLRUN_TIMEOUT", "5s")

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CCompiler != "tcc" {
		t.Errorf("CCompiler = %q, want tcc", cfg.CCompiler)
	}
	if cfg.Verbose {
		t.Error("CLRUN_VERBOSE=false should override file")
	}
	if cfg.RunTimeout != 5*time.Second {
		t.Errorf("RunTimeout = %v, want 5s", cfg.RunTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "malformed yaml", file: "c_compiler: [unterminated\n"},
		{name: "bad file timeout", file: "timeout: soon\n"},
		{name: "negative stale_after", file: "stale_after: -1h\n"},
		{name: "bad env verbose", env: map[string]string{"CLRUN_VERBOSE": "maybe"}},
		{name: "bad env timeout", env: map[string]string{"CLRUN_TIMEOUT": "10 parsecs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := isolate(t)
			if tt.file != "" {
				writeConfig(t, filepath.Join(home, ".clrun", "config.yaml"), tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := config.Load(home); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestPaths_NoHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	if paths := config.Paths(""); len(paths) != 0 {
		t.Errorf("Paths(\"\") = %v, want none", paths)
	}
}
