// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Configuration loading with precedence: ENV > config file > defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sony-level/clrun/internal/lang"
)

// DefaultStaleAfter is how old a leftover binary must be before it is swept
const DefaultStaleAfter = 24 * time.Hour

// File represents the optional YAML config file
type File struct {
	CCompiler   string `yaml:"c_compiler"`
	CppCompiler string `yaml:"cpp_compiler"`
	BuildDir    string `yaml:"build_dir"`
	Verbose     *bool  `yaml:"verbose"`
	Timeout     string `yaml:"timeout"`     // e.g. "30s"
	StaleAfter  string `yaml:"stale_after"` // e.g. "24h"
}

// Config is the resolved runtime configuration
type Config struct {
	CCompiler   string
	CppCompiler string
	BuildDir    string // empty means <home>/.clrun/build
	Verbose     bool
	RunTimeout  time.Duration // zero means no timeout
	StaleAfter  time.Duration
	Source      string // path of the config file used, empty if none
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		CCompiler:   lang.C.Compiler(),
		CppCompiler: lang.Cpp.Compiler(),
		StaleAfter:  DefaultStaleAfter,
	}
}

// CompilerFor returns the compiler frontend configured for l,
// falling back to the language's default frontend
func (c *Config) CompilerFor(l lang.Language) string {
	var override string
	switch l {
	case lang.C:
		override = c.CCompiler
	case lang.Cpp:
		override = c.CppCompiler
	}
	if override != "" {
		return override
	}
	return l.Compiler()
}

// Paths returns the config file locations to check, in order
func Paths(home string) []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "clrun", "config.yaml"))
	}

	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", "clrun", "config.yaml"),
			filepath.Join(home, ".clrun", "config.yaml"),
		)
	}

	return paths
}

// LoadFile reads the first config file found in paths.
// Returns nil and an empty path when none exists.
func LoadFile(paths []string) (*File, string, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("read config %s: %w", path, err)
		}

		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, "", fmt.Errorf("parse config %s: %w", path, err)
		}
		return &f, path, nil
	}
	return nil, "", nil
}

// Load resolves configuration for the given home directory.
// home may be empty when it cannot be determined.
func Load(home string) (*Config, error) {
	cfg := Default()

	file, source, err := LoadFile(Paths(home))
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := cfg.applyFile(file); err != nil {
			return nil, fmt.Errorf("config %s: %w", source, err)
		}
		cfg.Source = source
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(f *File) error {
	if f.CCompiler != "" {
		c.CCompiler = f.CCompiler
	}
	if f.CppCompiler != "" {
		c.CppCompiler = f.CppCompiler
	}
	if f.BuildDir != "" {
		c.BuildDir = f.BuildDir
	}
	if f.Verbose != nil {
		c.Verbose = *f.Verbose
	}
	if f.Timeout != "" {
		d, err := parseDuration("timeout", f.Timeout)
		if err != nil {
			return err
		}
		c.RunTimeout = d
	}
	if f.StaleAfter != "" {
		d, err := parseDuration("stale_after", f.StaleAfter)
		if err != nil {
			return err
		}
		c.StaleAfter = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CLRUN_CC"); v != "" {
		c.CCompiler = v
	}
	if v := os.Getenv("CLRUN_CXX"); v != "" {
		c.CppCompiler = v
	}
	if v := os.Getenv("CLRUN_BUILD_DIR"); v != "" {
		c.BuildDir = v
	}
	if v := os.Getenv("CLRUN_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("CLRUN_VERBOSE: invalid boolean %q", v)
		}
		c.Verbose = b
	}
	if v := os.Getenv("CLRUN_TIMEOUT"); v != "" {
		d, err := parseDuration("CLRUN_TIMEOUT", v)
		if err != nil {
			return err
		}
		c.RunTimeout = d
	}
	if v := os.Getenv("CLRUN_STALE_AFTER"); v != "" {
		d, err := parseDuration("CLRUN_STALE_AFTER", v)
		if err != nil {
			return err
		}
		c.StaleAfter = d
	}
	return nil
}

func parseDuration(name, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", name, raw)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %q", name, raw)
	}
	return d, nil
}
