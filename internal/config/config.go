// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/The-Compiler/journalwatch/internal/log"
)

// Type is the in-memory representation of the loaded configuration.
//
// Fields:
//   - Source: absolute path of the YAML file loaded.
//   - Data: raw key/value tree unmarshaled from YAML.
//
// Data is intentionally kept as map[string]any; callers use typed getters.
type Type struct {
	Source string
	Data   map[string]interface{}
}

// Config holds the global, lazily-initialized configuration instance.
var Config Type

// ConfigDir returns the directory holding the pattern and config files.
func ConfigDir() string {
	if dir := os.Getenv("JOURNALWATCH_CONFIG_DIR"); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "journalwatch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "journalwatch")
}

// DataDir returns the directory holding run state.
func DataDir() string {
	if dir := os.Getenv("JOURNALWATCH_DATA_DIR"); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "journalwatch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "journalwatch")
}

// PatternFile returns the path of the rule file.
func PatternFile() string {
	return filepath.Join(ConfigDir(), "patterns")
}

// ConfigFile returns the path of the YAML config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "journalwatch.yaml")
}

// EnsureFiles creates the config and data directories and writes the default
// config and pattern files when they do not exist yet. Existing files are
// left alone.
func EnsureFiles() error {
	for _, dir := range []string{ConfigDir(), DataDir()} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	for _, f := range []struct {
		path, content string
	}{
		{ConfigFile(), DefaultConfig},
		{PatternFile(), DefaultPatterns},
	} {
		if _, err := os.Stat(f.path); err == nil {
			continue
		}
		log.Infof("writing default %s", f.path)
		if err := os.WriteFile(f.path, []byte(f.content), 0o600); err != nil {
			return fmt.Errorf("write %s: %w", f.path, err)
		}
	}
	return nil
}

// GetString returns the string value for the given dotted key path. If the
// key is not found and a single defaultValue is provided, the default is
// returned.
func GetString(key string, defaultValue ...string) (string, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string", key)
	}
	return s, nil
}

// Load reads the YAML configuration file and populates the global Config. A
// missing file is not an error to the caller beyond the returned error value;
// journalwatch runs fine without a config file.
func Load() (Type, error) {
	path := ConfigFile()

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("parse %s: %w", path, err)
	}

	Config = Type{
		Source: path,
		Data:   data}

	return Config, nil
}

// get traverses the configuration tree using a dotted key path (e.g.
// "mail.subject") and returns the raw value if found.
func (cfg *Type) get(kspec string) (any, error) {
	keys := strings.Split(kspec, ".")
	var current interface{} = cfg.Data

	for _, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value at %q", kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("no value at %q", kspec)
		}
	}

	return current, nil
}
