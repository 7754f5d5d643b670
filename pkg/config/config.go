package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/vertti/mdread/pkg/output"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = ".mdread.toml"

// ErrNotFound is returned by FindFile when no config file exists.
var ErrNotFound = errors.New(FileName + " not found")

// Config holds presentation settings for the CLI.
type Config struct {
	Color    output.ColorMode
	LogLevel log.Level
}

type fileConfig struct {
	Color    string `toml:"color"`
	LogLevel string `toml:"log_level"`
}

// Default returns the settings used when no config file is present.
func Default() Config {
	return Config{
		Color:    output.ColorAuto,
		LogLevel: log.WarnLevel,
	}
}

// FindFile returns explicitPath if set and present. Otherwise it walks up from
// startDir looking for FileName, stopping at the home directory, at a directory
// containing .git, or at the filesystem root.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %w", err)
		}
		return explicitPath, nil
	}

	// A missing home directory only disables the home stop.
	homeDir, _ := os.UserHomeDir()

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", ErrNotFound
}

// Load decodes a TOML config file over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load config: unknown keys: %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("color") {
		mode, err := output.ParseColorMode(raw.Color)
		if err != nil {
			return Config{}, fmt.Errorf("parse color: %w", err)
		}
		cfg.Color = mode
	}

	if meta.IsDefined("log_level") {
		level, err := log.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Resolve finds and loads the config file. With no explicit path and no file
// found, it returns Default and an empty path.
func Resolve(startDir, explicitPath string) (Config, string, error) {
	path, err := FindFile(startDir, explicitPath)
	if errors.Is(err, ErrNotFound) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}

	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
