package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the decoder for a file name. Anything that is not .toml
// is treated as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses a document on top of the defaults, so partial documents
// only override the fields they mention.
func Decode(data []byte, format Format) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Encode renders a config in the given format.
func Encode(cfg RunnerConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// LoadRunner loads the runner configuration and reports where it came from.
// Search order: customPath -> ~/.javirun/configs/runner.{yaml,toml} ->
// ./configs/runner.{yaml,toml} -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error;
// broken files on the search path are skipped.
func LoadRunner(customPath string) (RunnerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Decode(defaultRunnerYAML, FormatYAML)
	if err != nil {
		return DefaultRunnerConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

func loadFile(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, FormatFor(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".javirun", "configs")
		paths = append(paths, filepath.Join(dir, "runner.yaml"), filepath.Join(dir, "runner.toml"))
	}
	return append(paths,
		filepath.Join("configs", "runner.yaml"),
		filepath.Join("configs", "runner.toml"),
	)
}
