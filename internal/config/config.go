package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/plprompt/pkg/style"
)

// Config file locations.
const (
	LocalConfigName = ".plprompt.yaml"
	XDGConfigDir    = "plprompt"
	XDGConfigName   = "config.yaml"
)

// AppConfig represents the contents of a plprompt YAML file.
type AppConfig struct {
	Mode        string `yaml:"mode,omitempty"`
	Dialect     string `yaml:"dialect,omitempty"`
	Prompt      string `yaml:"prompt,omitempty"`
	RightPrompt string `yaml:"right_prompt,omitempty"`
	// ReplaceFields discards the default field styles instead of merging
	// Fields over them.
	ReplaceFields bool                        `yaml:"replace_fields,omitempty"`
	Fields        map[string]style.FieldStyle `yaml:"fields,omitempty"`
}

// ReadConfig parses a config file.
func ReadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data. Empty data yields an empty config.
func ParseConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Palette builds the field palette described by the config. An entry
// without a separator keeps the separator already registered for its field.
func (c *AppConfig) Palette() *style.Palette {
	p := style.DefaultPalette()
	if c == nil {
		return p
	}
	if c.ReplaceFields {
		p = style.NewPalette()
	}
	for name, fs := range c.Fields {
		if prev, ok := p.Style(name); ok && fs.Separator == "" {
			fs.Separator = prev.Separator
		}
		p.Register(name, fs)
	}
	return p
}

// findConfigPath looks for a config file in the working directory, then in
// the user config directory. It returns "" when none exists.
func findConfigPath() string {
	if _, err := os.Stat(LocalConfigName); err == nil {
		return LocalConfigName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not usable for an XDG path.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, XDGConfigDir, XDGConfigName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// loadConfig reads the config at an explicit path, or the discovered one.
// A missing or broken discovered file is reported as a warning and
// defaults are used; an explicit path must be readable and valid.
func loadConfig(explicit string) (cfg *AppConfig, path string, warning string, err error) {
	if explicit != "" {
		cfg, err = ReadConfig(explicit)
		if err != nil {
			return nil, explicit, "", err
		}
		return cfg, explicit, "", nil
	}

	path = findConfigPath()
	if path == "" {
		return &AppConfig{}, "", "", nil
	}
	cfg, err = ReadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &AppConfig{}, "", "", nil
		}
		return &AppConfig{}, path, fmt.Sprintf("ignoring config file %s: %v", path, err), nil
	}
	return cfg, path, "", nil
}
