package config

import (
	"fmt"
	"os"

	"github.com/dkoosis/plprompt/pkg/glyph"
	"github.com/dkoosis/plprompt/pkg/markup"
	"github.com/dkoosis/plprompt/pkg/prompt"
	"github.com/dkoosis/plprompt/pkg/style"
)

// Environment variable names.
const (
	EnvMode        = "POWERLINE_MODE"
	EnvDialect     = "PLPROMPT_DIALECT"
	EnvConfig      = "PLPROMPT_CONFIG"
	EnvPrompt      = "PLPROMPT_PROMPT"
	EnvRightPrompt = "PLPROMPT_RIGHT_PROMPT"
	EnvDebug       = "PLPROMPT_DEBUG"
)

// Resolution sources, recorded for diagnostics.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// CliFlags holds the values of command-line flags. Empty strings mean the
// flag was not given.
type CliFlags struct {
	ConfigPath string
	Mode       string
	Dialect    string
	Debug      bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	// Mode is the requested glyph mode; empty selects the default mode.
	Mode      string
	Modes     *glyph.Registry
	Dialect   markup.Dialect
	Templates prompt.Templates
	Palette   *style.Palette
	Debug     bool

	// Resolution metadata (for debugging)
	ConfigPath    string
	ModeSource    string
	DialectSource string
	Warnings      []string
}

// RendererOptions returns the prompt renderer options for the configuration.
func (c *ResolvedConfig) RendererOptions() prompt.Options {
	return prompt.Options{
		Templates: c.Templates,
		Palette:   c.Palette,
		Modes:     c.Modes,
		Mode:      c.Mode,
		Dialect:   c.Dialect,
	}
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
//
// Resolution order:
//  1. Load the config file (--config, PLPROMPT_CONFIG, or discovery)
//  2. Apply CLI flags (highest priority)
//  3. Apply environment variables (if not set by CLI)
//  4. Apply file config (if not set by CLI/env)
//  5. Apply defaults (if nothing else set)
func ResolveConfig(flags CliFlags) (*ResolvedConfig, error) {
	explicit := flags.ConfigPath
	if explicit == "" {
		explicit = os.Getenv(EnvConfig)
	}
	appCfg, path, warning, err := loadConfig(explicit)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		Modes:      glyph.Default(),
		Palette:    appCfg.Palette(),
		Debug:      flags.Debug || os.Getenv(EnvDebug) != "",
		ConfigPath: path,
		Templates: prompt.Templates{
			Prompt:      pick(os.Getenv(EnvPrompt), appCfg.Prompt),
			RightPrompt: pick(os.Getenv(EnvRightPrompt), appCfg.RightPrompt),
		},
	}
	if warning != "" {
		resolved.Warnings = append(resolved.Warnings, warning)
	}

	resolved.Mode, resolved.ModeSource = resolveString(flags.Mode, EnvMode, appCfg.Mode)
	if resolved.Mode != "" {
		if _, ok := resolved.Modes.Lookup(resolved.Mode); !ok {
			resolved.Warnings = append(resolved.Warnings,
				fmt.Sprintf("unknown glyph mode %q (from %s), using default", resolved.Mode, resolved.ModeSource))
		}
	}

	var dialect string
	dialect, resolved.DialectSource = resolveString(flags.Dialect, EnvDialect, appCfg.Dialect)
	resolved.Dialect, err = markup.ByName(dialect)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return resolved, nil
}

// resolveString applies CLI > env > file > default to one string setting.
func resolveString(cli, envKey, file string) (string, string) {
	if cli != "" {
		return cli, SourceCLI
	}
	if v := os.Getenv(envKey); v != "" {
		return v, SourceEnv
	}
	if file != "" {
		return file, SourceFile
	}
	return "", SourceDefault
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
