// Package config handles configuration loading and merging for plprompt.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--mode, --dialect, --config)
//  2. Environment variables (POWERLINE_MODE, PLPROMPT_DIALECT, PLPROMPT_CONFIG, ...)
//  3. YAML config file (.plprompt.yaml in the working directory or
//     ~/.config/plprompt/config.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - Mode: glyph mode name. Unknown names are not an error; rendering falls
//     back to the process default mode.
//   - Dialect: markup language of the rendered markers (xonsh, zsh, symbolic).
//   - Prompt / RightPrompt: reference templates used to recognise which prompt
//     a token stream belongs to.
//   - Fields: per-field colours and internal separators, merged over the
//     default palette unless replace_fields is set.
//
// # Environment Variables
//
//   - POWERLINE_MODE: glyph mode name
//   - PLPROMPT_DIALECT: markup dialect
//   - PLPROMPT_CONFIG: path of the config file
//   - PLPROMPT_PROMPT, PLPROMPT_RIGHT_PROMPT: reference templates
//   - PLPROMPT_DEBUG: set to any non-empty value to enable debug logging
package config
