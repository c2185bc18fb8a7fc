package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/plprompt/internal/config"
)

const (
	sep  = "\uE0B0"
	rsep = "\uE0B2"
)

const twoBlocks = `
- {text: " a ", field: x, style: {fg: WHITE, bg: RED}}
- {text: " b ", style: {fg: BLACK, bg: BLUE}}
`

const wantLeft = "set-background(RED)set-foreground(WHITE) a " +
	"set-background(BLUE)set-foreground(RED)" + sep +
	"set-foreground(BLACK) b reset" +
	"set-foreground(BLUE)" + sep + "reset"

const wantRight = "set-foreground(RED)" + rsep + "set-background(RED)set-foreground(WHITE) a " +
	"set-foreground(BLUE)" + rsep + "set-background(BLUE)set-foreground(BLACK) b "

// isolate runs the test in an empty directory with no plprompt settings in
// the environment.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, key := range []string{
		config.EnvMode, config.EnvDialect, config.EnvConfig,
		config.EnvPrompt, config.EnvRightPrompt, config.EnvDebug,
	} {
		t.Setenv(key, "")
	}
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRender_LeftFromStdin(t *testing.T) {
	isolate(t)

	code, stdout, stderr := runCLI(t, twoBlocks, "render", "--mode", "powerline", "--dialect", "symbolic")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, wantLeft, stdout)
	assert.Empty(t, stderr)
}

func TestRender_RightFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoBlocks), 0o600))

	code, stdout, stderr := runCLI(t, "", "render", "--right", "--file", path, "--mode", "powerline", "--dialect", "symbolic")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, wantRight, stdout)
}

func TestRender_AcceptsJSON(t *testing.T) {
	isolate(t)

	in := `[{"text": " a ", "field": "x", "style": {"fg": "WHITE", "bg": "RED"}}, {"text": " b ", "style": {"fg": "BLACK", "bg": "BLUE"}}]`
	code, stdout, stderr := runCLI(t, in, "render", "--mode", "powerline", "--dialect", "symbolic")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, wantLeft, stdout)
}

func TestRender_TemplateClassification(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvPrompt, "{left}")
	t.Setenv(config.EnvRightPrompt, "{right}")
	args := []string{"--mode", "powerline", "--dialect", "symbolic"}

	code, stdout, _ := runCLI(t, twoBlocks, append([]string{"render", "--template", "{left}"}, args...)...)
	require.Equal(t, 0, code)
	assert.Equal(t, wantLeft, stdout)

	code, stdout, _ = runCLI(t, twoBlocks, append([]string{"render", "--template", "{right}"}, args...)...)
	require.Equal(t, 0, code)
	assert.Equal(t, wantRight, stdout)

	code, stdout, _ = runCLI(t, twoBlocks, append([]string{"render", "--template", "{title}"}, args...)...)
	require.Equal(t, 0, code)
	assert.Equal(t, " a  b ", stdout)
}

func TestRender_ModeFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvMode, "round")

	code, stdout, _ := runCLI(t, `[{text: "x", style: {fg: WHITE, bg: RED}}]`, "render", "--dialect", "symbolic")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "\uE0B4")
}

func TestRender_Width(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI(t, twoBlocks, "render", "--width", "--mode", "powerline", "--dialect", "symbolic")
	require.Equal(t, 0, code)
	want := runewidth.StringWidth(" a " + sep + " b " + sep)
	assert.Equal(t, fmt.Sprintf("width: %d\n", want), stderr)
}

func TestRender_Failures(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{
			name:    "malformed token",
			stdin:   `[{field: cwd}]`,
			args:    []string{"render"},
			wantErr: "malformed token",
		},
		{
			name:    "invalid yaml",
			stdin:   `[{text: `,
			args:    []string{"render"},
			wantErr: "decode tokens",
		},
		{
			name:    "unknown dialect",
			args:    []string{"render", "--dialect", "fish"},
			wantErr: "config validation failed",
		},
		{
			name:    "missing explicit config",
			args:    []string{"render", "--config", "does-not-exist.yaml"},
			wantErr: "read config file",
		},
		{
			name:    "template and right together",
			args:    []string{"render", "--template", "x", "--right"},
			wantErr: "none of the others can be",
		},
		{
			name:    "missing token file",
			args:    []string{"render", "--file", "nope.yaml"},
			wantErr: "read tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			code, stdout, stderr := runCLI(t, tt.stdin, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "plprompt: "), stderr)
			assert.Contains(t, stderr, tt.wantErr)
		})
	}
}

func TestRender_UnknownModeWarns(t *testing.T) {
	isolate(t)

	code, stdout, stderr := runCLI(t, `[{text: "x"}]`, "render", "--mode", "sparkles")
	require.Equal(t, 0, code)
	assert.Equal(t, "x", stdout)
	assert.Contains(t, stderr, "WARN")
	assert.Contains(t, stderr, "sparkles")
}

func TestRender_VerboseLogsResolution(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.LocalConfigName), []byte("dialect: zsh\n"), 0o600))

	code, _, stderr := runCLI(t, `[{text: "x"}]`, "render", "--verbose")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "configuration resolved")
	assert.Contains(t, stderr, config.SourceFile)
	assert.Contains(t, stderr, "rendering")
}

func TestModes_PlainListing(t *testing.T) {
	isolate(t)

	code, stdout, _ := runCLI(t, "", "modes", "--mode", "round")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "MODE"))
	assert.NotContains(t, stdout, "\x1b[", "no styling when stdout is not a terminal")
	assert.Contains(t, stdout, "* round")
	assert.Contains(t, stdout, "  powerline")
	assert.Contains(t, stdout, "\uE0B4 \uE0B5 \uE0B6 \uE0B7")
}

func TestFields_PlainListing(t *testing.T) {
	dir := isolate(t)
	cfg := "fields:\n  cwd: {fg: WHITE, bg: \"#181818\", sep: \"/\"}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.LocalConfigName), []byte(cfg), 0o600))

	code, stdout, _ := runCLI(t, "", "fields")
	require.Equal(t, 0, code)

	var cwdLine string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.HasPrefix(line, "cwd ") {
			cwdLine = line
		}
	}
	require.NotEmpty(t, cwdLine)
	assert.Contains(t, cwdLine, "WHITE")
	assert.Contains(t, cwdLine, "#181818")
	assert.Contains(t, cwdLine, `"/"`)
	assert.Contains(t, stdout, "prompt_end")
	assert.Contains(t, stdout, `"\x00"`)
}

func TestPick_RequiresTerminal(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI(t, "", "pick")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "interactive terminal")
}

func TestVersion(t *testing.T) {
	isolate(t)

	code, stdout, _ := runCLI(t, "", "version")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "plprompt "))
}
