package magetasks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

const (
	// ModulePath is the Go module path.
	ModulePath = "github.com/dkoosis/plprompt"

	// BinPath is the output path of the plprompt binary.
	BinPath = "./bin/plprompt"

	mainPackage = "./cmd/plprompt"
)

// Ldflags returns the linker flags that stamp build metadata into
// internal/version.
func Ldflags(version, commit string, built time.Time) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, built.UTC().Format(time.RFC3339))
}

// Build builds the plprompt binary into ./bin.
func Build() error {
	PrintHeader("Build")

	if err := os.MkdirAll(filepath.Dir(BinPath), 0o750); err != nil {
		return fmt.Errorf("create bin dir: %w", err)
	}
	ldflags := Ldflags(gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*"),
		gitOutput("unknown", "rev-parse", "--short", "HEAD"), time.Now())
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", BinPath, mainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess("Built: " + BinPath)
	return nil
}

// Install installs plprompt into GOBIN.
func Install() error {
	PrintHeader("Install")

	ldflags := Ldflags(gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*"),
		gitOutput("unknown", "rev-parse", "--short", "HEAD"), time.Now())
	if err := sh.RunV("go", "install", "-ldflags", ldflags, mainPackage); err != nil {
		PrintError("Install failed")
		return err
	}

	PrintSuccess("Installed plprompt")
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintHeader("Clean")

	if err := sh.Rm("./bin"); err != nil {
		return err
	}
	if err := sh.Rm("coverage.out"); err != nil {
		return err
	}
	PrintSuccess("Cleaned build artifacts")
	return nil
}

// gitOutput runs git and returns its trimmed output, or fallback when git
// fails.
func gitOutput(fallback string, args ...string) string {
	s, err := sh.Output("git", args...)
	if err != nil || strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}
