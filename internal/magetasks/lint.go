package magetasks

import (
	"errors"
	"fmt"

	"github.com/magefile/mage/sh"
)

// LintAll runs every linter. Missing optional linters are skipped with a
// warning.
func LintAll() error {
	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat fails when gofmt would change any file.
func LintFormat() error {
	PrintHeader("Go Format")

	files, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if files != "" {
		PrintError("Unformatted files:\n" + files)
		return errors.New("gofmt found unformatted files")
	}
	return nil
}

// LintVet runs go vet.
func LintVet() error {
	PrintHeader("Go Vet")
	return sh.RunV("go", "vet", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	PrintHeader("Golangci-lint")

	if err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./..."); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning("golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
			return err
		}
		return fmt.Errorf("golangci-lint failed: %w", err)
	}
	return nil
}
