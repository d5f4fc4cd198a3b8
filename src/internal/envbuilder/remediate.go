package envbuilder

import (
	goruntime "runtime"
	"strings"

	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/pkgmanager"
)

// remediation is a single targeted fix for a recognized venv-creation failure
type remediation struct {
	cause  string
	prompt string
	apply  func() error
}

// classifyVenvFailure maps venv output to a remediation, or nil when the
// failure is not one we know how to fix. The only recognized class is the
// Debian-family split of the venv/ensurepip modules into a separate OS
// package.
func classifyVenvFailure(output string) *remediation {
	if goruntime.GOOS != constants.OSLinux {
		return nil
	}

	if !mentionsMissingVenv(output) {
		return nil
	}

	return &remediation{
		cause:  "the python3-venv OS package is missing",
		prompt: "Install python3-venv via apt-get?",
		apply:  pkgmanager.InstallDebianVenvPackage,
	}
}

// mentionsMissingVenv matches the messages Debian's patched python prints
// when venv creation fails for lack of the python3-venv package
func mentionsMissingVenv(output string) bool {
	needles := []string{
		"ensurepip is not available",
		"python3-venv",
		"No module named venv",
	}
	for _, needle := range needles {
		if strings.Contains(output, needle) {
			return true
		}
	}
	return false
}
