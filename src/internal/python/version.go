// Package python locates a compatible Python interpreter on the host.
//
// Detection runs an ordered list of strategies: search-path lookup first,
// then a filesystem scan of well-known install directories, and finally an
// OS package-manager driven install followed by a single re-detection.
package python

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Floor is the minimum interpreter version the application supports.
var Floor = Version{Raw: "3.8", Major: 3, Minor: 8}

// Version represents a parsed interpreter version
type Version struct {
	Raw   string // The raw version string (e.g., "3.11.4")
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a dotted version string like "3.11.4" or "3.8"
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("invalid version string: %q", s)
	}

	v := Version{Raw: s}
	var err error
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return Version{}, fmt.Errorf("invalid major version in %q", s)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return Version{}, fmt.Errorf("invalid minor version in %q", s)
	}
	if len(parts) == 3 {
		if v.Patch, err = strconv.Atoi(parts[2]); err != nil {
			return Version{}, fmt.Errorf("invalid patch version in %q", s)
		}
	}

	return v, nil
}

// String returns the string representation of the version
func (v Version) String() string {
	return v.Raw
}

// Compare returns -1, 0 or 1 if v is lower than, equal to or higher than other
func (v Version) Compare(other Version) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v meets the given minimum version
func (v Version) AtLeast(min Version) bool {
	return v.Compare(min) >= 0
}

// versionOutputRe matches the self-reported version line, e.g. "Python 3.11.4"
var versionOutputRe = regexp.MustCompile(`Python\s+(\d+\.\d+(?:\.\d+)?)`)

// ParseVersionOutput extracts a version from `python --version` output
func ParseVersionOutput(output string) (Version, bool) {
	matches := versionOutputRe.FindStringSubmatch(output)
	if len(matches) < 2 {
		return Version{}, false
	}

	v, err := ParseVersion(matches[1])
	if err != nil {
		return Version{}, false
	}

	return v, true
}

// Probe asks an interpreter for its version. Implementations other than
// ExecProbe exist only for tests.
type Probe func(execPath string) (Version, bool)

// ExecProbe runs `<execPath> --version` and parses the result.
// Python 2 prints the version to stderr, so both streams are captured;
// such interpreters parse fine and are rejected later by the floor check.
func ExecProbe(execPath string) (Version, bool) {
	cmd := exec.Command(execPath, "--version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Version{}, false
	}

	return ParseVersionOutput(string(output))
}
