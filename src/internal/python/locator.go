package python

import (
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/strucureo/inity-setup/src/internal/constants"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

// Candidate sources
const (
	SourcePath           = "path"
	SourceScan           = "scan"
	SourcePackageManager = "package-manager"
)

// commandNames are the interpreter names tried on the search path, in order
var commandNames = []string{"python3", "python"}

// Candidate is a discovered interpreter that may or may not pass the floor
type Candidate struct {
	Path    string  // Absolute path to the executable
	Version Version // Self-reported version
	Source  string  // One of the Source* constants
}

// String returns a formatted string representation
func (c Candidate) String() string {
	return fmt.Sprintf("Python %s (%s) %s", c.Version, c.Source, c.Path)
}

// Strategy is one way of discovering interpreter candidates
type Strategy interface {
	// Name identifies the strategy in debug output
	Name() string

	// Candidates returns every interpreter this strategy can find,
	// floor-passing or not. An empty slice is not an error.
	Candidates() ([]Candidate, error)
}

// Locator runs strategies in order and picks the best compatible interpreter
type Locator struct {
	strategies []Strategy
	floor      Version
}

// NewLocator creates a locator over the given strategies with the default floor
func NewLocator(strategies ...Strategy) *Locator {
	return &Locator{strategies: strategies, floor: Floor}
}

// Locate returns the highest-version candidate at or above the floor from the
// first strategy that yields any such candidate. Later strategies are not
// consulted once a strategy succeeds.
func (l *Locator) Locate() (Candidate, error) {
	for _, strategy := range l.strategies {
		candidates, err := strategy.Candidates()
		if err != nil {
			ui.Debug("strategy %s failed: %v", strategy.Name(), err)
			continue
		}

		compatible := make([]Candidate, 0, len(candidates))
		for _, c := range candidates {
			if c.Version.AtLeast(l.floor) {
				compatible = append(compatible, c)
			} else {
				ui.Debug("strategy %s: rejecting %s (below %s floor)", strategy.Name(), c, l.floor)
			}
		}

		if len(compatible) > 0 {
			best := Best(compatible)
			ui.Debug("strategy %s selected %s", strategy.Name(), best)
			return best, nil
		}

		ui.Debug("strategy %s found no compatible interpreter", strategy.Name())
	}

	return Candidate{}, fmt.Errorf("no Python %s or newer interpreter found", l.floor)
}

// Best returns the highest-version candidate. Earlier candidates win ties, so
// search-path ordering is preserved.
func Best(candidates []Candidate) Candidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Version.Compare(best.Version) > 0 {
			best = c
		}
	}
	return best
}

// PathStrategy looks up the default command names on the search path
type PathStrategy struct {
	probe   Probe
	exclude []string // Directories skipped during lookup (our own bin dirs)
}

// NewPathStrategy creates a search-path strategy
func NewPathStrategy(probe Probe, exclude []string) *PathStrategy {
	return &PathStrategy{probe: probe, exclude: exclude}
}

// Name identifies the strategy
func (s *PathStrategy) Name() string { return "search-path" }

// Candidates returns interpreters resolvable by bare command name
func (s *PathStrategy) Candidates() ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(commandNames))
	seen := make(map[string]bool)

	for _, name := range commandNames {
		execPath := LookPathExcluding(name, s.exclude)
		if execPath == "" || seen[execPath] {
			continue
		}
		seen[execPath] = true

		version, ok := s.probe(execPath)
		if !ok {
			continue
		}

		candidates = append(candidates, Candidate{
			Path:    execPath,
			Version: version,
			Source:  SourcePath,
		})
	}

	return candidates, nil
}

// ScanStrategy probes interpreters in well-known installation directories
type ScanStrategy struct {
	probe    Probe
	patterns []string // Glob patterns of directories to scan
}

// NewScanStrategy creates a filesystem-scan strategy. With no patterns the
// platform's well-known directories are scanned.
func NewScanStrategy(probe Probe, patterns []string) *ScanStrategy {
	if patterns == nil {
		patterns = WellKnownDirs()
	}
	return &ScanStrategy{probe: probe, patterns: patterns}
}

// Name identifies the strategy
func (s *ScanStrategy) Name() string { return "well-known-dirs" }

// Candidates returns every interpreter found under the directory patterns
func (s *ScanStrategy) Candidates() ([]Candidate, error) {
	candidates := make([]Candidate, 0)
	seen := make(map[string]bool)

	for _, pattern := range s.patterns {
		dirs, err := filepath.Glob(pattern)
		if err != nil {
			// Bad pattern in the well-known list, skip it
			continue
		}

		for _, dir := range dirs {
			for _, name := range commandNames {
				execPath := executableIn(dir, name)
				if execPath == "" || seen[execPath] {
					continue
				}
				seen[execPath] = true

				version, ok := s.probe(execPath)
				if !ok {
					continue
				}

				candidates = append(candidates, Candidate{
					Path:    execPath,
					Version: version,
					Source:  SourceScan,
				})
			}
		}
	}

	return candidates, nil
}

// Installer abstracts the package-manager fallback so the strategy does not
// depend on a concrete manager implementation.
type Installer interface {
	// Name returns the package manager name (e.g., "apt", "brew")
	Name() string

	// InstallPython drives the package-manager install to completion
	InstallPython() error
}

// InstallStrategy drives an OS package-manager install of the interpreter,
// then re-runs the lookup strategies exactly once.
type InstallStrategy struct {
	installer Installer
	consent   func(prompt string) bool
	redetect  []Strategy
}

// NewInstallStrategy creates the package-manager fallback strategy.
// installer may be nil when the host has no supported package manager.
func NewInstallStrategy(installer Installer, consent func(prompt string) bool, redetect []Strategy) *InstallStrategy {
	return &InstallStrategy{installer: installer, consent: consent, redetect: redetect}
}

// Name identifies the strategy
func (s *InstallStrategy) Name() string { return "package-manager" }

// Candidates installs Python via the package manager (with user consent) and
// re-runs the earlier detection strategies once.
func (s *InstallStrategy) Candidates() ([]Candidate, error) {
	if s.installer == nil {
		return nil, fmt.Errorf("no supported package manager found")
	}

	prompt := fmt.Sprintf("Install Python via %s?", s.installer.Name())
	if !s.consent(prompt) {
		return nil, fmt.Errorf("package-manager install declined")
	}

	ui.Progress("Installing Python via %s...", s.installer.Name())
	if err := s.installer.InstallPython(); err != nil {
		return nil, fmt.Errorf("%s install failed: %w", s.installer.Name(), err)
	}

	// Single re-detection pass over the lookup strategies
	candidates := make([]Candidate, 0)
	for _, strategy := range s.redetect {
		found, err := strategy.Candidates()
		if err != nil {
			continue
		}
		for _, c := range found {
			c.Source = SourcePackageManager
			candidates = append(candidates, c)
		}
	}

	return candidates, nil
}

// LookPathExcluding resolves a command on the search path, skipping the given
// directories. Used so our own launcher directory never satisfies detection.
func LookPathExcluding(name string, exclude []string) string {
	pathEnv := os.Getenv("PATH")
	if pathEnv == "" {
		return ""
	}

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" || isExcluded(dir, exclude) {
			continue
		}

		if execPath := executableIn(dir, name); execPath != "" {
			return execPath
		}
	}

	return ""
}

func isExcluded(dir string, exclude []string) bool {
	cleaned := filepath.Clean(dir)
	for _, e := range exclude {
		if strings.EqualFold(cleaned, filepath.Clean(e)) {
			return true
		}
	}
	return false
}

// executableIn returns the path of an executable with the given base name in
// dir, or "" when absent
func executableIn(dir, name string) string {
	if goruntime.GOOS == constants.OSWindows {
		for _, ext := range []string{constants.ExtExe, ".bat", constants.ExtCmd} {
			candidate := filepath.Join(dir, name+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		return ""
	}

	candidate := filepath.Join(dir, name)
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return ""
	}
	// Must have an execute bit
	if info.Mode()&0111 == 0 {
		return ""
	}
	return candidate
}
