package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/strucureo/inity-setup/src/internal/config"
	"github.com/strucureo/inity-setup/src/internal/launcher"
	"github.com/strucureo/inity-setup/src/internal/path"
	"github.com/strucureo/inity-setup/src/internal/python"
	"github.com/strucureo/inity-setup/src/internal/tui"
	"github.com/strucureo/inity-setup/src/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Inspect this machine without installing anything",
	Long: `Run the installer's detection steps and report what they find:
which Python interpreters are visible, which one would be used, where the
launcher would be installed, and whether a previous installation exists.

Example:
  inity-setup doctor`,
	Run: func(cmd *cobra.Command, args []string) {
		runDoctor()
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor() {
	fmt.Println(tui.RenderTitle("inity-setup doctor"))

	paths := config.DefaultPaths()
	binDirs := path.CandidateBinDirs()

	// Only the lookup strategies run here; doctor never installs anything
	strategies := []python.Strategy{
		python.NewPathStrategy(python.ExecProbe, binDirs),
		python.NewScanStrategy(python.ExecProbe, nil),
	}

	candidates := make([]python.Candidate, 0)
	for _, strategy := range strategies {
		found, err := strategy.Candidates()
		if err != nil {
			ui.Debug("strategy %s failed: %v", strategy.Name(), err)
			continue
		}
		candidates = append(candidates, found...)
	}

	table := tui.NewTable("Interpreter", "Version", "Source", "Status")
	table.SetTitle("Python Interpreters")

	best, haveBest := bestCompatible(candidates)
	for _, c := range candidates {
		status := tui.GetCheckMark() + " compatible"
		if !c.Version.AtLeast(python.Floor) {
			status = tui.GetCrossMark() + " below " + python.Floor.String()
		}

		if haveBest && c.Path == best.Path {
			table.AddActiveRow(c.Path, c.Version.String(), c.Source, status+" (selected)")
		} else {
			table.AddRow(c.Path, c.Version.String(), c.Source, status)
		}
	}

	if table.RowCount() == 0 {
		table.AddRow(tui.RenderMuted("none found"), "", "", "")
	}

	fmt.Println(table.Render())
	fmt.Println()

	state := tui.NewTable("Check", "Value")
	state.SetTitle("Installation State")

	installDir, err := path.ChooseBinDir()
	if err != nil {
		state.AddRow("Install directory", tui.GetCrossMark()+" none writable")
	} else {
		state.AddRow("Install directory", installDir)
		state.AddRow("On PATH", yesNoMark(path.IsInPath(installDir)))
	}

	state.AddRow("Environment ("+paths.Env+")", yesNoMark(dirExists(paths.Env)))
	state.AddRow("Launcher ("+launcher.Name()+")", yesNoMark(launcherExists(binDirs)))

	fmt.Println(state.Render())

	if !haveBest {
		ui.Warning("No compatible Python found; 'inity-setup install' would try a package-manager install")
	}
}

// bestCompatible returns the candidate install would select, if any
func bestCompatible(candidates []python.Candidate) (python.Candidate, bool) {
	compatible := make([]python.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Version.AtLeast(python.Floor) {
			compatible = append(compatible, c)
		}
	}
	if len(compatible) == 0 {
		return python.Candidate{}, false
	}
	return python.Best(compatible), true
}

func launcherExists(binDirs []string) bool {
	for _, dir := range binDirs {
		if _, err := os.Stat(dir + string(os.PathSeparator) + launcher.Name()); err == nil {
			return true
		}
	}
	return false
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func yesNoMark(ok bool) string {
	if ok {
		return tui.GetCheckMark() + " yes"
	}
	return tui.GetCrossMark() + " no"
}
