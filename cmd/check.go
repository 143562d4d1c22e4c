// Package cmd implements the command-line interface for recode.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/recode-cli/recode/constant"
	"github.com/recode-cli/recode/icon"
	"github.com/recode-cli/recode/style"
)

// CheckDependencies verifies the availability of required system dependencies.
// Conversion and probing delegate entirely to ffmpeg and ffprobe, so both
// must be resolvable on the system PATH.
func CheckDependencies() {
	for _, dep := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(dep); err != nil {
			printMissingDependencyError(dep)
			os.Exit(1)
		}
	}
}

// installHint suggests the platform's package manager invocation for ffmpeg.
func installHint(goos string) string {
	switch goos {
	case constant.Darwin:
		return "brew install ffmpeg"
	case constant.Linux:
		return "sudo apt install ffmpeg"
	case constant.Windows:
		return "scoop install ffmpeg"
	}
	return ""
}

func printMissingDependencyError(dep string) {
	installCmd := installHint(runtime.GOOS)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
