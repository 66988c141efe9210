package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/unix"
)

// Styles holds the lipgloss styles for run output.
type Styles struct {
	Path    lipgloss.Style
	Action  lipgloss.Style
	Fail    lipgloss.Style
	Summary lipgloss.Style
}

// NewStyles creates the default color styles.
func NewStyles() Styles {
	return Styles{
		Path:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		Action:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Summary: lipgloss.NewStyle().Faint(true),
	}
}

// NoStyles returns styles with no coloring.
func NoStyles() Styles {
	return Styles{
		Path:    lipgloss.NewStyle(),
		Action:  lipgloss.NewStyle(),
		Fail:    lipgloss.NewStyle(),
		Summary: lipgloss.NewStyle(),
	}
}

// IsTerminal checks if the given file descriptor is a terminal using ioctl.
func IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}

// StdoutIsTerminal returns true if stdout is a terminal.
func StdoutIsTerminal() bool {
	return IsTerminal(os.Stdout.Fd())
}
