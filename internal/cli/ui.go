package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGray  = lipgloss.Color("245")
	styleValue = lipgloss.NewStyle().Bold(true)
	styleKey   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// printKeyValue prints a labeled value on its own line.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

func printMillis(w io.Writer, ms float64) {
	printKeyValue(w, "Elapsed", fmt.Sprintf("%.3f ms", ms))
}
