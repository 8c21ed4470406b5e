package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine pads a text input view to exactly bodyW cells on the input background.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	inputView = strings.NewReplacer("\n", " ", "\r", " ").Replace(inputView)

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Reset styling so a cut escape sequence cannot bleed into the border.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
