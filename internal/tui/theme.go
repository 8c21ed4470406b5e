package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds, so colors
// are lipgloss.AdaptiveColor and "faint" is only applied on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorChromeFg   lipgloss.TerminalColor = ac("240", "245")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorActivated  lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg   lipgloss.TerminalColor = ac("255", "235")
	colorOverdue    lipgloss.TerminalColor = ac("160", "203")
	colorDueGray    lipgloss.TerminalColor = ac("244", "244") // #808080
	colorBorder     lipgloss.TerminalColor = ac("250", "243")
	colorErrorFg    lipgloss.TerminalColor = ac("160", "203")
	colorInputBg    lipgloss.TerminalColor = ac("254", "236")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleGroupHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleSelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
}

func styleActivatedMarker() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorActivated).Bold(true)
}

func styleDue(overdue bool) lipgloss.Style {
	if overdue {
		return lipgloss.NewStyle().Foreground(colorOverdue)
	}
	return lipgloss.NewStyle().Foreground(colorDueGray)
}

func styleBreadcrumb() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorChromeFg).Bold(true)
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorErrorFg)
}

func styleModal() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorActivated).
		Padding(0, 1)
}

func styleDetailPane() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorBorder).
		PaddingLeft(1)
}

// listColorBar renders the list's color as a one-cell bar. Unknown colors render blank.
func listColorBar(color string) string {
	color = strings.TrimSpace(color)
	if color == "" {
		return " "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Foreground(colorAccentFg).Render(" ")
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful for
// non-interactive CLI output but can accidentally disable colors in a TUI. For the TUI,
// we only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports, trust the env.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) TASKS_TUI_THEME=light|dark|auto
// 2) the configured theme
// 3) COLORFGBG heuristic ("fg;bg")
func applyThemePreference(configured string) {
	for _, v := range []string{os.Getenv("TASKS_TUI_THEME"), configured} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}

// markdownStyle picks the glamour standard style matching the background.
func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
