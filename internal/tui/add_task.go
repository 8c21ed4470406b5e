package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// addTaskModal is the one-line "new task" input.
type addTaskModal struct {
	open  bool
	input textinput.Model
}

func newAddTaskModal() addTaskModal {
	in := textinput.New()
	in.Placeholder = "Task title"
	in.Prompt = "› "
	in.CharLimit = 500
	return addTaskModal{input: in}
}

func (a *addTaskModal) show(width int) tea.Cmd {
	a.open = true
	a.input.SetValue("")
	w := width - 10
	if w < 20 {
		w = 20
	}
	a.input.Width = w
	return a.input.Focus()
}

func (a *addTaskModal) hide() {
	a.open = false
	a.input.Blur()
}

// update handles a key while the modal is open. submitted carries the trimmed title when
// enter was pressed with a non-empty value.
func (a *addTaskModal) update(msg tea.KeyMsg) (submitted string, cmd tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		a.hide()
		return "", nil
	case "enter":
		title := strings.TrimSpace(a.input.Value())
		if title == "" {
			return "", nil
		}
		a.hide()
		return title, nil
	}
	a.input, cmd = a.input.Update(msg)
	return "", cmd
}

func (a addTaskModal) view(width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styleBreadcrumb().Render("New task"),
		"",
		renderInputLine(a.input.Width+2, a.input.View()),
		"",
		styleMuted().Render("enter: create   esc: cancel"),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styleModal().Render(body))
}
