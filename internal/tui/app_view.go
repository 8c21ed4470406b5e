package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const minSplitWidth = 70

func (m *appModel) resize() {
	w, h := m.detailSize()
	m.detail.setSize(w, h)
	m.help.Width = m.width
}

func (m appModel) bodyHeight() int {
	// header + blank + footer
	h := m.height - 3
	if m.help.ShowAll {
		h -= 3
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m appModel) splitWidths() (listW, detailW int) {
	if !m.showDetail || m.width < minSplitWidth {
		return m.width, 0
	}
	listW = m.width * 55 / 100
	return listW, m.width - listW
}

func (m appModel) detailSize() (int, int) {
	_, dw := m.splitWidths()
	if dw == 0 {
		return 0, 0
	}
	// border + padding
	return dw - 2, m.bodyHeight()
}

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}

	header := styleBreadcrumb().Render("Tasks")
	switch {
	case m.err != nil:
		header += "  " + styleError().Render(truncateLine(m.err.Error(), m.width-8))
	case m.loading && len(m.list.groups) == 0:
		header += "  " + styleMuted().Render("Loading…")
	case m.status != "":
		header += "  " + styleMuted().Render(truncateLine(m.status, m.width-8))
	}

	var body string
	if m.add.open {
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.add.view(m.width))
	} else {
		listW, detailW := m.splitWidths()
		left := m.renderList(listW, m.bodyHeight())
		if detailW > 0 {
			right := styleDetailPane().Height(m.bodyHeight()).Render(m.detail.vp.View())
			body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
		} else {
			body = left
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.help.View(m.keys))
}

func (m appModel) renderList(width, height int) string {
	rows := m.list.rows()
	if len(rows) == 0 {
		msg := "No tasks. Press a to add one."
		if m.loading {
			msg = ""
		}
		return lipgloss.NewStyle().Width(width).Height(height).Render(styleMuted().Render(msg))
	}

	// Keep the cursor in view.
	start := 0
	if m.list.cursor >= height {
		start = m.list.cursor - height + 1
	}
	end := start + height
	if end > len(rows) {
		end = len(rows)
	}

	now := m.now()
	act := m.state.Activated()
	lines := make([]string, 0, height)
	for i := start; i < end; i++ {
		r := rows[i]
		var line string
		if r.kind == rowGroup {
			line = m.renderGroupRow(r.group)
		} else {
			line = m.renderChildRow(r.group, r.child, width, now, act.Group == r.group && act.Child == r.child)
		}
		line = fitWidth(line, width)
		if i == m.list.cursor {
			line = styleSelectedRow().Render(xansi.Strip(line))
		}
		lines = append(lines, line)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) renderGroupRow(pos int) string {
	g := m.list.groups[pos]
	arrow := "▸"
	if m.list.isExpanded(pos) {
		arrow = "▾"
	}
	return styleGroupHeader().Render(fmt.Sprintf("%s %s (%d)", arrow, g.Title, g.Count))
}

func (m appModel) renderChildRow(groupPos, childPos, width int, now time.Time, activated bool) string {
	c, ok := m.list.Child(groupPos, childPos)
	if !ok {
		return ""
	}
	marker := " "
	if activated {
		marker = styleActivatedMarker().Render("•")
	}
	box := "[ ]"
	if c.Completed {
		box = "[x]"
	}
	left := "  " + marker + listColorBar(c.ListColor) + " " + box + " " + c.Title
	due := renderRowDue(c.Due, now)
	if due == "" {
		return left
	}

	gap := width - xansi.StringWidth(left) - xansi.StringWidth(due) - 1
	if gap < 1 {
		left = truncateLine(left, width-xansi.StringWidth(due)-2)
		gap = width - xansi.StringWidth(left) - xansi.StringWidth(due) - 1
		if gap < 1 {
			gap = 1
		}
	}
	return left + strings.Repeat(" ", gap) + due
}

// fitWidth pads or cuts s to exactly width cells.
func fitWidth(s string, width int) string {
	w := xansi.StringWidth(s)
	switch {
	case w < width:
		return s + strings.Repeat(" ", width-w)
	case w > width:
		return xansi.Cut(s, 0, width)
	}
	return s
}
