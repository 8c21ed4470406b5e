package tui

import (
	"fmt"
	"strings"
	"time"

	"tasks-cli/internal/layout"
	"tasks-cli/internal/model"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// taskDetail is the loaded content of the detail pane.
type taskDetail struct {
	task     model.Task
	listName string
}

type detailPane struct {
	vp      viewport.Model
	fields  layout.Model
	detail  *taskDetail
	loading bool
	err     error
	loc     *time.Location
}

func newDetailPane(fields layout.Model) detailPane {
	return detailPane{
		vp:     viewport.New(0, 0),
		fields: fields,
		loc:    time.Local,
	}
}

func (d *detailPane) setSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	d.vp.Width = w
	d.vp.Height = h
	d.refresh()
}

func (d *detailPane) setFields(m layout.Model) {
	d.fields = m
	d.refresh()
}

func (d *detailPane) setDetail(td *taskDetail, err error) {
	d.loading = false
	d.detail = td
	d.err = err
	d.refresh()
	d.vp.GotoTop()
}

func (d *detailPane) clear() {
	d.detail = nil
	d.err = nil
	d.loading = false
	d.refresh()
}

func (d *detailPane) refresh() {
	d.vp.SetContent(d.render(d.vp.Width))
}

func (d detailPane) render(width int) string {
	if width <= 0 {
		return ""
	}
	switch {
	case d.err != nil:
		return styleError().Render(truncateLine("error: "+d.err.Error(), width))
	case d.loading:
		return styleMuted().Render("Loading…")
	case d.detail == nil:
		return styleMuted().Render("Select a task to see its details.")
	}

	t := d.detail.task
	var b strings.Builder
	for _, f := range d.fields.Fields {
		value, ok := d.fieldValue(f, t, width)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		label := styleMuted().Render(f.Label)
		if f.Kind == layout.FieldMarkdown {
			b.WriteString(label + "\n" + value + "\n")
			continue
		}
		b.WriteString(truncateLine(label+"  "+value, width))
	}
	return b.String()
}

func (d detailPane) fieldValue(f layout.Field, t model.Task, width int) (string, bool) {
	switch f.Key {
	case layout.KeyTitle:
		title := t.Title
		if t.Completed {
			title = "✓ " + title
		}
		return lipgloss.NewStyle().Bold(true).Render(title), true
	case layout.KeyList:
		if strings.TrimSpace(d.detail.listName) == "" {
			return "", false
		}
		return d.detail.listName, true
	case layout.KeyStart:
		return formatTimeField(t.Start, d.loc)
	case layout.KeyDue:
		return formatTimeField(t.Due, d.loc)
	case layout.KeyPriority:
		if t.Priority <= 0 {
			return "", false
		}
		return priorityLabel(t.Priority), true
	case layout.KeyDescription:
		md := renderMarkdown(t.Description, width)
		return md, md != ""
	default:
		return "", false
	}
}

func priorityLabel(p int) string {
	switch {
	case p >= 3:
		return "high"
	case p == 2:
		return "medium"
	case p == 1:
		return "low"
	default:
		return fmt.Sprintf("%d", p)
	}
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return xansi.Truncate(s, width, "…")
}
