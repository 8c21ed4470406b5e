// Package layout describes which task fields the detail pane shows, and how.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTime     FieldKind = "time"
	FieldMarkdown FieldKind = "markdown"
	FieldPriority FieldKind = "priority"
	FieldList     FieldKind = "list"
)

// Field keys understood by the detail pane.
const (
	KeyTitle       = "title"
	KeyList        = "list"
	KeyStart       = "start"
	KeyDue         = "due"
	KeyPriority    = "priority"
	KeyDescription = "description"
)

type Field struct {
	Key   string    `toml:"key"`
	Label string    `toml:"label"`
	Kind  FieldKind `toml:"kind"`
}

// Model is a named set of fields in display order.
type Model struct {
	Name   string  `toml:"name"`
	Fields []Field `toml:"fields"`
}

const DefaultModelName = "default"

func defaultModel() Model {
	return Model{
		Name: DefaultModelName,
		Fields: []Field{
			{Key: KeyTitle, Label: "Title", Kind: FieldText},
			{Key: KeyList, Label: "List", Kind: FieldList},
			{Key: KeyStart, Label: "Start", Kind: FieldTime},
			{Key: KeyDue, Label: "Due", Kind: FieldTime},
			{Key: KeyPriority, Label: "Priority", Kind: FieldPriority},
			{Key: KeyDescription, Label: "Description", Kind: FieldMarkdown},
		},
	}
}

func compactModel() Model {
	return Model{
		Name: "compact",
		Fields: []Field{
			{Key: KeyTitle, Label: "Title", Kind: FieldText},
			{Key: KeyDue, Label: "Due", Kind: FieldTime},
		},
	}
}

// Sources holds the known field models. Built-in models can be overridden (or new ones
// added) by <dir>/<name>.toml files.
type Sources struct {
	Dir string
}

func builtin() map[string]Model {
	return map[string]Model{
		DefaultModelName: defaultModel(),
		"compact":        compactModel(),
	}
}

// Model returns the named model. ok is false when neither a file nor a built-in matches.
func (s Sources) Model(name string) (Model, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Model{}, false, nil
	}
	if strings.TrimSpace(s.Dir) != "" {
		m, err := readModel(filepath.Join(s.Dir, name+".toml"))
		if err == nil {
			if m.Name == "" {
				m.Name = name
			}
			return m, true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return Model{}, false, err
		}
	}
	m, ok := builtin()[name]
	return m, ok, nil
}

func (s Sources) Default() Model {
	m, ok, err := s.Model(DefaultModelName)
	if err != nil || !ok {
		return defaultModel()
	}
	return m
}

// Resolve returns the named model, falling back to the default model when it is unknown.
func (s Sources) Resolve(name string) (Model, error) {
	m, ok, err := s.Model(name)
	if err != nil {
		return Model{}, err
	}
	if !ok {
		return s.Default(), nil
	}
	return m, nil
}

func readModel(path string) (Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Model{}, err
	}
	var m Model
	if err := toml.Unmarshal(b, &m); err != nil {
		return Model{}, fmt.Errorf("layout %s: %w", filepath.Base(path), err)
	}
	for i, f := range m.Fields {
		if strings.TrimSpace(f.Key) == "" {
			return Model{}, fmt.Errorf("layout %s: field %d has no key", filepath.Base(path), i)
		}
		if f.Kind == "" {
			m.Fields[i].Kind = FieldText
		}
	}
	return m, nil
}
