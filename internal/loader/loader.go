// Package loader runs single-shot background loads for the TUI and hands the result back
// to the Update loop as a message.
//
// bubbletea runs each tea.Cmd on its own goroutine and feeds the returned message into
// Update, so results are always applied on the control loop. Loads are never retried.
package loader

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Token tracks whether the owner of a load is still alive. A load whose owner expired
// delivers nothing.
type Token struct {
	expired atomic.Bool
}

func NewToken() *Token { return &Token{} }

func (t *Token) Alive() bool { return t != nil && !t.expired.Load() }

// Expire marks the owner as gone. Outstanding loads drop their results.
func (t *Token) Expire() {
	if t != nil {
		t.expired.Store(true)
	}
}

// Generation numbers fresh loads. Results tagged with an older generation are stale.
type Generation struct {
	n uint64
}

// Next starts a new generation and returns it.
func (g *Generation) Next() uint64 {
	g.n++
	return g.n
}

func (g *Generation) Current() uint64 { return g.n }

// Stale reports whether gen belongs to a superseded load.
func (g *Generation) Stale(gen uint64) bool { return gen != g.n }

// Result is the outcome of one background load.
type Result[T any] struct {
	Gen   uint64
	Value T
	Err   error
}

// Cmd wraps a blocking load into a tea.Cmd. The owner token is checked before the load
// starts and again before the result is delivered.
func Cmd[T any](ctx context.Context, tok *Token, gen uint64, load func(context.Context) (T, error), wrap func(Result[T]) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		if !tok.Alive() {
			return nil
		}
		v, err := load(ctx)
		if !tok.Alive() {
			return nil
		}
		return wrap(Result[T]{Gen: gen, Value: v, Err: err})
	}
}
