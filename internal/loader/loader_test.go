package loader

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gotMsg struct{ r Result[int] }

func wrapInt(r Result[int]) tea.Msg { return gotMsg{r: r} }

func TestCmd_DeliversResultWithGeneration(t *testing.T) {
	tok := NewToken()
	var g Generation
	gen := g.Next()

	cmd := Cmd(context.Background(), tok, gen, func(context.Context) (int, error) { return 7, nil }, wrapInt)
	msg := cmd()

	got, ok := msg.(gotMsg)
	require.True(t, ok)
	assert.Equal(t, 7, got.r.Value)
	assert.NoError(t, got.r.Err)
	assert.Equal(t, gen, got.r.Gen)
	assert.False(t, g.Stale(got.r.Gen))

	g.Next()
	assert.True(t, g.Stale(got.r.Gen))
}

func TestCmd_ExpiredBeforeStartSkipsLoad(t *testing.T) {
	tok := NewToken()
	tok.Expire()
	called := false

	msg := Cmd(context.Background(), tok, 1, func(context.Context) (int, error) {
		called = true
		return 1, nil
	}, wrapInt)()

	assert.Nil(t, msg)
	assert.False(t, called)
}

func TestCmd_ExpiredDuringLoadDropsResult(t *testing.T) {
	tok := NewToken()
	msg := Cmd(context.Background(), tok, 1, func(context.Context) (int, error) {
		tok.Expire()
		return 1, nil
	}, wrapInt)()

	assert.Nil(t, msg)
}

func TestCmd_ErrorIsDelivered(t *testing.T) {
	boom := errors.New("boom")
	msg := Cmd(context.Background(), NewToken(), 3, func(context.Context) (int, error) { return 0, boom }, wrapInt)()

	got, ok := msg.(gotMsg)
	require.True(t, ok)
	assert.ErrorIs(t, got.r.Err, boom)
}

func TestToken_NilIsNotAlive(t *testing.T) {
	var tok *Token
	assert.False(t, tok.Alive())
	tok.Expire()
}
