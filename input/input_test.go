package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_UnobservedActionIsReleased(t *testing.T) {
	s := NewState()
	for _, a := range Actions() {
		assert.False(t, s.IsPressed(a), a.String())
		assert.False(t, s.JustPressed(a), a.String())
	}
	assert.False(t, s.IsPressed(Action(99)))
}

func TestState_LastWriteWins(t *testing.T) {
	s := NewState()

	s.Set(MoveRight, true)
	assert.True(t, s.IsPressed(MoveRight))

	s.Set(MoveRight, false)
	assert.False(t, s.IsPressed(MoveRight))

	s.Set(MoveRight, true)
	s.Set(MoveRight, true)
	assert.True(t, s.IsPressed(MoveRight))
}

func TestState_LevelsPersistAcrossFrames(t *testing.T) {
	s := NewState()
	s.Set(MoveLeft, true)
	s.EndFrame()
	s.EndFrame()

	assert.True(t, s.IsPressed(MoveLeft))
	assert.False(t, s.JustPressed(MoveLeft))
}

func TestState_PressEdges(t *testing.T) {
	s := NewState()

	s.Set(Pause, true)
	assert.True(t, s.JustPressed(Pause), "newly pressed")

	s.EndFrame()
	assert.False(t, s.JustPressed(Pause), "held is not an edge")

	s.Set(Pause, true)
	assert.False(t, s.JustPressed(Pause), "repeat key-down while held is not an edge")

	s.Set(Pause, false)
	s.EndFrame()
	s.Set(Pause, true)
	assert.True(t, s.JustPressed(Pause), "released then pressed again")
}

func TestState_TapWithinOneFrameKeepsEdge(t *testing.T) {
	s := NewState()
	s.Set(Pause, true)
	s.Set(Pause, false)

	assert.False(t, s.IsPressed(Pause))
	assert.True(t, s.JustPressed(Pause))
}

func TestState_IgnoresOutOfRangeAction(t *testing.T) {
	s := NewState()
	s.Set(Action(-1), true)
	s.Set(actionCount, true)

	for _, a := range Actions() {
		assert.False(t, s.IsPressed(a))
	}
	assert.False(t, s.JustPressed(actionCount))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "moveLeft", MoveLeft.String())
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "Action(42)", Action(42).String())
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
	}{
		{"moveLeft", MoveLeft},
		{"moveleft", MoveLeft},
		{"MOVERIGHT", MoveRight},
		{"moveUp", MoveUp},
		{"moveDown", MoveDown},
		{"pause", Pause},
		{"quit", Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAction("jump")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAction))
}
