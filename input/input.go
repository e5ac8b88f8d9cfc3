// Package input turns raw key events into a snapshot of logical actions.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a logical input the simulation understands.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	MoveUp
	MoveDown
	Pause
	Quit
	actionCount
)

var actionNames = [actionCount]string{
	MoveLeft:  "moveLeft",
	MoveRight: "moveRight",
	MoveUp:    "moveUp",
	MoveDown:  "moveDown",
	Pause:     "pause",
	Quit:      "quit",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ErrUnknownAction is returned when an action name is not recognized.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction resolves an action name case-insensitively.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if strings.EqualFold(n, name) {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAction, name)
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// State holds the latest pressed/released level of every action, plus the
// actions that went down since the last EndFrame.
type State struct {
	pressed [actionCount]bool
	fresh   [actionCount]bool
	held    map[Key]Action // bound keys currently down
}

// NewState returns a state with every action released.
func NewState() *State {
	return &State{}
}

// Set records the latest level for an action. Last write wins.
func (s *State) Set(a Action, pressed bool) {
	if a < 0 || a >= actionCount {
		return
	}
	if pressed && !s.pressed[a] {
		s.fresh[a] = true
	}
	s.pressed[a] = pressed
}

// SetKey records a bound key going down or up. An action stays pressed while
// any of its keys is held, and only the first of them raises a press edge.
func (s *State) SetKey(k Key, a Action, pressed bool) {
	if a < 0 || a >= actionCount {
		return
	}
	if s.held == nil {
		s.held = make(map[Key]Action)
	}
	if pressed {
		s.held[k] = a
	} else {
		delete(s.held, k)
	}

	down := false
	for _, other := range s.held {
		if other == a {
			down = true
			break
		}
	}
	s.Set(a, down)
}

// IsPressed reports whether the action is currently held.
// Actions never observed are not pressed.
func (s *State) IsPressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.pressed[a]
}

// JustPressed reports whether the action went from released to pressed
// during the current frame, even if it has been released again since.
func (s *State) JustPressed(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.fresh[a]
}

// EndFrame forgets this frame's press edges. Held levels are kept.
func (s *State) EndFrame() {
	s.fresh = [actionCount]bool{}
}
