package input

import "fmt"

// Key identifies a physical key by name, e.g. "ArrowLeft" or "Escape".
// Names follow ebiten.Key.String() so the shell can pass them through.
type Key string

// Event is a single key-down or key-up occurrence.
type Event struct {
	Key     Key
	Pressed bool
}

// Bindings maps physical keys to logical actions.
type Bindings map[Key]Action

// DefaultBindings returns arrows and WASD for movement, P and Space for
// pause, Escape and Q for quit.
func DefaultBindings() Bindings {
	return Bindings{
		"ArrowLeft":  MoveLeft,
		"A":          MoveLeft,
		"ArrowRight": MoveRight,
		"D":          MoveRight,
		"ArrowUp":    MoveUp,
		"W":          MoveUp,
		"ArrowDown":  MoveDown,
		"S":          MoveDown,
		"P":          Pause,
		"Space":      Pause,
		"Escape":     Quit,
		"Q":          Quit,
	}
}

// Lookup returns the action bound to k.
func (b Bindings) Lookup(k Key) (Action, bool) {
	a, ok := b[k]
	return a, ok
}

// Apply feeds an event into s. Unbound keys are ignored. Releasing one key of
// an action leaves it pressed while another of its keys is still held.
func (b Bindings) Apply(s *State, ev Event) bool {
	a, ok := b.Lookup(ev.Key)
	if !ok {
		return false
	}
	s.SetKey(ev.Key, a, ev.Pressed)
	return true
}

// WithOverrides returns a copy of b where every action named in overrides is
// rebound to exactly the listed keys. Actions not named keep their defaults.
func (b Bindings) WithOverrides(overrides map[string][]string) (Bindings, error) {
	out := make(Bindings, len(b))
	rebound := make(map[Action][]string, len(overrides))
	for name, keys := range overrides {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("invalid key binding: %w", err)
		}
		rebound[a] = keys
	}

	for k, a := range b {
		if _, ok := rebound[a]; ok {
			continue
		}
		out[k] = a
	}
	for a, keys := range rebound {
		for _, k := range keys {
			out[Key(k)] = a
		}
	}
	return out, nil
}
