// Package editor drives a palette editing session: it holds the current
// immutable state and moves it forward one action at a time.
package editor

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/filter"
	"github.com/jmylchreest/okbase16/internal/harmony"
	"github.com/jmylchreest/okbase16/internal/state"
)

// Action is one user edit.
type Action struct {
	name  string
	apply func(state.State) (state.State, error)
}

// String returns the action name used in logs.
func (a Action) String() string {
	return a.name
}

// SetMode switches generation mode, regenerating from the seed for every mode
// except manual.
func SetMode(mode harmony.Mode) Action {
	return Action{
		name: "set-mode",
		apply: func(s state.State) (state.State, error) {
			return s.WithMode(mode)
		},
	}
}

// SetSeed changes the seed colour.
func SetSeed(seed colour.OKLCH) Action {
	return Action{
		name: "set-seed",
		apply: func(s state.State) (state.State, error) {
			return s.WithSeed(seed), nil
		},
	}
}

// SetSlot edits a single slot.
func SetSlot(slot colour.Slot, c colour.OKLCH) Action {
	return Action{
		name: "set-slot",
		apply: func(s state.State) (state.State, error) {
			return s.WithSlot(slot, c)
		},
	}
}

// SetColours replaces every slot, e.g. after importing a scheme file.
func SetColours(colours colour.Scheme) Action {
	return Action{
		name: "set-colours",
		apply: func(s state.State) (state.State, error) {
			return s.WithColours(colours), nil
		},
	}
}

// SetFilters replaces the global filters.
func SetFilters(f filter.Filters) Action {
	return Action{
		name: "set-filters",
		apply: func(s state.State) (state.State, error) {
			return s.WithFilters(f), nil
		},
	}
}

// ResetFilters restores identity filters.
func ResetFilters() Action {
	return Action{
		name: "reset-filters",
		apply: func(s state.State) (state.State, error) {
			return s.ResetFilters(), nil
		},
	}
}

// ToggleFilters flips whether filters are applied.
func ToggleFilters() Action {
	return Action{
		name: "toggle-filters",
		apply: func(s state.State) (state.State, error) {
			return s.WithFiltersEnabled(!s.FiltersEnabled), nil
		},
	}
}

// EnableFilters sets whether filters are applied.
func EnableFilters(enabled bool) Action {
	return Action{
		name: "enable-filters",
		apply: func(s state.State) (state.State, error) {
			return s.WithFiltersEnabled(enabled), nil
		},
	}
}

// SetMetadata sets the scheme name and author.
func SetMetadata(m state.Metadata) Action {
	return Action{
		name: "set-metadata",
		apply: func(s state.State) (state.State, error) {
			return s.WithMetadata(m), nil
		},
	}
}

// Session is an editing session. It is a value: Apply returns a new Session
// and the receiver keeps its state.
type Session struct {
	state  state.State
	logger hclog.Logger
}

// New starts a session from s. A nil logger discards all output.
func New(s state.State, logger hclog.Logger) Session {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return Session{state: s, logger: logger}
}

// State returns the current state.
func (s Session) State() state.State {
	return s.state
}

// Apply runs actions in order. If any action fails, the returned session is
// the receiver unchanged together with the error.
func (s Session) Apply(actions ...Action) (Session, error) {
	next := s.state
	for _, a := range actions {
		updated, err := a.apply(next)
		if err != nil {
			return s, fmt.Errorf("%s: %w", a, err)
		}
		next = updated
		s.logger.Trace("applied action", "action", a.String(), "mode", next.Mode)
		s.check(a, next)
	}
	return Session{state: next, logger: s.logger}, nil
}

// check reports colours outside the OKLCH domain. It only runs at debug level
// and never alters the state.
func (s Session) check(a Action, st state.State) {
	if !s.logger.IsDebug() && !s.logger.IsTrace() {
		return
	}
	for _, slot := range st.Colours.OutOfRange() {
		s.logger.Warn("colour outside OKLCH range, it will be clamped for display",
			"action", a.String(), "slot", slot.String(), "value", st.Colours[slot].String())
	}
	for _, slot := range st.Display().OutOfRange() {
		s.logger.Error("display colour out of range",
			"action", a.String(), "slot", slot.String(), "value", st.Display()[slot].String())
	}
}
