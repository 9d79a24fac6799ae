package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/editor"
	"github.com/jmylchreest/okbase16/internal/filter"
	"github.com/jmylchreest/okbase16/internal/harmony"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
	"github.com/jmylchreest/okbase16/internal/state"
)

// stateFlags are the persistent flags that build and edit the scheme.
type stateFlags struct {
	state         string
	mode          harmony.Mode
	seed          string
	set           []string
	hueShift      float64
	saturation    float64
	lightness     float64
	resetFilters  bool
	noFilters     bool
	toggleFilters bool
	name          string
	author        string
}

func (f *stateFlags) register(flags *pflag.FlagSet) {
	def := filter.Default()
	flags.StringVar(&f.state, "state", "", "share hash or URL to start from")
	flags.Var(&f.mode, "mode", "generation mode (manual, monochromatic, analogous, complementary, triadic)")
	flags.StringVar(&f.seed, "seed", "", "seed colour for base08, as hex or OKLCH")
	flags.StringArrayVar(&f.set, "set", nil, "set a slot, e.g. base0D=#7aa2f7 or base0D=220,0.17,0.68 (repeatable)")
	flags.Float64Var(&f.hueShift, "hue-shift", def.HueShift, "global hue rotation in degrees (-180 to 180)")
	flags.Float64Var(&f.saturation, "saturation", def.SaturationScale, "global chroma multiplier (0 to 2)")
	flags.Float64Var(&f.lightness, "lightness", def.LightnessCurve, "global lightness offset (-0.3 to 0.3)")
	flags.BoolVar(&f.resetFilters, "reset-filters", false, "reset filters to identity before applying filter flags")
	flags.BoolVar(&f.noFilters, "no-filters", false, "disable filters without discarding their values")
	flags.BoolVar(&f.toggleFilters, "toggle-filters", false, "flip whether filters are applied")
	flags.StringVar(&f.name, "name", "", "scheme name")
	flags.StringVar(&f.author, "author", "", "scheme author")
}

// resolveState builds the scheme a command works on: the starting state
// followed by every editing flag the user set.
func (a *app) resolveState(cmd *cobra.Command) (state.State, error) {
	start, err := a.startState()
	if err != nil {
		return state.State{}, err
	}
	return a.applyEdits(cmd, start)
}

// applyEdits runs the editing flags over start.
func (a *app) applyEdits(cmd *cobra.Command, start state.State) (state.State, error) {
	logger := a.logger.Named("editor")

	actions, err := a.edits.actions(cmd.Flags(), start)
	if err != nil {
		return state.State{}, err
	}

	session, err := editor.New(start, logger).Apply(actions...)
	if err != nil {
		return state.State{}, err
	}
	logger.Debug("resolved state", "mode", session.State().Mode, "actions", len(actions))
	return session.State(), nil
}

// startState decodes --state, then the configured state, then falls back to
// the default palette with the configured mode, filters and metadata.
func (a *app) startState() (state.State, error) {
	if a.edits.state != "" {
		s, err := state.Decode(a.edits.state)
		if err != nil {
			return state.State{}, fmt.Errorf("--state: %w", err)
		}
		return s, nil
	}

	if a.cfg.State != "" {
		s, err := state.LoadOrDefault(a.cfg.State)
		if err != nil {
			a.logger.Warn("ignoring invalid state in config", "error", err)
		} else {
			return s, nil
		}
	}

	session, err := editor.New(state.Default(), a.logger.Named("editor")).Apply(
		editor.SetMetadata(a.cfg.Metadata),
		editor.SetFilters(a.cfg.Filters),
		editor.SetMode(a.cfg.Mode),
	)
	if err != nil {
		return state.State{}, err
	}
	return session.State(), nil
}

// actions turns the flags that were set into editor actions, in the order
// mode, seed, slots, filters, metadata.
func (f *stateFlags) actions(flags *pflag.FlagSet, start state.State) ([]editor.Action, error) {
	var actions []editor.Action

	if flags.Changed("mode") {
		actions = append(actions, editor.SetMode(f.mode))
	}
	if flags.Changed("seed") {
		seed, err := colour.ParseColour(f.seed)
		if err != nil {
			return nil, fmt.Errorf("--seed: %w", err)
		}
		actions = append(actions, editor.SetSeed(seed))
	}
	for _, assignment := range f.set {
		slot, c, err := parseAssignment(assignment)
		if err != nil {
			return nil, fmt.Errorf("--set: %w", err)
		}
		actions = append(actions, editor.SetSlot(slot, c))
	}

	filters := start.Filters
	if f.resetFilters {
		actions = append(actions, editor.ResetFilters())
		filters = filter.Default()
	}
	changed := false
	if flags.Changed("hue-shift") {
		filters.HueShift = f.hueShift
		changed = true
	}
	if flags.Changed("saturation") {
		filters.SaturationScale = f.saturation
		changed = true
	}
	if flags.Changed("lightness") {
		filters.LightnessCurve = f.lightness
		changed = true
	}
	if changed {
		actions = append(actions, editor.SetFilters(filters))
	}
	if f.noFilters {
		actions = append(actions, editor.EnableFilters(false))
	}
	if f.toggleFilters {
		actions = append(actions, editor.ToggleFilters())
	}

	if flags.Changed("name") || flags.Changed("author") {
		m := start.Metadata
		if flags.Changed("name") {
			m.Name = f.name
		}
		if flags.Changed("author") {
			m.Author = f.author
		}
		actions = append(actions, editor.SetMetadata(m))
	}
	return actions, nil
}

// parseAssignment parses "slot=colour".
func parseAssignment(s string) (colour.Slot, colour.OKLCH, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, colour.OKLCH{}, fmt.Errorf("expected slot=colour, got %q", s)
	}
	slot, err := colour.ParseSlot(name)
	if err != nil {
		return 0, colour.OKLCH{}, err
	}
	c, err := colour.ParseColour(value)
	if err != nil {
		return 0, colour.OKLCH{}, err
	}
	return slot, c, nil
}

// theme resolves the state and wraps it for rendering.
func (a *app) theme(cmd *cobra.Command) (state.State, *output.Theme, error) {
	s, err := a.resolveState(cmd)
	if err != nil {
		return state.State{}, nil, err
	}
	return s, output.NewTheme(s), nil
}
