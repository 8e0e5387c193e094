package action

import (
	"github.com/dshills/actionmap/internal/input/actionconfig"
	"github.com/dshills/actionmap/internal/input/binding"
	"github.com/dshills/actionmap/internal/logging"
)

// Set is a named group of actions that is enabled and prioritized as a unit,
// for example "gameplay" versus "menu".
type Set struct {
	name          string
	localizedName string
	enabled       bool
	priority      int

	boolActions  map[string]*BoolAction
	floatActions map[string]*FloatAction
	vec2Actions  map[string]*Vec2Action
}

func newSet(cfg *actionconfig.ActionSetConfig, log *logging.Logger) *Set {
	s := &Set{
		name:          cfg.Name.String(),
		localizedName: cfg.LocalizedName.String(),
		enabled:       true,
	}
	s.boolActions = buildActions[binding.BoolBinding, bool](s.name, cfg.BoolActions, log)
	s.floatActions = buildActions[binding.FloatBinding, float32](s.name, cfg.FloatActions, log)
	s.vec2Actions = buildActions[binding.Vec2Binding, binding.Vec2](s.name, cfg.Vec2Actions, log)
	return s
}

func buildActions[B binding.Enum, V any](set string, cfgs []actionconfig.ActionConfig[B], log *logging.Logger) map[string]*Action[B, V] {
	out := make(map[string]*Action[B, V], len(cfgs))
	for i := range cfgs {
		a := newAction[B, V](&cfgs[i])
		if _, dup := out[a.name]; dup {
			log.Warn("action set %q: duplicate action %q, keeping the last definition", set, a.name)
		}
		out[a.name] = a
	}
	return out
}

// Name returns the set name.
func (s *Set) Name() string { return s.name }

// LocalizedName returns the display name.
func (s *Set) LocalizedName() string { return s.localizedName }

// IsEnabled reports whether the set takes part in dispatch.
func (s *Set) IsEnabled() bool { return s.enabled }

// Priority returns the set priority. Higher values are visited first.
func (s *Set) Priority() int { return s.priority }

// BoolActions returns the live bool action map. Callers must not add or
// remove entries.
func (s *Set) BoolActions() map[string]*BoolAction { return s.boolActions }

// FloatActions returns the live float action map. Callers must not add or
// remove entries.
func (s *Set) FloatActions() map[string]*FloatAction { return s.floatActions }

// Vec2Actions returns the live vec2 action map. Callers must not add or
// remove entries.
func (s *Set) Vec2Actions() map[string]*Vec2Action { return s.vec2Actions }

// BoolAction looks up a bool action by name.
func (s *Set) BoolAction(name string) (*BoolAction, bool) {
	a, ok := s.boolActions[name]
	return a, ok
}

// FloatAction looks up a float action by name.
func (s *Set) FloatAction(name string) (*FloatAction, bool) {
	a, ok := s.floatActions[name]
	return a, ok
}

// Vec2Action looks up a vec2 action by name.
func (s *Set) Vec2Action(name string) (*Vec2Action, bool) {
	a, ok := s.vec2Actions[name]
	return a, ok
}

func (s *Set) resetFrame() {
	for _, a := range s.boolActions {
		a.resetFrame()
	}
	for _, a := range s.floatActions {
		a.resetFrame()
	}
	for _, a := range s.vec2Actions {
		a.resetFrame()
	}
}
