package action

import (
	"sort"

	"github.com/dshills/actionmap/internal/input/actionconfig"
	"github.com/dshills/actionmap/internal/input/binding"
)

// Action is the live state of one named action.
type Action[B binding.Enum, V any] struct {
	name          string
	localizedName string
	bindings      map[B]struct{}

	value     V
	triggered bool
}

// Per-kind runtime actions.
type (
	BoolAction  = Action[binding.BoolBinding, bool]
	FloatAction = Action[binding.FloatBinding, float32]
	Vec2Action  = Action[binding.Vec2Binding, binding.Vec2]
)

func newAction[B binding.Enum, V any](cfg *actionconfig.ActionConfig[B]) *Action[B, V] {
	a := &Action[B, V]{
		name:          cfg.Name.String(),
		localizedName: cfg.LocalizedName.String(),
		bindings:      make(map[B]struct{}, len(cfg.Bindings)),
	}
	for _, b := range cfg.Bindings {
		a.bindings[b] = struct{}{}
	}
	return a
}

// Name returns the action name.
func (a *Action[B, V]) Name() string { return a.name }

// LocalizedName returns the display name.
func (a *Action[B, V]) LocalizedName() string { return a.localizedName }

// ContainsBinding reports whether b is bound to this action.
func (a *Action[B, V]) ContainsBinding(b B) bool {
	_, ok := a.bindings[b]
	return ok
}

// Bindings returns the distinct bindings in ascending order.
func (a *Action[B, V]) Bindings() []B {
	out := make([]B, 0, len(a.bindings))
	for b := range a.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Trigger latches v and marks the action as triggered this frame. Values are
// not range checked.
func (a *Action[B, V]) Trigger(v V) {
	a.value = v
	a.triggered = true
}

// Value returns the latched value. It survives frame boundaries.
func (a *Action[B, V]) Value() V { return a.value }

// TriggeredThisFrame reports whether Trigger ran since the last frame reset.
func (a *Action[B, V]) TriggeredThisFrame() bool { return a.triggered }

// resetFrame clears the edge flag. Only the owning System calls it.
func (a *Action[B, V]) resetFrame() { a.triggered = false }
