package action

import (
	"testing"

	"github.com/dshills/actionmap/internal/input/actionconfig"
	"github.com/dshills/actionmap/internal/input/binding"
)

func TestActionContainsBinding(t *testing.T) {
	cfg := actionconfig.NewActionConfig("fire", "Fire",
		binding.BoolMouseClickLeft, binding.BoolMouseClickRight, binding.BoolMouseClickLeft)
	a := newAction[binding.BoolBinding, bool](&cfg)

	tests := []struct {
		b    binding.BoolBinding
		want bool
	}{
		{binding.BoolMouseClickLeft, true},
		{binding.BoolMouseClickRight, true},
		{binding.BoolMouseClickMiddle, false},
		{binding.BoolMouseDoubleClickLeft, false},
		{binding.BoolUndefined, false},
	}

	for _, tt := range tests {
		t.Run(tt.b.String(), func(t *testing.T) {
			if got := a.ContainsBinding(tt.b); got != tt.want {
				t.Errorf("ContainsBinding(%s) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}

	got := a.Bindings()
	if len(got) != 2 || got[0] != binding.BoolMouseClickLeft || got[1] != binding.BoolMouseClickRight {
		t.Errorf("Bindings() = %v, want deduplicated sorted pair", got)
	}
}

func TestActionNames(t *testing.T) {
	cfg := actionconfig.NewActionConfig("look", "Look Around", binding.Vec2MouseMoved)
	a := newAction[binding.Vec2Binding, binding.Vec2](&cfg)

	if a.Name() != "look" || a.LocalizedName() != "Look Around" {
		t.Errorf("names = %q, %q", a.Name(), a.LocalizedName())
	}
}

func TestActionTriggerLatchesValue(t *testing.T) {
	cfg := actionconfig.NewActionConfig("zoom", "Zoom", binding.FloatMouseWheelUp)
	a := newAction[binding.FloatBinding, float32](&cfg)

	if a.TriggeredThisFrame() {
		t.Fatal("new action reports triggered")
	}

	a.Trigger(3.5)
	if !a.TriggeredThisFrame() || a.Value() != 3.5 {
		t.Errorf("after Trigger: triggered=%v value=%v", a.TriggeredThisFrame(), a.Value())
	}

	a.Trigger(-1000)
	if a.Value() != -1000 {
		t.Errorf("Trigger should not clamp, value = %v", a.Value())
	}

	a.resetFrame()
	if a.TriggeredThisFrame() {
		t.Error("resetFrame did not clear the edge flag")
	}
	if a.Value() != -1000 {
		t.Errorf("resetFrame changed the value to %v", a.Value())
	}
}

func TestActionWithoutBindingsNeverMatches(t *testing.T) {
	cfg := actionconfig.NewActionConfig[binding.BoolBinding]("", "")
	a := newAction[binding.BoolBinding, bool](&cfg)

	for _, b := range binding.AllBool() {
		if a.ContainsBinding(b) {
			t.Errorf("empty action contains %s", b)
		}
	}
}
