package actionconfig

import "github.com/dshills/actionmap/internal/input/binding"

// ActionConfig describes one named action and the raw inputs bound to it.
// Duplicate bindings are allowed; only membership matters downstream.
type ActionConfig[B binding.Enum] struct {
	Name          Name
	LocalizedName LocalizedName
	Bindings      []B
}

// Per-kind action configurations.
type (
	BoolActionConfig  = ActionConfig[binding.BoolBinding]
	FloatActionConfig = ActionConfig[binding.FloatBinding]
	Vec2ActionConfig  = ActionConfig[binding.Vec2Binding]
)

// NewActionConfig builds an action configuration. The bindings are copied.
func NewActionConfig[B binding.Enum](name, localizedName string, bindings ...B) ActionConfig[B] {
	return ActionConfig[B]{
		Name:          NewName(name),
		LocalizedName: NewLocalizedName(localizedName),
		Bindings:      copyBindings(bindings),
	}
}

// BindingCount returns the number of stored bindings. A nil receiver has none.
func (c *ActionConfig[B]) BindingCount() int {
	if c == nil {
		return 0
	}
	return len(c.Bindings)
}

// Clone returns a deep copy of c, or nil if c is nil.
func (c *ActionConfig[B]) Clone() *ActionConfig[B] {
	if c == nil {
		return nil
	}
	out := c.cloneValue()
	return &out
}

func (c *ActionConfig[B]) cloneValue() ActionConfig[B] {
	return ActionConfig[B]{
		Name:          c.Name,
		LocalizedName: c.LocalizedName,
		Bindings:      copyBindings(c.Bindings),
	}
}

// Destroy releases the bindings and zeroes c. It is idempotent.
func (c *ActionConfig[B]) Destroy() {
	if c == nil {
		return
	}
	*c = ActionConfig[B]{}
}

// Move returns the contents of c and leaves c empty.
func (c *ActionConfig[B]) Move() ActionConfig[B] {
	if c == nil {
		return ActionConfig[B]{}
	}
	out := *c
	*c = ActionConfig[B]{}
	return out
}

// ActionSetConfig groups bool, float and vec2 actions under one set name.
type ActionSetConfig struct {
	Name          Name
	LocalizedName LocalizedName
	BoolActions   []BoolActionConfig
	FloatActions  []FloatActionConfig
	Vec2Actions   []Vec2ActionConfig
}

// NewActionSetConfig builds an empty action set configuration.
func NewActionSetConfig(name, localizedName string) ActionSetConfig {
	return ActionSetConfig{
		Name:          NewName(name),
		LocalizedName: NewLocalizedName(localizedName),
	}
}

// AddBool appends a deep copy of a.
func (c *ActionSetConfig) AddBool(a BoolActionConfig) *ActionSetConfig {
	c.BoolActions = append(c.BoolActions, a.cloneValue())
	return c
}

// AddFloat appends a deep copy of a.
func (c *ActionSetConfig) AddFloat(a FloatActionConfig) *ActionSetConfig {
	c.FloatActions = append(c.FloatActions, a.cloneValue())
	return c
}

// AddVec2 appends a deep copy of a.
func (c *ActionSetConfig) AddVec2(a Vec2ActionConfig) *ActionSetConfig {
	c.Vec2Actions = append(c.Vec2Actions, a.cloneValue())
	return c
}

// ActionCount returns the number of actions of all kinds.
func (c *ActionSetConfig) ActionCount() int {
	if c == nil {
		return 0
	}
	return len(c.BoolActions) + len(c.FloatActions) + len(c.Vec2Actions)
}

// Clone returns a deep copy of c, or nil if c is nil.
func (c *ActionSetConfig) Clone() *ActionSetConfig {
	if c == nil {
		return nil
	}
	out := c.cloneValue()
	return &out
}

func (c *ActionSetConfig) cloneValue() ActionSetConfig {
	return ActionSetConfig{
		Name:          c.Name,
		LocalizedName: c.LocalizedName,
		BoolActions:   cloneActions(c.BoolActions),
		FloatActions:  cloneActions(c.FloatActions),
		Vec2Actions:   cloneActions(c.Vec2Actions),
	}
}

// Destroy destroys every child action and zeroes c. It is idempotent.
func (c *ActionSetConfig) Destroy() {
	if c == nil {
		return
	}
	destroyActions(c.BoolActions)
	destroyActions(c.FloatActions)
	destroyActions(c.Vec2Actions)
	*c = ActionSetConfig{}
}

// Move returns the contents of c and leaves c empty.
func (c *ActionSetConfig) Move() ActionSetConfig {
	if c == nil {
		return ActionSetConfig{}
	}
	out := *c
	*c = ActionSetConfig{}
	return out
}

// SystemConfig is the complete configuration of an actions system.
type SystemConfig struct {
	ActionSets []ActionSetConfig
}

// NewSystemConfig builds a system configuration from deep copies of sets.
func NewSystemConfig(sets ...ActionSetConfig) SystemConfig {
	var c SystemConfig
	for i := range sets {
		c.ActionSets = append(c.ActionSets, sets[i].cloneValue())
	}
	return c
}

// Clone returns a deep copy of c, or nil if c is nil.
func (c *SystemConfig) Clone() *SystemConfig {
	if c == nil {
		return nil
	}
	out := SystemConfig{}
	if len(c.ActionSets) > 0 {
		out.ActionSets = make([]ActionSetConfig, len(c.ActionSets))
		for i := range c.ActionSets {
			out.ActionSets[i] = c.ActionSets[i].cloneValue()
		}
	}
	return &out
}

// Destroy destroys every action set and zeroes c. It is idempotent.
func (c *SystemConfig) Destroy() {
	if c == nil {
		return
	}
	for i := range c.ActionSets {
		c.ActionSets[i].Destroy()
	}
	*c = SystemConfig{}
}

// Move returns the contents of c and leaves c empty.
func (c *SystemConfig) Move() SystemConfig {
	if c == nil {
		return SystemConfig{}
	}
	out := *c
	*c = SystemConfig{}
	return out
}

// copyBindings returns nil for an empty input so that a zero count and a nil
// child are the same state.
func copyBindings[B binding.Enum](in []B) []B {
	if len(in) == 0 {
		return nil
	}
	out := make([]B, len(in))
	copy(out, in)
	return out
}

func cloneActions[B binding.Enum](in []ActionConfig[B]) []ActionConfig[B] {
	if len(in) == 0 {
		return nil
	}
	out := make([]ActionConfig[B], len(in))
	for i := range in {
		out[i] = in[i].cloneValue()
	}
	return out
}

func destroyActions[B binding.Enum](in []ActionConfig[B]) {
	for i := range in {
		in[i].Destroy()
	}
}
