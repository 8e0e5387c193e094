package config

// File is the decoded form of a binding file.
type File struct {
	Dispatch   DispatchSection    `toml:"dispatch" yaml:"dispatch"`
	Mouse      MouseSection       `toml:"mouse" yaml:"mouse"`
	ActionSets []ActionSetSection `toml:"action_set" yaml:"action_set"`
}

// DispatchSection selects how events are routed between action sets.
type DispatchSection struct {
	// Policy is "multiplex" (default) or "highest_priority".
	Policy string `toml:"policy" yaml:"policy"`
}

// MouseSection configures the platform mouse decoder.
type MouseSection struct {
	// DoubleClick is a Go duration such as "500ms". Empty selects the OS
	// setting.
	DoubleClick string `toml:"double_click" yaml:"double_click"`
	// DoubleClickPolicy is "replace" (default) or "both".
	DoubleClickPolicy string `toml:"double_click_policy" yaml:"double_click_policy"`
}

// ActionSetSection describes one action set.
type ActionSetSection struct {
	Name          string `toml:"name" yaml:"name"`
	LocalizedName string `toml:"localized_name" yaml:"localized_name"`
	// Enabled defaults to true when omitted.
	Enabled  *bool `toml:"enabled" yaml:"enabled"`
	Priority int   `toml:"priority" yaml:"priority"`

	Bool  []ActionSection `toml:"bool" yaml:"bool"`
	Float []ActionSection `toml:"float" yaml:"float"`
	Vec2  []ActionSection `toml:"vec2" yaml:"vec2"`
}

// IsEnabled reports the effective enabled flag.
func (s ActionSetSection) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// ActionSection describes one action and its bindings by name.
type ActionSection struct {
	Name          string   `toml:"name" yaml:"name"`
	LocalizedName string   `toml:"localized_name" yaml:"localized_name"`
	Bindings      []string `toml:"bindings" yaml:"bindings"`
}
