package actionconfig

import (
	"fmt"

	"github.com/dshills/actionmap/internal/input/binding"
	"github.com/dshills/actionmap/internal/logging"
)

// Issue is an advisory finding about a configuration. Issues never prevent a
// configuration from being used; an action with no usable bindings simply
// never triggers.
type Issue struct {
	// Path locates the offending node, e.g. "gameplay/bool/fire".
	Path string
	// Message describes the problem.
	Message string
}

// String formats the issue as "path: message".
func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// Validate reports empty names, actions without bindings, bindings outside
// every known device range, and duplicate names.
func (c *SystemConfig) Validate() []Issue {
	if c == nil {
		return nil
	}

	var issues []Issue
	seen := make(map[string]bool, len(c.ActionSets))
	for i := range c.ActionSets {
		set := &c.ActionSets[i]
		setPath := set.Name.String()
		if set.Name.IsEmpty() {
			setPath = fmt.Sprintf("#%d", i)
			issues = append(issues, Issue{Path: setPath, Message: "action set has an empty name"})
		} else if seen[setPath] {
			issues = append(issues, Issue{Path: setPath, Message: "duplicate action set name"})
		}
		seen[setPath] = true
		issues = append(issues, set.Validate(setPath)...)
	}
	return issues
}

// Validate reports issues for the actions of c. prefix is prepended to every
// issue path.
func (c *ActionSetConfig) Validate(prefix string) []Issue {
	if c == nil {
		return nil
	}
	var issues []Issue
	issues = append(issues, validateActions(prefix+"/bool", c.BoolActions)...)
	issues = append(issues, validateActions(prefix+"/float", c.FloatActions)...)
	issues = append(issues, validateActions(prefix+"/vec2", c.Vec2Actions)...)
	return issues
}

func validateActions[B binding.Enum](prefix string, actions []ActionConfig[B]) []Issue {
	var issues []Issue
	seen := make(map[string]bool, len(actions))
	for i := range actions {
		a := &actions[i]
		path := prefix + "/" + a.Name.String()
		switch {
		case a.Name.IsEmpty():
			path = fmt.Sprintf("%s/#%d", prefix, i)
			issues = append(issues, Issue{Path: path, Message: "action has an empty name"})
		case seen[a.Name.String()]:
			issues = append(issues, Issue{Path: path, Message: "duplicate action name"})
		}
		seen[a.Name.String()] = true

		if len(a.Bindings) == 0 {
			issues = append(issues, Issue{Path: path, Message: "action has no bindings"})
		}
		for _, b := range a.Bindings {
			if !b.Valid() {
				issues = append(issues, Issue{
					Path:    path,
					Message: fmt.Sprintf("binding %s is outside every known device range", b),
				})
			}
		}
	}
	return issues
}

// LogIssues writes each issue as a warning.
func LogIssues(l *logging.Logger, issues []Issue) {
	if l == nil {
		l = logger()
	}
	for _, is := range issues {
		l.Warn("config: %s", is)
	}
}
