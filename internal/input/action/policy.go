package action

import (
	"fmt"
	"strings"
)

// Policy decides which enabled sets receive an event.
type Policy uint8

const (
	// PolicyMultiplex delivers every event to every enabled set. Priority
	// only orders the visit.
	PolicyMultiplex Policy = iota
	// PolicyHighestPriority delivers an event only to the enabled sets with
	// the highest priority among those that have an action bound to it. Sets
	// tied at that priority all receive it.
	PolicyHighestPriority
)

// String returns the policy name used in binding files.
func (p Policy) String() string {
	switch p {
	case PolicyMultiplex:
		return "multiplex"
	case PolicyHighestPriority:
		return "highest_priority"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name. The empty string selects PolicyMultiplex.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "multiplex":
		return PolicyMultiplex, nil
	case "highest_priority", "highest-priority", "exclusive":
		return PolicyHighestPriority, nil
	default:
		return PolicyMultiplex, fmt.Errorf("unknown dispatch policy %q", s)
	}
}
