package action

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dshills/actionmap/internal/input/actionconfig"
	"github.com/dshills/actionmap/internal/input/binding"
	"github.com/dshills/actionmap/internal/logging"
)

// ErrAlreadySetUp is returned by Setup when the system is already set up.
var ErrAlreadySetUp = errors.New("actions system already set up")

// Platform registers and releases the platform resources an input decoder
// needs, such as raw input devices.
type Platform interface {
	Register() error
	Unregister()
}

// System owns every action set and routes decoded input events to actions.
type System struct {
	config *actionconfig.SystemConfig

	sets    map[string]*Set
	ordered []*Set

	policy   Policy
	platform Platform
	setUp    bool
	frame    uint64

	logger  *logging.Logger
	metrics *Metrics
}

type options struct {
	logger   *logging.Logger
	policy   Policy
	platform Platform
	metrics  *Metrics
	enabled  map[string]bool
	priority map[string]int
}

// Option configures a System.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPolicy sets the dispatch policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithPlatform sets the platform resources acquired by Setup.
func WithPlatform(p Platform) Option {
	return func(o *options) { o.platform = p }
}

// WithMetrics records dispatch statistics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithSetEnabled sets the initial enabled flag of the named set.
func WithSetEnabled(set string, enabled bool) Option {
	return func(o *options) { o.enabled[set] = enabled }
}

// WithSetPriority sets the initial priority of the named set.
func WithSetPriority(set string, priority int) Option {
	return func(o *options) { o.priority[set] = priority }
}

// NewSystem builds a system from a deep copy of cfg. A nil cfg is logged and
// yields a system without action sets.
func NewSystem(cfg *actionconfig.SystemConfig, opts ...Option) *System {
	o := options{
		logger:   logging.Default(),
		enabled:  make(map[string]bool),
		priority: make(map[string]int),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &System{
		sets:     make(map[string]*Set),
		policy:   o.policy,
		platform: o.platform,
		logger:   o.logger.WithComponent("action"),
		metrics:  o.metrics,
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	if cfg == nil {
		s.logger.Error("NewSystem: nil system config")
		s.config = &actionconfig.SystemConfig{}
		return s
	}
	s.config = cfg.Clone()
	actionconfig.LogIssues(s.logger, s.config.Validate())

	for i := range s.config.ActionSets {
		set := newSet(&s.config.ActionSets[i], s.logger)
		if _, dup := s.sets[set.name]; dup {
			s.logger.Warn("duplicate action set %q, keeping the last definition", set.name)
		}
		s.sets[set.name] = set
	}

	for name, enabled := range o.enabled {
		if set, ok := s.sets[name]; ok {
			set.enabled = enabled
		} else {
			s.logger.Warn("enabled flag for unknown action set %q", name)
		}
	}
	for name, priority := range o.priority {
		if set, ok := s.sets[name]; ok {
			set.priority = priority
		} else {
			s.logger.Warn("priority for unknown action set %q", name)
		}
	}

	s.reorder()
	return s
}

// reorder sorts sets by descending priority, then by name.
func (s *System) reorder() {
	s.ordered = s.ordered[:0]
	for _, set := range s.sets {
		s.ordered = append(s.ordered, set)
	}
	sort.Slice(s.ordered, func(i, j int) bool {
		a, b := s.ordered[i], s.ordered[j]
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		return a.name < b.name
	})
}

// Policy returns the dispatch policy.
func (s *System) Policy() Policy { return s.policy }

// SetPolicy changes the dispatch policy.
func (s *System) SetPolicy(p Policy) { s.policy = p }

// Metrics returns the dispatch statistics.
func (s *System) Metrics() *Metrics { return s.metrics }

// Config returns a deep copy of the configuration the system was built from.
func (s *System) Config() *actionconfig.SystemConfig { return s.config.Clone() }

// Frame returns the number of completed frames.
func (s *System) Frame() uint64 { return s.frame }

// Sets returns the action sets in dispatch order.
func (s *System) Sets() []*Set {
	out := make([]*Set, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Set looks up an action set by name.
func (s *System) Set(name string) (*Set, bool) {
	set, ok := s.sets[name]
	return set, ok
}

// BoolAction looks up a bool action by set and action name.
func (s *System) BoolAction(set, name string) (*BoolAction, bool) {
	if st, ok := s.sets[set]; ok {
		return st.BoolAction(name)
	}
	return nil, false
}

// FloatAction looks up a float action by set and action name.
func (s *System) FloatAction(set, name string) (*FloatAction, bool) {
	if st, ok := s.sets[set]; ok {
		return st.FloatAction(name)
	}
	return nil, false
}

// Vec2Action looks up a vec2 action by set and action name.
func (s *System) Vec2Action(set, name string) (*Vec2Action, bool) {
	if st, ok := s.sets[set]; ok {
		return st.Vec2Action(name)
	}
	return nil, false
}

// SetEnabled enables or disables the named set. It reports whether the set
// exists.
func (s *System) SetEnabled(name string, enabled bool) bool {
	set, ok := s.sets[name]
	if !ok {
		s.logger.Warn("SetEnabled: unknown action set %q", name)
		return false
	}
	set.enabled = enabled
	return true
}

// SetPriority changes the priority of the named set. It reports whether the
// set exists.
func (s *System) SetPriority(name string, priority int) bool {
	set, ok := s.sets[name]
	if !ok {
		s.logger.Warn("SetPriority: unknown action set %q", name)
		return false
	}
	set.priority = priority
	s.reorder()
	return true
}

// TriggerBool dispatches a bool event and returns the number of actions
// triggered.
func (s *System) TriggerBool(b binding.BoolBinding, v bool) int {
	return dispatch(s, "bool", b, v, (*Set).BoolActions)
}

// TriggerFloat dispatches a float event and returns the number of actions
// triggered.
func (s *System) TriggerFloat(b binding.FloatBinding, v float32) int {
	return dispatch(s, "float", b, v, (*Set).FloatActions)
}

// TriggerVec2 dispatches a vec2 event and returns the number of actions
// triggered.
func (s *System) TriggerVec2(b binding.Vec2Binding, v binding.Vec2) int {
	return dispatch(s, "vec2", b, v, (*Set).Vec2Actions)
}

func dispatch[B binding.Enum, V any](s *System, kind string, b B, v V, actions func(*Set) map[string]*Action[B, V]) int {
	start := time.Now()

	if !b.Valid() {
		s.logger.Warn("ignoring %s event for binding %s (device class %s)", kind, b, b.Class())
		s.metrics.RecordIgnored()
		return 0
	}

	onlyPriority, gated := 0, false
	if s.policy == PolicyHighestPriority {
		top, found := highestBound(s.ordered, b, actions)
		if !found {
			s.metrics.RecordEvent(0, time.Since(start))
			return 0
		}
		onlyPriority, gated = top, true
	}

	n := 0
	for _, set := range s.ordered {
		if !set.enabled || (gated && set.priority != onlyPriority) {
			continue
		}
		for _, a := range actions(set) {
			if a.ContainsBinding(b) {
				a.Trigger(v)
				n++
			}
		}
	}

	s.metrics.RecordEvent(n, time.Since(start))
	return n
}

// highestBound returns the priority of the first enabled set in dispatch
// order that has an action bound to b.
func highestBound[B binding.Enum, V any](ordered []*Set, b B, actions func(*Set) map[string]*Action[B, V]) (int, bool) {
	for _, set := range ordered {
		if !set.enabled {
			continue
		}
		for _, a := range actions(set) {
			if a.ContainsBinding(b) {
				return set.priority, true
			}
		}
	}
	return 0, false
}

// ResetFrame clears the edge flag of every action in every set. Latched
// values are kept. Call it once per frame after the edges have been read.
func (s *System) ResetFrame() {
	for _, set := range s.ordered {
		set.resetFrame()
	}
	s.frame++
	s.metrics.RecordFrame()
}

// Setup acquires platform resources. Calling it again before ResetSetup is an
// error.
func (s *System) Setup() error {
	if s.setUp {
		s.logger.Error("Setup: already set up, call ResetSetup first")
		return ErrAlreadySetUp
	}
	if s.platform != nil {
		if err := s.platform.Register(); err != nil {
			s.logger.Error("Setup: %v", err)
			return fmt.Errorf("registering input devices: %w", err)
		}
	}
	s.setUp = true
	s.logger.Debug("setup complete, %d action sets", len(s.ordered))
	return nil
}

// ResetSetup releases platform resources. It is safe to call at any time.
func (s *System) ResetSetup() {
	if !s.setUp {
		return
	}
	if s.platform != nil {
		s.platform.Unregister()
	}
	s.setUp = false
}

// IsSetUp reports whether Setup succeeded and ResetSetup has not run since.
func (s *System) IsSetUp() bool { return s.setUp }
