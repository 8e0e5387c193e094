package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/actionmap/internal/input/action"
	"github.com/dshills/actionmap/internal/input/actionconfig"
	"github.com/dshills/actionmap/internal/input/binding"
	"github.com/dshills/actionmap/internal/input/win32"
	"github.com/dshills/actionmap/internal/logging"
)

var errNotPositive = errors.New("must be positive")

// Bindings is a binding file resolved into the types the input system uses.
type Bindings struct {
	// System is the action configuration tree.
	System actionconfig.SystemConfig

	// Policy is the dispatch policy.
	Policy action.Policy

	// Sets holds the per-set runtime state, in file order.
	Sets []SetState

	// Decoder configures the platform mouse decoder.
	Decoder win32.Config
}

// SetState is the initial runtime state of one action set.
type SetState struct {
	Name     string
	Enabled  bool
	Priority int
}

// SystemOptions returns the action.System options that apply the policy and
// set states.
func (b *Bindings) SystemOptions() []action.Option {
	opts := make([]action.Option, 0, 1+2*len(b.Sets))
	opts = append(opts, action.WithPolicy(b.Policy))
	for _, s := range b.Sets {
		opts = append(opts,
			action.WithSetEnabled(s.Name, s.Enabled),
			action.WithSetPriority(s.Name, s.Priority),
		)
	}
	return opts
}

// NewSystem builds an action system from b. extra options are applied after
// the ones derived from the file.
func (b *Bindings) NewSystem(extra ...action.Option) *action.System {
	opts := append(b.SystemOptions(), extra...)
	return action.NewSystem(&b.System, opts...)
}

// Build resolves binding names and settings. Unknown binding names are
// logged and skipped; malformed settings return an error.
func (f *File) Build(log *logging.Logger) (*Bindings, error) {
	if log == nil {
		log = logging.Default().WithComponent("config")
	}

	policy, err := action.ParsePolicy(f.Dispatch.Policy)
	if err != nil {
		return nil, &ValueError{Path: "dispatch.policy", Value: f.Dispatch.Policy, Err: err}
	}

	dec, err := f.Mouse.decoderConfig()
	if err != nil {
		return nil, err
	}

	b := &Bindings{
		Policy:  policy,
		Decoder: dec,
		Sets:    make([]SetState, 0, len(f.ActionSets)),
	}

	sets := make([]actionconfig.ActionSetConfig, 0, len(f.ActionSets))
	for i, s := range f.ActionSets {
		path := fmt.Sprintf("action_set[%d]", i)
		if s.Name != "" {
			path = "action_set." + s.Name
		}

		set := actionconfig.NewActionSetConfig(s.Name, s.LocalizedName)
		for _, a := range s.Bool {
			set.AddBool(actionconfig.NewActionConfig(a.Name, a.LocalizedName,
				resolve(path+".bool."+a.Name, a.Bindings, binding.ParseBool, log)...))
		}
		for _, a := range s.Float {
			set.AddFloat(actionconfig.NewActionConfig(a.Name, a.LocalizedName,
				resolve(path+".float."+a.Name, a.Bindings, binding.ParseFloat, log)...))
		}
		for _, a := range s.Vec2 {
			set.AddVec2(actionconfig.NewActionConfig(a.Name, a.LocalizedName,
				resolve(path+".vec2."+a.Name, a.Bindings, binding.ParseVec2, log)...))
		}
		sets = append(sets, set)

		b.Sets = append(b.Sets, SetState{
			Name:     s.Name,
			Enabled:  s.IsEnabled(),
			Priority: s.Priority,
		})
	}

	b.System = actionconfig.NewSystemConfig(sets...)
	return b, nil
}

func (m MouseSection) decoderConfig() (win32.Config, error) {
	var cfg win32.Config

	if m.DoubleClick != "" {
		d, err := time.ParseDuration(m.DoubleClick)
		if err != nil {
			return cfg, &ValueError{Path: "mouse.double_click", Value: m.DoubleClick, Err: err}
		}
		if d <= 0 {
			return cfg, &ValueError{Path: "mouse.double_click", Value: m.DoubleClick, Err: errNotPositive}
		}
		cfg.DoubleClickInterval = d
	}

	p, err := win32.ParseDoubleClickPolicy(m.DoubleClickPolicy)
	if err != nil {
		return cfg, &ValueError{Path: "mouse.double_click_policy", Value: m.DoubleClickPolicy, Err: err}
	}
	cfg.DoubleClickPolicy = p
	return cfg, nil
}

// resolve parses binding names, dropping the ones this build doesn't know.
func resolve[B binding.Enum](path string, names []string, parse func(string) (B, error), log *logging.Logger) []B {
	out := make([]B, 0, len(names))
	for _, name := range names {
		b, err := parse(name)
		if err != nil {
			log.Warn("%s: %v, skipping", path, err)
			continue
		}
		out = append(out, b)
	}
	return out
}
