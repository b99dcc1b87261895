// Package interp implements the symbolic interpreter core: the evaluation
// relation over instructions, string expressions, and list expressions,
// lifted to operate on state sets; the bounded-loop driver; and the
// program entry point. It also exposes a thin concrete adapter that
// collapses state sets to singletons.
package interp

import (
	"errors"

	"github.com/shsym/shsym/constraint"
	"github.com/shsym/shsym/utility"
)

// Config holds the symbolic core's construction-time parameters.
type Config struct {
	// LoopLimit bounds while-loop iterations. New sets it to 1000 unless
	// WithLoopLimit overrides it, and WithLoopLimit rejects negative values.
	LoopLimit int

	// Utility is the external utility-interpreter collaborator ICallUtility
	// delegates to.
	Utility utility.Interpreter

	// Backend is the external constraint-solver collaborator. The core
	// never calls it directly, and neither Run nor the default utility table
	// reads it; it travels alongside Config for callers that build the
	// initial Filesystem themselves, such as cmd/symsh.
	Backend constraint.Backend

	// OnLoopBound, if set, is called with the iteration count every time a
	// while-loop hits LoopLimit and its still-live branches are forced to
	// Failure. It never changes which bucket those states land in; it only
	// makes the cutoff observable (e.g. for the report package's CLI
	// output) without threading an extra field through Outcome.
	OnLoopBound func(iteration int)
}

// Option configures a Config.
type Option func(*Config) error

// WithLoopLimit sets the maximum number of while-loop iterations analyzed
// before forcing Failure on still-live states.
func WithLoopLimit(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return errors.New("interp: loop limit must be non-negative")
		}
		c.LoopLimit = n
		return nil
	}
}

// WithUtility sets the external utility interpreter. If never set, New
// defaults to [utility.Builtins](nil).
func WithUtility(u utility.Interpreter) Option {
	return func(c *Config) error {
		c.Utility = u
		return nil
	}
}

// WithBackend sets the constraint backend. If never set, New defaults to
// [constraint.NewBackend].
func WithBackend(b constraint.Backend) Option {
	return func(c *Config) error {
		c.Backend = b
		return nil
	}
}

// WithLoopBoundHook sets the loop-bound telemetry callback.
func WithLoopBoundHook(f func(iteration int)) Option {
	return func(c *Config) error {
		c.OnLoopBound = f
		return nil
	}
}

// New builds a Config for the symbolic core, applying opts in order and
// defaulting Utility/Backend if unset. The symbolic core mandates a loop
// limit: callers that never call [WithLoopLimit] get the package default of
// 1000 iterations rather than running unbounded.
func New(opts ...Option) (Config, error) {
	cfg := Config{LoopLimit: defaultLoopLimit}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	if cfg.Utility == nil {
		cfg.Utility = utility.Builtins(nil)
	}
	if cfg.Backend == nil {
		cfg.Backend = constraint.NewBackend()
	}
	return cfg, nil
}

const defaultLoopLimit = 1000

// Input is the per-call evaluation input: under_condition and
// argument0 ($0).
type Input struct {
	UnderCondition bool
	Argument0      string
}

// Strict reports whether the input is in strict mode, i.e. NOT under a
// condition: Strict holds exactly when under_condition = false.
func (i Input) Strict() bool { return !i.UnderCondition }

// underCond returns a copy of i with UnderCondition forced to the given
// value, used for the masking the evaluation rules call for (If/While/Not
// conditions, subshell bodies, assignment substitutions).
func (i Input) underCond(b bool) Input {
	i.UnderCondition = b
	return i
}
