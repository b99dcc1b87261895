package utility

import (
	"context"
	"strings"

	"github.com/shsym/shsym/fsstate"
)

// builtinFunc implements one utility's symbolic semantics.
type builtinFunc func(ctx context.Context, state fsstate.State, args []string) []Result

// builtins is the table of symbolic-safe utilities: a fixed, known-safe set
// of names mapped to their own logic, anything else falling through to
// "next".
var builtins = map[string]builtinFunc{
	"true":  func(_ context.Context, s fsstate.State, _ []string) []Result { return []Result{{State: s, Bool: true}} },
	":":     func(_ context.Context, s fsstate.State, _ []string) []Result { return []Result{{State: s, Bool: true}} },
	"false": func(_ context.Context, s fsstate.State, _ []string) []Result { return []Result{{State: s, Bool: false}} },
	"echo":  echoBuiltin,
	"test":  testBuiltin,
}

func echoBuiltin(_ context.Context, s fsstate.State, args []string) []Result {
	s = s.WithStdout(s.Stdout.AppendString(strings.Join(args, " ")).AppendNewline())
	return []Result{{State: s, Bool: true}}
}

// testBuiltin implements the narrow subset of POSIX test(1) that does not
// require inspecting the (opaque, out-of-scope) filesystem: the one-string
// form ("test s" is true iff s is non-empty) and string equality/inequality
// ("test a = b" / "test a != b").
func testBuiltin(_ context.Context, s fsstate.State, args []string) []Result {
	ok := false
	switch len(args) {
	case 0:
		ok = false
	case 1:
		ok = args[0] != ""
	case 3:
		switch args[1] {
		case "=":
			ok = args[0] == args[2]
		case "!=":
			ok = args[0] != args[2]
		}
	}
	return []Result{{State: s, Bool: ok}}
}

// Builtins returns an Interpreter serving the fixed table of symbolic-safe
// utilities above, falling back to next for any other name. Pass a nil
// next to make unknown utility names resolve to failure with no state
// change, which is a reasonable default for a purely symbolic run.
func Builtins(next Interpreter) Interpreter {
	return Func(func(ctx context.Context, state fsstate.State, name string, args []string) []Result {
		if fn, ok := builtins[name]; ok {
			return fn(ctx, state, args)
		}
		if next != nil {
			return next.Call(ctx, state, name, args)
		}
		return []Result{{State: state, Bool: false}}
	})
}
