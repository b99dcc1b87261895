package utility_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/shsym/shsym/constraint"
	"github.com/shsym/shsym/fsstate"
	"github.com/shsym/shsym/utility"
)

func newState() fsstate.State {
	return fsstate.New(constraint.NewBackend())
}

func TestEchoAppendsOnly(t *testing.T) {
	c := qt.New(t)
	impl := utility.Builtins(nil)

	s := newState()
	s = s.WithStdout(s.Stdout.AppendString("prefix"))
	results := impl.Call(context.Background(), s, "echo", []string{"hi"})
	c.Assert(results, qt.HasLen, 1)
	c.Assert(results[0].Bool, qt.IsTrue)
	c.Assert(results[0].State.Stdout.String(), qt.Equals, "prefixhi")
}

func TestTrueFalse(t *testing.T) {
	c := qt.New(t)
	impl := utility.Builtins(nil)
	s := newState()

	r := impl.Call(context.Background(), s, "true", nil)
	c.Assert(r[0].Bool, qt.IsTrue)

	r = impl.Call(context.Background(), s, "false", nil)
	c.Assert(r[0].Bool, qt.IsFalse)
}

func TestUnknownFallsBackToFailure(t *testing.T) {
	c := qt.New(t)
	impl := utility.Builtins(nil)
	s := newState()
	r := impl.Call(context.Background(), s, "mkdir", []string{"x"})
	c.Assert(r[0].Bool, qt.IsFalse)
	c.Assert(r[0].State.Equal(s), qt.IsTrue)
}

func TestTestBuiltin(t *testing.T) {
	c := qt.New(t)
	impl := utility.Builtins(nil)
	s := newState()

	r := impl.Call(context.Background(), s, "test", []string{"nonempty"})
	c.Assert(r[0].Bool, qt.IsTrue)

	r = impl.Call(context.Background(), s, "test", []string{""})
	c.Assert(r[0].Bool, qt.IsFalse)

	r = impl.Call(context.Background(), s, "test", []string{"a", "=", "a"})
	c.Assert(r[0].Bool, qt.IsTrue)
}
