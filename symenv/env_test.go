package symenv_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/shsym/shsym/symenv"
)

func TestFunctionalUpdate(t *testing.T) {
	c := qt.New(t)
	e1 := symenv.New[string, string]()
	e2 := e1.With("x", "a")
	e3 := e2.With("x", "b")

	c.Assert(e1.Get("x", ""), qt.Equals, "")
	c.Assert(e2.Get("x", ""), qt.Equals, "a")
	c.Assert(e3.Get("x", ""), qt.Equals, "b")
}

func TestWithoutLeavesOtherUntouched(t *testing.T) {
	c := qt.New(t)
	e := symenv.New[string, int]().With("a", 1).With("b", 2)
	e2 := e.Without("a")
	c.Assert(e.Len(), qt.Equals, 2)
	c.Assert(e2.Len(), qt.Equals, 1)
	_, ok := e2.Lookup("a")
	c.Assert(ok, qt.IsFalse)
	v, ok := e2.Lookup("b")
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, 2)
}
