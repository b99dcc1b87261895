package constraint_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/shsym/shsym/constraint"
)

func TestFreshDistinct(t *testing.T) {
	c := qt.New(t)
	b := constraint.NewBackend()
	v1 := b.Fresh()
	v2 := b.Fresh()
	c.Assert(v1, qt.Not(qt.Equals), v2)
}

func TestEmptyClauseSatisfiable(t *testing.T) {
	c := qt.New(t)
	b := constraint.NewBackend()
	c.Assert(b.Sat(constraint.Empty()), qt.IsTrue)
}

func TestAndAndHolds(t *testing.T) {
	c := qt.New(t)
	b := constraint.NewBackend()
	root := b.Fresh()
	p := constraint.Path{Segments: []string{"etc", "passwd"}}
	f := constraint.Feature{Name: "exists"}

	cl := constraint.Empty()
	c.Assert(cl.Holds(root, p, f), qt.IsFalse)

	cl2 := cl.And(root, p, f, true)
	c.Assert(cl2.Holds(root, p, f), qt.IsTrue)
	c.Assert(cl.Holds(root, p, f), qt.IsFalse) // original clause untouched
	c.Assert(b.Sat(cl2), qt.IsTrue)
}
