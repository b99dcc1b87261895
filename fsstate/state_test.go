package fsstate_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"

	"github.com/shsym/shsym/buffer"
	"github.com/shsym/shsym/constraint"
	"github.com/shsym/shsym/fsstate"
)

func TestStateEqualIgnoresSharedBackend(t *testing.T) {
	c := qt.New(t)
	backend := constraint.NewBackend()
	fs := fsstate.NewFilesystem(backend)

	s1 := fsstate.State{FS: fs}.WithStdout(buffer.NewStdout().AppendString("a"))
	s2 := fsstate.State{FS: fs}.WithStdout(buffer.NewStdout().AppendString("a"))
	c.Assert(s1.Equal(s2), qt.IsTrue)

	s3 := s2.WithStdout(buffer.NewStdout().AppendString("b"))
	c.Assert(s1.Equal(s3), qt.IsFalse)
}

// A slice of states built two independent ways should diff as empty; State's
// own Equal method makes go-cmp's default structural walk safe to use here,
// even though Filesystem carries a Clause built from unexported fields.
func TestStateSetCmpDiff(t *testing.T) {
	c := qt.New(t)
	backend := constraint.NewBackend()
	fs := fsstate.NewFilesystem(backend)

	build := func() []fsstate.State {
		return []fsstate.State{
			fsstate.State{FS: fs}.WithStdout(buffer.NewStdout().AppendString("a")),
			fsstate.State{FS: fs}.WithStdout(buffer.NewStdout().AppendString("b")),
		}
	}
	got, want := build(), build()
	c.Assert(got, qt.CmpEquals(), want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state set mismatch (-want +got):\n%s", diff)
	}

	got[1] = got[1].WithStdout(buffer.NewStdout().AppendString("c"))
	c.Assert(cmp.Diff(want, got) == "", qt.IsFalse)
}

func TestFilesystemCopyOnWrite(t *testing.T) {
	c := qt.New(t)
	backend := constraint.NewBackend()
	fs := fsstate.NewFilesystem(backend)
	root := fs.Root
	p := constraint.Path{Segments: []string{"a"}}
	feat := constraint.Feature{Name: "exists"}

	fs2 := fs.WithClause(fs.Clause.And(root, p, feat, true))
	c.Assert(fs.Clause.Holds(root, p, feat), qt.IsFalse)
	c.Assert(fs2.Clause.Holds(root, p, feat), qt.IsTrue)
}
