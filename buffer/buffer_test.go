package buffer_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/shsym/shsym/buffer"
)

func TestStdoutStringTrailingNewlineStripped(t *testing.T) {
	c := qt.New(t)
	o := buffer.NewStdout().AppendString("a").AppendNewline().AppendString("b")
	c.Assert(o.String(), qt.Equals, "a\nb")

	o2 := buffer.NewStdout().AppendString("a").AppendNewline().AppendNewline()
	c.Assert(o2.String(), qt.Equals, "a")
}

func TestStdoutConcat(t *testing.T) {
	c := qt.New(t)
	a := buffer.NewStdout().AppendString("foo").AppendNewline().AppendString("ba")
	b := buffer.NewStdout().AppendString("r").AppendNewline().AppendString("baz")
	got := a.Concat(b)
	c.Assert(got.String(), qt.Equals, "foo\nbar\nbaz")
}

func TestPipeToStdin(t *testing.T) {
	c := qt.New(t)
	o := buffer.NewStdout().AppendString("one").AppendNewline().AppendString("two")
	in := o.PipeToStdin()
	c.Assert(in.Lines(), qt.DeepEquals, []string{"one", "two"})
}

func TestStdinEmpty(t *testing.T) {
	c := qt.New(t)
	c.Assert(buffer.NewStdin().Empty(), qt.IsTrue)
	c.Assert(buffer.NewStdin("a").Empty(), qt.IsFalse)
}
