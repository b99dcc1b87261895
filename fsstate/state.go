package fsstate

import (
	"github.com/shsym/shsym/buffer"
	"github.com/shsym/shsym/constraint"
)

// State is the Language's symbolic state: an opaque filesystem handle plus
// the stdin/stdout buffers. State is a plain immutable value; branching is
// implemented by constructing new State values, never by mutation.
type State struct {
	FS     Filesystem
	Stdin  buffer.Stdin
	Stdout buffer.Stdout
}

// New returns the initial state: a fresh filesystem minted from backend, an
// empty stdin, and an empty stdout.
func New(backend constraint.Backend) State {
	return State{FS: NewFilesystem(backend), Stdin: buffer.NewStdin(), Stdout: buffer.NewStdout()}
}

// WithStdin returns a new State with Stdin replaced.
func (s State) WithStdin(in buffer.Stdin) State {
	s.Stdin = in
	return s
}

// WithStdout returns a new State with Stdout replaced.
func (s State) WithStdout(out buffer.Stdout) State {
	s.Stdout = out
	return s
}

// WithFS returns a new State with FS replaced.
func (s State) WithFS(fs Filesystem) State {
	s.FS = fs
	return s
}

// Equal reports structural equality between two states, used throughout
// the interpreter for state-set deduplication by structural equality.
func (s State) Equal(o State) bool {
	return s.FS.Equal(o.FS) && s.Stdin.Equal(o.Stdin) && s.Stdout.Equal(o.Stdout)
}
