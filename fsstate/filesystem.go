// Package fsstate implements the Language's opaque Filesystem handle and
// the symbolic State it is threaded through. The interpreter never
// inspects a Filesystem's constraint directly; it only copies it on branch
// and hands it to the utility interpreter, which is the sole collaborator
// responsible for producing satisfiable resulting clauses.
package fsstate

import "github.com/shsym/shsym/constraint"

// Filesystem is an opaque handle: a symbolic root variable, the
// accumulated satisfiable constraint over it, the current working path,
// and optionally the root variable the filesystem started from (useful for
// a utility interpreter that wants to express "unchanged since the start of
// this branch").
type Filesystem struct {
	Root        constraint.Variable
	Clause      constraint.Clause
	Cwd         constraint.Path
	InitialRoot constraint.Variable
	hasInitial  bool
}

// NewFilesystem returns a fresh, empty filesystem rooted at a new Variable
// minted from backend, with an empty (trivially satisfiable) clause and Cwd
// at the root.
func NewFilesystem(backend constraint.Backend) Filesystem {
	root := backend.Fresh()
	return Filesystem{
		Root:        root,
		Clause:      constraint.Empty(),
		Cwd:         constraint.Path{},
		InitialRoot: root,
		hasInitial:  true,
	}
}

// WithClause returns a new Filesystem with Clause replaced. Never mutates
// the receiver, matching the "copied on branch; never mutated in place"
// invariant.
func (f Filesystem) WithClause(c constraint.Clause) Filesystem {
	f.Clause = c
	return f
}

// WithCwd returns a new Filesystem with Cwd replaced.
func (f Filesystem) WithCwd(p constraint.Path) Filesystem {
	f.Cwd = p
	return f
}

// InitialRootVariable returns the root variable the filesystem started
// from and whether one was recorded.
func (f Filesystem) InitialRootVariable() (constraint.Variable, bool) {
	return f.InitialRoot, f.hasInitial
}

// Equal reports structural equality between two filesystems, used for
// state-set deduplication.
func (f Filesystem) Equal(o Filesystem) bool {
	if f.Root != o.Root || !f.Clause.Equal(o.Clause) {
		return false
	}
	if len(f.Cwd.Segments) != len(o.Cwd.Segments) {
		return false
	}
	for i := range f.Cwd.Segments {
		if f.Cwd.Segments[i] != o.Cwd.Segments[i] {
			return false
		}
	}
	return f.hasInitial == o.hasInitial && (!f.hasInitial || f.InitialRoot == o.InitialRoot)
}
