// Package buffer implements the Language's immutable stdin/stdout model.
// Stdin is an ordered sequence of lines; Stdout is a current partial line
// plus a history of completed lines, newest-first.
// Every operation returns a new value; nothing here is mutated in place,
// matching the interpreter's copy-on-branch state discipline.
package buffer

import "strings"

// Stdin is an ordered, immutable sequence of lines still to be read.
type Stdin struct {
	lines []string
}

// NewStdin builds a Stdin from an ordered sequence of lines.
func NewStdin(lines ...string) Stdin {
	return Stdin{lines: append([]string(nil), lines...)}
}

// Lines returns the stdin's line sequence. The returned slice must not be
// mutated by the caller.
func (s Stdin) Lines() []string { return s.lines }

// Empty reports whether there are no lines left to read.
func (s Stdin) Empty() bool { return len(s.lines) == 0 }

// Equal reports structural equality, used for state-set deduplication.
func (s Stdin) Equal(o Stdin) bool {
	if len(s.lines) != len(o.lines) {
		return false
	}
	for i, l := range s.lines {
		if l != o.lines[i] {
			return false
		}
	}
	return true
}

// Stdout is an immutable buffer: a current, not-yet-terminated line, plus
// the history of completed lines in newest-first order.
//
// The invariant "empty iff current == "" and history empty" is maintained
// by construction: AppendNewline always flushes current into history, and
// AppendString never creates a completed line on its own.
type Stdout struct {
	current string
	history []string // newest first
}

// NewStdout returns the empty stdout buffer.
func NewStdout() Stdout { return Stdout{} }

// AppendString appends s to the current, not-yet-terminated line.
func (o Stdout) AppendString(s string) Stdout {
	if s == "" {
		return o
	}
	return Stdout{current: o.current + s, history: o.history}
}

// AppendNewline terminates the current line, pushing it onto history (even
// if empty), and starts a fresh current line.
func (o Stdout) AppendNewline() Stdout {
	history := make([]string, len(o.history)+1)
	history[0] = o.current
	copy(history[1:], o.history)
	return Stdout{current: "", history: history}
}

// Concat returns the buffer produced by writing o's contents, then b's
// contents, in order: b's first line (its oldest completed line, or its
// current line if it has no completed lines) extends o's current line, and
// the result's current line is b's current line.
func (o Stdout) Concat(b Stdout) Stdout {
	if len(b.history) == 0 {
		return Stdout{current: o.current + b.current, history: o.history}
	}
	// b.history is newest-first; the oldest entry in b's history is the one
	// that absorbs o's trailing current line.
	merged := make([]string, len(b.history), len(b.history)+len(o.history))
	copy(merged, b.history)
	merged[len(merged)-1] = o.current + merged[len(merged)-1]
	merged = append(merged, o.history...)
	return Stdout{current: b.current, history: merged}
}

// String serializes the buffer, POSIX-style: the completed lines (oldest
// first) joined by "\n", with trailing empty lines dropped, followed by the
// current line with no trailing newline.
func (o Stdout) String() string {
	lines := make([]string, len(o.history))
	for i, l := range o.history {
		lines[len(o.history)-1-i] = l
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	s := strings.Join(lines, "\n")
	if s != "" && o.current != "" {
		s += "\n"
	}
	return s + o.current
}

// PipeToStdin turns this buffer's contents into a Stdin: the reverse of
// [current] ++ history yields the stdin line sequence, so the oldest line
// is read first and the still-open current line is read last.
func (o Stdout) PipeToStdin() Stdin {
	all := make([]string, 0, len(o.history)+1)
	all = append(all, o.current)
	all = append(all, o.history...)
	lines := make([]string, len(all))
	for i, l := range all {
		lines[len(all)-1-i] = l
	}
	return Stdin{lines: lines}
}

// Equal reports structural equality, used for state-set deduplication.
func (o Stdout) Equal(b Stdout) bool {
	if o.current != b.current || len(o.history) != len(b.history) {
		return false
	}
	for i, l := range o.history {
		if l != b.history[i] {
			return false
		}
	}
	return true
}
