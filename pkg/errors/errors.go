package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel causes carried by RewriteError, for errors.Is dispatch.
var (
	// ErrNoParent reports a structural replacement attempted on a node
	// with no parent (the root).
	ErrNoParent = errors.New("node has no parent")
	// ErrNotChild reports a node whose recorded parent holds no slot
	// referencing it.
	ErrNotChild = errors.New("node is not a child of its parent")
	// ErrBadSlot reports a replacement whose type cannot occupy the slot
	// holding the target node.
	ErrBadSlot = errors.New("replacement cannot occupy slot")
)

// TreeError is the interface implemented by all syntax-tree errors.
type TreeError interface {
	error
	Pos() Position
	Kind() string // e.g. "Rewrite"
	// Message returns the specific error message without position info,
	// for callers that format the error themselves.
	Message() string
	Unwrap() error
}

// RewriteError represents a failed structural mutation of the tree. Its
// Cause is one of the sentinel errors above, reachable through errors.Is.
type RewriteError struct {
	Position
	Msg   string
	Cause error
}

// NewRewrite builds a RewriteError at pos with the given cause.
func NewRewrite(pos Position, msg string, cause error) *RewriteError {
	return &RewriteError{Position: pos, Msg: msg, Cause: cause}
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("Rewrite Error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
func (e *RewriteError) Pos() Position   { return e.Position }
func (e *RewriteError) Kind() string    { return "Rewrite" }
func (e *RewriteError) Message() string { return e.Msg }
func (e *RewriteError) Unwrap() error   { return e.Cause }

// Display writes a list of tree errors to w in a user-friendly format,
// including the offending source line and a position marker when the error
// carries a source reference.
func Display(w io.Writer, errs []TreeError) {
	for _, err := range errs {
		pos := err.Pos()

		fmt.Fprintf(w, "%s Error at %d:%d: %s\n", err.Kind(), pos.Line, pos.Column, err.Message())

		if pos.Source == nil {
			continue
		}
		lines := pos.Source.Lines()
		lineIdx := pos.Line - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}
		sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")
		fmt.Fprintf(w, "  %s\n", sourceLine)
		fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", pos.Column))
		fmt.Fprintln(w)
	}
}
