package errors

import "github.com/ContextLogic/slimit/pkg/source"

// Position represents a specific location in the source code. Line and
// column are 1-based for human-readability; the byte offsets are 0-based
// for tooling. A zero Column means the column is unknown: tree nodes only
// record the line they were constructed with.
type Position struct {
	Line     int                // 1-based line number
	Column   int                // 1-based column number, 0 when unknown
	StartPos int                // 0-based byte offset of the span start
	EndPos   int                // 0-based byte offset of the span end (exclusive)
	Source   *source.SourceFile // reference to the source file, may be nil
}
