// Package source carries source-file metadata referenced by error
// positions. The tree itself never reads file contents; this exists so a
// diagnostic can show the offending line.
package source

import (
	"path/filepath"
	"strings"
)

// SourceFile represents a source file with its content and metadata.
type SourceFile struct {
	Name    string   // display name (e.g. "app.js", "<eval>")
	Path    string   // full file path, empty for eval input
	Content string   // the source text
	lines   []string // cached split lines, lazily built
}

// NewSourceFile creates a new source file.
func NewSourceFile(name, path, content string) *SourceFile {
	return &SourceFile{Name: name, Path: path, Content: content}
}

// NewEvalSource creates a source file for eval input.
func NewEvalSource(content string) *SourceFile {
	return &SourceFile{Name: "<eval>", Content: content}
}

// FromFile creates a SourceFile from a file path and its content.
func FromFile(filePath, content string) *SourceFile {
	return NewSourceFile(filepath.Base(filePath), filePath, content)
}

// Lines returns the source split into lines (cached).
func (sf *SourceFile) Lines() []string {
	if sf.lines == nil {
		sf.lines = strings.Split(sf.Content, "\n")
	}
	return sf.lines
}

// DisplayPath returns the best path for display.
func (sf *SourceFile) DisplayPath() string {
	if sf.Path != "" {
		return sf.Path
	}
	return sf.Name
}

// IsFile reports whether this represents an actual file on disk.
func (sf *SourceFile) IsFile() bool {
	return sf.Path != ""
}
