// Package model defines the data structures shared by the interpreter, the
// adapters and the user interfaces.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// BaseName returns the file name without directory and extension.
// It is used to name programs and exercises after the file they came from.
func (p Path) BaseName() string {
	base := filepath.Base(string(p))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ext returns the lower-cased file extension including the dot.
func (p Path) Ext() string {
	return strings.ToLower(filepath.Ext(string(p)))
}

// ProgramSource identifies where a program comes from: either a file on disk
// or one of the built-in samples. Exactly one field is expected to be set.
type ProgramSource struct {
	Path   Path
	Sample string
}

// String returns a short human readable description of the source.
func (s ProgramSource) String() string {
	if s.Sample != "" {
		return "sample:" + s.Sample
	}

	return string(s.Path)
}
