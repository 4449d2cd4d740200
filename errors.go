package glyph2svg

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned when the export is cancelled before all the glyphs are processed.
var ErrInterrupted = errors.New("export interrupted")

// ResourceError is returned when the font file cannot be opened or parsed.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("unable to load the font file %q: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// WriteError is returned when an exported glyph cannot be written to the destination.
// Glyph holds the codepoint of the offending glyph, or 0 when the failure
// is not tied to a single glyph (e.g. a missing destination directory).
type WriteError struct {
	Path  string
	Glyph rune
	Err   error
}

func (e *WriteError) Error() string {
	if e.Glyph > 0 {
		return fmt.Sprintf("unable to export glyph U+%04X to %q: %v", e.Glyph, e.Path, e.Err)
	}
	return fmt.Sprintf("unable to write to %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
