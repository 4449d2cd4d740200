package glyph2svg

import "iter"

// Glyph is a borrowed view of a single glyph of an opened font.
type Glyph struct {
	ID   int
	Name string
	// Codepoint is the Unicode value assigned to the glyph.
	// Zero or negative values mean the glyph has no codepoint.
	Codepoint rune
}

// Font is an opened font resource. It owns the underlying font data
// until Close is called.
type Font interface {
	// Glyphs returns a single pass sequence over every glyph of the font.
	Glyphs() iter.Seq[Glyph]
	// Export writes the glyph to path. The output format is derived from the path extension.
	Export(g Glyph, path string) error
	// Close releases the font resource.
	Close() error
}

// Loader opens font resources.
type Loader interface {
	Open(path string) (Font, error)
}
