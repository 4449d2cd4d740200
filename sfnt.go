package glyph2svg

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// RenderOptions controls how the glyphs are rendered by the sfnt backend.
type RenderOptions struct {
	// Fill is the fill color of the glyph shape, given as a hex value.
	// An empty value leaves the SVG fill unset and renders previews in black.
	Fill string
	// PNGSize is the edge length of the square PNG previews, in pixels.
	PNGSize int
}

// SfntLoader opens TrueType and OpenType fonts.
type SfntLoader struct {
	opts *RenderOptions
}

var _ Loader = (*SfntLoader)(nil)

// NewSfntLoader returns a loader for TrueType and OpenType font files.
func NewSfntLoader(opts *RenderOptions) *SfntLoader {
	if opts == nil {
		opts = &RenderOptions{}
	}
	return &SfntLoader{opts: opts}
}

// Open reads and parses the font file. The returned font keeps
// the parsed font data in memory until it is closed.
func (l *SfntLoader) Open(name string) (Font, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, &ResourceError{Path: name, Err: err}
	}
	defer file.Close()

	info, err := sfnt.Read(file)
	if err != nil {
		return nil, &ResourceError{Path: name, Err: err}
	}
	if info.Outlines == nil {
		return nil, &ResourceError{Path: name, Err: errors.New("the font contains no glyph outlines")}
	}

	return &sfntFont{
		info:       info,
		opts:       l.opts,
		codepoints: primaryCodepoints(info),
	}, nil
}

type sfntFont struct {
	info *sfnt.Font
	opts *RenderOptions

	// codepoints maps every glyph reachable through the cmap to its lowest codepoint.
	codepoints map[glyph.ID]rune
}

// primaryCodepoints inverts the best cmap subtable of the font.
// When several codepoints share a glyph the lowest one wins.
func primaryCodepoints(info *sfnt.Font) map[glyph.ID]rune {
	rev := make(map[glyph.ID]rune)
	if info.CMapTable == nil {
		return rev
	}
	cmap, err := info.CMapTable.GetBest()
	if err != nil || cmap == nil {
		return rev
	}

	low, high := cmap.CodeRange()
	for r := low; r <= high; r++ {
		gid := cmap.Lookup(r)
		if gid == 0 {
			continue
		}
		if r2, ok := rev[gid]; !ok || r < r2 {
			rev[gid] = r
		}
	}
	return rev
}

func (f *sfntFont) Glyphs() iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		if f.info == nil {
			return
		}
		for i := range f.info.NumGlyphs() {
			gid := glyph.ID(i)
			cp, ok := f.codepoints[gid]
			if !ok {
				cp = -1
			}
			g := Glyph{
				ID:        i,
				Name:      f.info.GlyphName(gid),
				Codepoint: cp,
			}
			if !yield(g) {
				return
			}
		}
	}
}

func (f *sfntFont) Export(g Glyph, name string) error {
	if f.info == nil {
		return errors.New("font is closed")
	}
	if g.ID < 0 || g.ID >= f.info.NumGlyphs() {
		return fmt.Errorf("glyph index %d out of range", g.ID)
	}
	outline := f.outline(glyph.ID(g.ID))

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".svg":
		return writeFile(name, func(file *os.File) error {
			return WriteSVG(file, outline, f.opts.Fill)
		})
	case ".png":
		return SavePNG(name, outline, f.opts.PNGSize, f.opts.Fill)
	default:
		return fmt.Errorf("%v file type not supported", ext)
	}
}

func (f *sfntFont) Close() error {
	f.info = nil
	f.codepoints = nil
	return nil
}

// outline converts the glyph path of the font into an Outline.
func (f *sfntFont) outline(gid glyph.ID) *Outline {
	o := &Outline{
		Advance:    float64(f.info.GlyphWidth(gid)),
		Ascent:     float64(f.info.Ascent),
		Descent:    float64(f.info.Descent),
		UnitsPerEm: float64(f.info.UnitsPerEm),
	}

	for cmd, points := range f.info.Outlines.Path(gid) {
		var seg Segment
		switch cmd {
		case path.CmdMoveTo:
			seg.Op = MoveTo
		case path.CmdLineTo:
			seg.Op = LineTo
		case path.CmdQuadTo:
			seg.Op = QuadTo
		case path.CmdCubeTo:
			seg.Op = CubeTo
		case path.CmdClose:
			seg.Op = ClosePath
		default:
			continue
		}
		for i := 0; i < seg.Op.NumPoints() && i < len(points); i++ {
			seg.Args[i] = Point{X: points[i].X, Y: points[i].Y}
		}
		o.Segments = append(o.Segments, seg)
	}
	return o
}

// writeFile creates (or truncates) the named file and passes it to the write function.
// The file is removed if the write function fails.
func writeFile(name string, write func(*os.File) error) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		os.Remove(name)
		return err
	}
	return file.Close()
}
