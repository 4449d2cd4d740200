package glyph2svg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/glyph2svg/utils"
	"golang.org/x/image/vector"
)

// DefaultPNGSize is used for the raster previews when no size is configured.
const DefaultPNGSize = 128

// Rasterize renders the outline into a square image of the given size.
// The glyph box (advance width by ascent-descent) is scaled to fit
// the image height and centered horizontally on a transparent background.
func Rasterize(o *Outline, size int, fill color.Color) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid preview size: %d", size)
	}

	scale := float64(size) / o.Height()
	width := int(math.Ceil(o.Width() * scale))
	if width < 1 {
		width = 1
	}
	top := o.Top()

	dst := image.NewRGBA(image.Rect(0, 0, width, size))
	r := vector.NewRasterizer(width, size)
	r.DrawOp = draw.Src

	tx := func(p Point) (float32, float32) {
		return float32(p.X * scale), float32((top - p.Y) * scale)
	}
	for _, seg := range o.Segments {
		switch seg.Op {
		case MoveTo:
			r.MoveTo(tx(seg.Args[0]))
		case LineTo:
			r.LineTo(tx(seg.Args[0]))
		case QuadTo:
			x1, y1 := tx(seg.Args[0])
			x2, y2 := tx(seg.Args[1])
			r.QuadTo(x1, y1, x2, y2)
		case CubeTo:
			x1, y1 := tx(seg.Args[0])
			x2, y2 := tx(seg.Args[1])
			x3, y3 := tx(seg.Args[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case ClosePath:
			r.ClosePath()
		}
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})

	var img image.Image = dst
	if width > size {
		img = imaging.Fit(dst, size, size, imaging.Lanczos)
	}
	bg := imaging.New(size, size, color.NRGBA{})

	return imaging.PasteCenter(bg, img), nil
}

// SavePNG rasterizes the outline and saves it as a PNG image.
func SavePNG(name string, o *Outline, size int, fill string) error {
	if size <= 0 {
		size = DefaultPNGSize
	}
	col := color.Color(color.Black)
	if fill != "" {
		c, err := utils.HexToRGBA(fill)
		if err != nil {
			return err
		}
		col = c
	}

	img, err := Rasterize(o, size, col)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, name); err != nil {
		return fmt.Errorf("unable to save the preview image: %w", err)
	}
	return nil
}
