package glyph2svg

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const svgHeader = `<?xml version="1.0" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd" >
`

// WriteSVG serializes the glyph outline as a standalone SVG document.
// The view box spans the advance width horizontally and the ascent to descent
// range vertically, so glyphs of the same font line up when placed side by side.
func WriteSVG(w io.Writer, o *Outline, fill string) error {
	bw := bufio.NewWriter(w)

	width, height, top := o.Width(), o.Height(), o.Top()

	bw.WriteString(svgHeader)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 %s %s %s">`+"\n",
		formatCoord(-top), formatCoord(width), formatCoord(height),
	)
	// Font outlines use an upward pointing y axis.
	bw.WriteString(`  <g transform="matrix(1 0 0 -1 0 0)">` + "\n")
	bw.WriteString(`    <path`)
	if fill != "" {
		fmt.Fprintf(bw, ` fill="%s"`, escapeAttr(fill))
	}
	fmt.Fprintf(bw, ` d="%s"/>`+"\n", PathData(o))
	bw.WriteString("  </g>\n</svg>\n")

	return bw.Flush()
}

// PathData returns the SVG path data of the outline using absolute commands.
func PathData(o *Outline) string {
	var sb strings.Builder

	for _, seg := range o.Segments {
		var cmd byte
		switch seg.Op {
		case MoveTo:
			cmd = 'M'
		case LineTo:
			cmd = 'L'
		case QuadTo:
			cmd = 'Q'
		case CubeTo:
			cmd = 'C'
		case ClosePath:
			cmd = 'Z'
		default:
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(cmd)
		for i, p := range seg.Args[:seg.Op.NumPoints()] {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatCoord(p.X))
			sb.WriteByte(' ')
			sb.WriteString(formatCoord(p.Y))
		}
	}
	return sb.String()
}

// formatCoord rounds the value to two decimals and drops trailing zeros.
func formatCoord(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `"`, "&quot;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
