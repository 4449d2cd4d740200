/*
Package glyph2svg exports the glyphs of a TrueType or OpenType font as individual SVG images.
Every glyph which has a Unicode codepoint assigned is written into the destination directory,
named after the uppercase hexadecimal value of its codepoint (e.g. 41.svg, 1F600.svg).
Glyphs without a codepoint, like ligatures or composite parts, are skipped.

The package provides a command line interface. To check the supported flags type:

	$ glyph2svg --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/glyph2svg"
	)

	func main() {
		e := &glyph2svg.Exporter{
			Loader: glyph2svg.NewSfntLoader(nil),
		}

		report, err := e.ExportAll("font.ttf", "glyphs")
		if err != nil {
			log.Fatalf("Error exporting the glyphs: %v", err)
		}
		log.Printf("%d glyphs exported", report.Exported)
	}
*/
package glyph2svg
