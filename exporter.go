package glyph2svg

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Exporter options
type Exporter struct {
	Loader Loader
	// KeepGoing makes the exporter log a failed glyph and continue with the next one
	// instead of aborting the whole run on the first write error.
	KeepGoing bool
	// PNG enables the raster previews written next to each SVG file.
	PNG bool
	// Logger receives the per glyph failures in keep going mode. Nil discards them.
	Logger *log.Logger
	// Progress, when set, is called after each glyph has been processed.
	Progress func(processed int, g Glyph)
	// Cancel stops the run before the next glyph once it is closed.
	Cancel <-chan struct{}
}

// Report summarizes an export run.
type Report struct {
	Exported int
	Skipped  int
	Failed   int
	// Files lists the written files in the order they were produced.
	Files []string
}

// HexName returns the uppercase hexadecimal representation of the codepoint,
// without any prefix or zero padding.
func HexName(c rune) string {
	return strings.ToUpper(strconv.FormatInt(int64(c), 16))
}

// ExportAll opens the font file and exports every glyph which has a positive
// codepoint assigned as <dest>/<HEX>.svg. The destination directory must exist.
//
// A *ResourceError is returned if the font cannot be loaded, and a *WriteError
// if the destination is not a usable directory or an export fails.
// The font is released on every return path.
func (e *Exporter) ExportAll(fontPath, dest string) (*Report, error) {
	if e.Loader == nil {
		return nil, errors.New("no font loader configured")
	}
	logger := e.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	font, err := e.Loader.Open(fontPath)
	if err != nil {
		var rerr *ResourceError
		if !errors.As(err, &rerr) {
			err = &ResourceError{Path: fontPath, Err: err}
		}
		return nil, err
	}
	defer func() {
		if err := font.Close(); err != nil {
			logger.Printf("could not close the font file: %v", err)
		}
	}()

	if err := checkDir(dest); err != nil {
		return nil, &WriteError{Path: dest, Err: err}
	}

	report := &Report{}
	processed := 0
	for g := range font.Glyphs() {
		select {
		case <-e.Cancel:
			return report, ErrInterrupted
		default:
		}
		processed++
		if g.Codepoint <= 0 {
			report.Skipped++
			e.progress(processed, g)
			continue
		}

		base := dest + "/" + HexName(g.Codepoint)
		targets := []string{base + ".svg"}
		if e.PNG {
			targets = append(targets, base+".png")
		}

		exported := true
		for _, target := range targets {
			if err := font.Export(g, target); err != nil {
				werr := &WriteError{Path: target, Glyph: g.Codepoint, Err: err}
				if !e.KeepGoing {
					return report, werr
				}
				logger.Printf("%v (glyph %q)", werr, g.Name)
				report.Failed++
				exported = false
				break
			}
			report.Files = append(report.Files, target)
		}
		if exported {
			report.Exported++
		}
		e.progress(processed, g)
	}

	if report.Failed > 0 {
		return report, &WriteError{
			Path: dest,
			Err:  fmt.Errorf("%d glyph(s) could not be exported", report.Failed),
		}
	}
	return report, nil
}

func (e *Exporter) progress(processed int, g Glyph) {
	if e.Progress != nil {
		e.Progress(processed, g)
	}
}

// checkDir verifies that the destination exists and is a directory.
func checkDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}
