package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/esimov/glyph2svg"
	"github.com/esimov/glyph2svg/utils"
)

const helpBanner = `
┌─┐┬  ┬ ┬┌─┐┬ ┬┌─┐┌─┐┬  ┬┌─┐
│ ┬│  └┬┘├─┘├─┤┌─┘└─┐└┐┌┘│ ┬
└─┘┴─┘ ┴ ┴  ┴ ┴└─┘└─┘ └┘ └─┘

Export the glyphs of a font as individual SVG images.
    Version: %s

Usage: glyph2svg -f <font file|url> -s <destination dir> [options]

`

// Exit codes for the failure categories.
const (
	exitFailure       = 1
	exitUsage         = 2
	exitResourceError = 3
	exitWriteError    = 4
)

// Version indicates the current build version.
var Version string

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run parses the command line arguments, runs the export and returns the exit status.
func run(args []string, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	var (
		fontFile string
		saveTo   string
	)
	flags := flag.NewFlagSet("glyph2svg", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&fontFile, "f", "", "Font file path or URL (shorthand)")
	flags.StringVar(&fontFile, "font-file", "", "Font file path or URL")
	flags.StringVar(&saveTo, "s", "", "Destination directory (shorthand)")
	flags.StringVar(&saveTo, "save-to", "", "Destination directory, it must exist")

	keepGoing := flags.Bool("keep-going", false, "Skip and log the glyphs which cannot be written instead of aborting")
	pngSize := flags.Int("png", 0, "Also write a square PNG preview of the given size (0 disables it)")
	fill := flags.String("color", "", "Fill color of the exported glyphs, e.g. #1e88e5")
	quiet := flags.Bool("quiet", false, "Suppress the progress and status output")
	version := flags.Bool("version", false, "Print the version and exit")

	flags.Usage = func() {
		fmt.Fprintf(stderr, helpBanner, Version)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	if *version {
		fmt.Printf("glyph2svg version: %s\n", Version)
		return 0
	}

	if fontFile == "" || saveTo == "" || flags.NArg() > 0 {
		flags.Usage()
		logger.Println(utils.DecorateText("\nPlease provide both the font file (-f) and the destination directory (-s)!", utils.ErrorMessage))
		return exitUsage
	}
	if *pngSize < 0 {
		flags.Usage()
		logger.Println(utils.DecorateText("\nThe PNG preview size cannot be negative!", utils.ErrorMessage))
		return exitUsage
	}
	if *fill != "" {
		if _, err := utils.HexToRGBA(*fill); err != nil {
			flags.Usage()
			logger.Println(utils.DecorateText("\n"+err.Error(), utils.ErrorMessage))
			return exitUsage
		}
	}

	opts := &glyph2svg.RenderOptions{
		Fill:    *fill,
		PNGSize: *pngSize,
	}
	exporter := &glyph2svg.Exporter{
		Loader:    glyph2svg.NewSfntLoader(opts),
		KeepGoing: *keepGoing,
		PNG:       *pngSize > 0,
		Logger:    logger,
	}

	err := exporter.Execute(&glyph2svg.Ops{
		Src:   fontFile,
		Dst:   saveTo,
		Quiet: *quiet,
		Out:   stderr,
	})
	if err != nil && *quiet {
		logger.Println(err)
	}
	return exitCode(err)
}

// exitCode maps the export error to the process exit status.
func exitCode(err error) int {
	var (
		rerr *glyph2svg.ResourceError
		werr *glyph2svg.WriteError
	)
	switch {
	case err == nil:
		return 0
	case errors.As(err, &rerr):
		return exitResourceError
	case errors.As(err, &werr):
		return exitWriteError
	}
	return exitFailure
}
