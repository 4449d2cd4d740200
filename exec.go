package glyph2svg

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esimov/glyph2svg/utils"
	"golang.org/x/term"
)

// Ops holds the command line level options of an export run.
type Ops struct {
	Src, Dst string
	Quiet    bool
	// Out receives the status messages. Defaults to os.Stderr.
	Out io.Writer
}

// Execute runs the glyph export described by op and reports the outcome.
// The source can be a local font file or an http(s) URL, in which case
// the font is downloaded into a temporary file first.
func (e *Exporter) Execute(op *Ops) error {
	out := op.Out
	if out == nil {
		out = os.Stderr
	}
	src := op.Src

	// Check if source path is a local font or URL.
	if utils.IsValidUrl(src) {
		file, err := utils.DownloadFont(src)
		if err != nil {
			return &ResourceError{Path: src, Err: err}
		}
		defer os.Remove(file.Name())
		if err := file.Close(); err != nil {
			log.Printf("could not close the downloaded file: %v", err)
		}
		src = file.Name()
	}

	// Capture CTRL-C signal and stop the export before the next glyph,
	// so the temporary font and the cursor visibility are restored on the way out.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	cancel := make(chan struct{})
	done := make(chan struct{})
	defer func() {
		signal.Stop(signalChan)
		close(done)
	}()

	parent := e.Cancel
	defer func() { e.Cancel = parent }()
	e.Cancel = cancel

	select {
	case <-parent:
		close(cancel)
	default:
		go func() {
			select {
			case <-signalChan:
			case <-parent:
			case <-done:
				return
			}
			close(cancel)
		}()
	}

	var spinner *utils.Spinner
	if !op.Quiet && out == os.Stderr && term.IsTerminal(int(os.Stderr.Fd())) {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ GLYPH2SVG", utils.StatusMessage),
			utils.DecorateText("⇢ exporting glyphs...", utils.DefaultMessage),
		)
		spinner = utils.NewSpinner(out, msg, time.Millisecond*80, true)

		progress := e.Progress
		defer func() { e.Progress = progress }()
		e.Progress = func(processed int, g Glyph) {
			spinner.Progress("%d glyphs processed", processed)
			if progress != nil {
				progress(processed, g)
			}
		}
		spinner.Start()
	}

	now := time.Now()
	report, err := e.ExportAll(src, op.Dst)

	if spinner != nil {
		if err != nil {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ GLYPH2SVG", utils.StatusMessage),
				utils.DecorateText("exporting glyphs failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage),
			)
		} else {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ GLYPH2SVG", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the glyphs have been exported successfully ✔", utils.SuccessMessage),
			)
		}
		spinner.Stop()
	}

	if !op.Quiet {
		printOpStatus(out, op.Dst, report, err)
		if err == nil {
			fmt.Fprintf(out, "Execution time: %s\n",
				utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
		}
	}
	return err
}

// printOpStatus displays the relevant information about the export process.
func printOpStatus(w io.Writer, dst string, report *Report, err error) {
	if report != nil {
		fmt.Fprintf(w, "\n%s glyph(s) exported into %s, %d skipped without codepoint",
			utils.DecorateText(fmt.Sprintf("%d", report.Exported), utils.SuccessMessage),
			dst, report.Skipped,
		)
		if report.Failed > 0 {
			fmt.Fprintf(w, ", %s failed",
				utils.DecorateText(fmt.Sprintf("%d", report.Failed), utils.ErrorMessage))
		}
		fmt.Fprintln(w)
	}
	if err != nil {
		fmt.Fprintf(w, "%s%s\n",
			utils.DecorateText("\nError exporting the glyphs: ", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v", err), utils.DefaultMessage),
		)
	}
}
