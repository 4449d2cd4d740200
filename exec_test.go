package glyph2svg

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func TestExec_LocalFont(t *testing.T) {
	var out bytes.Buffer
	font := &fakeFont{glyphs: []Glyph{
		{ID: 1, Name: "A", Codepoint: 0x41},
		{ID: 2, Name: "f_i", Codepoint: -1},
	}}
	dest := t.TempDir()

	e := &Exporter{Loader: &fakeLoader{font: font}}
	err := e.Execute(&Ops{Src: "font.ttf", Dst: dest, Out: &out})

	assert.NoError(t, err)
	assert.Equal(t, []string{"41.svg"}, dirEntries(t, dest))
	assert.Contains(t, out.String(), "glyph(s) exported into "+dest+", 1 skipped without codepoint")
	assert.Contains(t, out.String(), "Execution time:")
}

func TestExec_Quiet(t *testing.T) {
	var out bytes.Buffer
	dest := t.TempDir()

	e := &Exporter{Loader: &fakeLoader{font: &fakeFont{glyphs: []Glyph{{ID: 1, Codepoint: 0x41}}}}}
	err := e.Execute(&Ops{Src: "font.ttf", Dst: dest, Out: &out, Quiet: true})

	assert.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestExec_ReportsFailure(t *testing.T) {
	var out bytes.Buffer

	e := &Exporter{Loader: NewSfntLoader(nil)}
	err := e.Execute(&Ops{Src: "missing.ttf", Dst: t.TempDir(), Out: &out})

	var rerr *ResourceError
	assert.ErrorAs(t, err, &rerr)
	assert.Contains(t, out.String(), "Error exporting the glyphs")
	assert.NotContains(t, out.String(), "Execution time:")
}

func TestExec_RemoteFont(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(goregular.TTF)
	}))
	defer ts.Close()

	dest := t.TempDir()
	e := &Exporter{Loader: NewSfntLoader(nil)}
	err := e.Execute(&Ops{Src: ts.URL + "/goregular.ttf", Dst: dest, Quiet: true})

	assert.NoError(t, err)
	assert.Contains(t, dirEntries(t, dest), "41.svg")
}

func TestExec_RemoteNotAFont(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>not found</body></html>"))
	}))
	defer ts.Close()

	dest := t.TempDir()
	e := &Exporter{Loader: NewSfntLoader(nil)}
	err := e.Execute(&Ops{Src: ts.URL + "/font.ttf", Dst: dest, Quiet: true})

	var rerr *ResourceError
	assert.ErrorAs(t, err, &rerr)
	assert.Empty(t, dirEntries(t, dest))
}

func TestExec_InterruptedRemoteFont(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(goregular.TTF)
	}))
	defer ts.Close()

	dest := t.TempDir()
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	cancel := make(chan struct{})
	close(cancel)

	e := &Exporter{Loader: NewSfntLoader(nil), Cancel: cancel}
	err := e.Execute(&Ops{Src: ts.URL + "/goregular.ttf", Dst: dest, Quiet: true})

	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Empty(t, dirEntries(t, dest))
	assert.Empty(t, dirEntries(t, tmp), "the downloaded font should be removed")
	assert.Equal(t, (<-chan struct{})(cancel), e.Cancel)
}
