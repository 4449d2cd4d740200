package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_Spinner(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "exporting", time.Millisecond, false)
	s.Progress("%d glyphs processed", 3)
	s.Start()
	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.StopMsg = "done\n"
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "exporting")
	assert.Contains(t, out, "3 glyphs processed")
	assert.Contains(t, out, "done\n")
}
