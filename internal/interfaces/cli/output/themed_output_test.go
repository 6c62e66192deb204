package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestOutput() (*ThemedOutput, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	to := NewThemedOutput().WithWriter(&out).WithErrorWriter(&errOut).WithColors(false)
	return to, &out, &errOut
}

func TestThemedOutput_Success(t *testing.T) {
	to, _, errOut := newTestOutput()
	to.Success("done: %d files", 3)
	assert.Contains(t, errOut.String(), "✓")
	assert.Contains(t, errOut.String(), "done: 3 files")
}

func TestThemedOutput_Error(t *testing.T) {
	to, _, errOut := newTestOutput()
	to.Error("boom")
	assert.True(t, strings.HasPrefix(errOut.String(), "✗"))
}

func TestThemedOutput_Plain(t *testing.T) {
	to, out, _ := newTestOutput()
	to.Plain("raw")
	assert.Equal(t, "raw", out.String())
}

func TestThemedOutput_Benchmark_WritesToStdoutWriter(t *testing.T) {
	to, out, errOut := newTestOutput()
	to.Benchmark("iteration %d", 1)
	assert.Contains(t, out.String(), "iteration 1")
	assert.Empty(t, errOut.String())
}

func TestThemedOutput_NoANSIWhenColorsDisabled(t *testing.T) {
	to, _, errOut := newTestOutput()
	to.Warning("careful")
	// with colors disabled, no ANSI escape sequences should appear
	assert.NotContains(t, errOut.String(), "\x1b[")
}

func TestThemedOutput_WithColorsRendersANSI(t *testing.T) {
	var out bytes.Buffer
	to := NewThemedOutput().WithWriter(&out).WithErrorWriter(&out).WithColors(true)
	to.Success("colored")
	assert.Contains(t, out.String(), "\x1b[")
}
