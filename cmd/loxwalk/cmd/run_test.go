package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/loxwalk/internal/config"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// whatever was written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	fn()
	os.Stdout = orig
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunFileSuccessPrintsOutputAndReturnsZero(t *testing.T) {
	path := writeScript(t, `print "hello";`)
	var code int
	out := captureStdout(t, func() {
		code = runFile(path, config.Default(), nil)
	})
	assert.Equal(t, exitSuccess, code)
	assert.Equal(t, "hello\n", out)
}

func TestRunFileMissingFileReturns65(t *testing.T) {
	code := runFile(filepath.Join(t.TempDir(), "missing.lox"), config.Default(), nil)
	assert.Equal(t, exitFileReadError, code)
}

func TestRunFilePipelineErrorReturns70(t *testing.T) {
	path := writeScript(t, `var ;`)
	code := runFile(path, config.Default(), nil)
	assert.Equal(t, exitPipelineError, code)
}

func TestRunFileRuntimeErrorReturns70(t *testing.T) {
	path := writeScript(t, `print 1 + "a";`)
	code := runFile(path, config.Default(), nil)
	assert.Equal(t, exitPipelineError, code)
}

// withStdin temporarily replaces os.Stdin with r for the duration of fn.
func withStdin(t *testing.T, r *os.File, fn func()) {
	t.Helper()
	orig := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	fn()
}

func TestREPLAutoPrintsBareExpression(t *testing.T) {
	stdinR, stdinW, err := os.Pipe()
	require.NoError(t, err)

	var out string
	withStdin(t, stdinR, func() {
		out = captureStdout(t, func() {
			done := make(chan struct{})
			go func() {
				runREPL(config.Default(), nil)
				close(done)
			}()
			_, _ = stdinW.WriteString("1 + 2\n")
			_ = stdinW.Close()
			<-done
		})
	})

	assert.Contains(t, out, "3\n")
}

func TestREPLPersistsStateAcrossLines(t *testing.T) {
	stdinR, stdinW, err := os.Pipe()
	require.NoError(t, err)

	var out string
	withStdin(t, stdinR, func() {
		out = captureStdout(t, func() {
			done := make(chan struct{})
			go func() {
				runREPL(config.Default(), nil)
				close(done)
			}()
			_, _ = stdinW.WriteString("var x = 41;\n")
			_, _ = stdinW.WriteString("x + 1;\n")
			_ = stdinW.Close()
			<-done
		})
	})

	assert.Contains(t, out, "42\n")
}
