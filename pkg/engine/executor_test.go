package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arthur-debert/savecrypt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool writes a shell script standing in for the transform tool. It
// records its arguments next to itself and then runs body.
func fakeTool(t *testing.T, body string) (script, argsFile string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	script = filepath.Join(dir, "blcrypt.sh")
	argsFile = filepath.Join(dir, "args.txt")
	content := "#!/bin/sh\nfor a in \"$@\"; do echo \"$a\" >> \"" + argsFile + "\"; done\n" + body + "\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0755))
	return script, argsFile
}

func testJob(t *testing.T) types.ConversionJob {
	t.Helper()
	job, ok := types.NewConversionJob(filepath.Join(t.TempDir(), "save.yaml"))
	require.True(t, ok)
	job.Identity = "7656"
	return job
}

func TestTransform_Success(t *testing.T) {
	script, argsFile := fakeTool(t, "echo converted; exit 0")
	job := testJob(t)

	outcome := New("sh", script).Transform(context.Background(), job)
	assert.True(t, outcome.Launched)
	assert.True(t, outcome.Succeeded)

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"encrypt", "-in", job.InputPath, "-out", job.OutputPath, "-id", "7656", "--encode-serials"},
		strings.Fields(string(recorded)))
}

func TestTransform_Failure(t *testing.T) {
	script, _ := fakeTool(t, "echo 'bad key' >&2; exit 3")

	outcome := New("sh", script).Transform(context.Background(), testJob(t))
	assert.True(t, outcome.Launched)
	assert.False(t, outcome.Succeeded)
	assert.Equal(t, "bad key\n", outcome.DiagnosticText)
}

func TestTransform_FailureWithoutStderr(t *testing.T) {
	script, _ := fakeTool(t, "exit 1")

	outcome := New("sh", script).Transform(context.Background(), testJob(t))
	assert.True(t, outcome.Launched)
	assert.False(t, outcome.Succeeded)
	assert.Empty(t, outcome.DiagnosticText)
}

func TestTransform_MissingScript(t *testing.T) {
	outcome := New("sh", filepath.Join(t.TempDir(), "blcrypt.py")).Transform(context.Background(), testJob(t))
	assert.False(t, outcome.Launched)
	assert.False(t, outcome.Succeeded)
	assert.Equal(t, "blcrypt.py not found in script directory", outcome.DiagnosticText)
}

func TestTransform_MissingInterpreter(t *testing.T) {
	script, _ := fakeTool(t, "exit 0")

	outcome := New("savecrypt-no-such-interpreter", script).Transform(context.Background(), testJob(t))
	assert.False(t, outcome.Launched)
	assert.False(t, outcome.Succeeded)
	assert.Contains(t, outcome.DiagnosticText, "savecrypt-no-such-interpreter")
}
