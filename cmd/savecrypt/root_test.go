package savecrypt

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arthur-debert/savecrypt/pkg/config"
	"github.com/arthur-debert/savecrypt/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine stands in for the transform tool: it writes "converted" to
// whatever follows -out.
const fakeEngine = `#!/bin/sh
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-out" ]; then out="$2"; fi
  shift
done
echo converted > "$out"
`

type cmdResult struct {
	err    error
	stdout string
	stderr string
}

// programDir prepares a program directory with a credential file and a fake
// engine, and points every savecrypt location at temporary directories.
func programDir(t *testing.T, identity string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "STEAMID.txt"), identity)
	testutil.WriteFile(t, filepath.Join(dir, "blcrypt.py"), fakeEngine)

	t.Setenv("SAVECRYPT_HOME", dir)
	t.Setenv("SAVECRYPT_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("SAVECRYPT_ENGINE_COMMAND", "sh")
	t.Setenv("NO_COLOR", "1")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return cmdResult{err: err, stdout: stdout.String(), stderr: stderr.String()}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

func TestRoot_EncryptWritesOutput(t *testing.T) {
	programDir(t, "76561198000000000\n")
	saves := testutil.SaveDir(t, "save.yaml")

	res := execute(t, "", filepath.Join(saves, "save.yaml"))

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Running encryption...")
	assert.Contains(t, res.stdout, "Successfully written to save.sav")

	data, err := os.ReadFile(filepath.Join(saves, "save.sav"))
	require.NoError(t, err)
	assert.Equal(t, "converted\n", string(data))
}

func TestRoot_DecryptWritesOutput(t *testing.T) {
	programDir(t, "76561198000000000")
	saves := testutil.SaveDir(t, "save.sav")

	res := execute(t, "", filepath.Join(saves, "save.sav"), "-v")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Running decryption...")
	assert.True(t, testutil.Exists(filepath.Join(saves, "save.yaml")))
}

func TestRoot_CancelExitsCleanly(t *testing.T) {
	programDir(t, "76561198000000000")
	saves := testutil.SaveDir(t, "save.yaml", "save.sav")

	res := execute(t, "c\n", filepath.Join(saves, "save.yaml"))

	assert.Equal(t, 0, exitCode(res.err))
	assert.Contains(t, res.stdout, "save.sav already exists!")
	assert.Contains(t, res.stdout, "Operation cancelled")

	data, err := os.ReadFile(filepath.Join(saves, "save.sav"))
	require.NoError(t, err)
	assert.Equal(t, "placeholder: save.sav\n", string(data))
}

func TestRoot_RenameKeepsExistingOutput(t *testing.T) {
	programDir(t, "76561198000000000")
	saves := testutil.SaveDir(t, "save.yaml", "save.sav")

	res := execute(t, "r\n", filepath.Join(saves, "save.yaml"))

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Saving as: ")

	matches, err := filepath.Glob(filepath.Join(saves, "save_????.sav"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestRoot_NoArguments(t *testing.T) {
	programDir(t, "76561198000000000")

	res := execute(t, "")

	assert.Equal(t, 1, exitCode(res.err))
	assert.Contains(t, res.stderr, "Please drag and drop a .yaml or .sav file onto this program")
}

func TestRoot_MissingCredential(t *testing.T) {
	dir := programDir(t, "")
	require.NoError(t, os.Remove(filepath.Join(dir, "STEAMID.txt")))
	saves := testutil.SaveDir(t, "save.yaml")

	res := execute(t, "", filepath.Join(saves, "save.yaml"))

	assert.Equal(t, 1, exitCode(res.err))
	assert.Contains(t, res.stderr, "STEAMID.txt not found in script directory")
	assert.False(t, testutil.Exists(filepath.Join(saves, "save.sav")))
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := programDir(t, "76561198000000000")
	testutil.WriteFile(t, filepath.Join(dir, "savecrypt.toml"), "[conflict]\nmax_random_atempts = 3\n")
	saves := testutil.SaveDir(t, "save.yaml")

	res := execute(t, "", filepath.Join(saves, "save.yaml"))

	assert.Equal(t, 1, exitCode(res.err))
	assert.Contains(t, res.stderr, "Failed to load configuration")
}

func TestRoot_InvalidFormatFlag(t *testing.T) {
	programDir(t, "76561198000000000")
	saves := testutil.SaveDir(t, "save.yaml")

	res := execute(t, "", "--format", "fancy", filepath.Join(saves, "save.yaml"))

	assert.Equal(t, 1, exitCode(res.err))
	assert.Contains(t, res.stderr, "Invalid output format")
}

func TestRoot_DefaultConfig(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	res := execute(t, "", "--default-config")

	require.NoError(t, res.err)
	assert.Equal(t, config.GetDefaultConfigContent(), res.stdout)
}

func TestRoot_Version(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	res := execute(t, "", "--version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "dev")
}

func TestRoot_FailureReportedOnlyThroughNotifier(t *testing.T) {
	dir := programDir(t, "76561198000000000")
	testutil.WriteFile(t, filepath.Join(dir, "blcrypt.py"), "#!/bin/sh\necho 'bad key' >&2\nexit 2\n")
	saves := testutil.SaveDir(t, "save.sav")

	stderrFile, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	origStderr := os.Stderr
	os.Stderr = stderrFile
	t.Cleanup(func() {
		os.Stderr = origStderr
		_ = stderrFile.Close()
	})

	res := execute(t, "", filepath.Join(saves, "save.sav"))

	assert.Equal(t, 1, exitCode(res.err))
	assert.Equal(t, 1, strings.Count(res.stderr, "bad key"))
	assert.Contains(t, res.stderr, "Command failed: bad key\n")
	assert.NotContains(t, res.stderr, "Command failed: bad key\n\n")

	console, err := os.ReadFile(stderrFile.Name())
	require.NoError(t, err)
	assert.Empty(t, string(console))
}

func TestRoot_LogsToStateDir(t *testing.T) {
	programDir(t, "76561198000000000")
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	saves := testutil.SaveDir(t, "save.yaml")

	res := execute(t, "", filepath.Join(saves, "save.yaml"))
	require.NoError(t, res.err)

	assert.True(t, testutil.Exists(filepath.Join(stateHome, "savecrypt", "savecrypt.log")))
}
