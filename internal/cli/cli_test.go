package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensor-types/tensortypes/internal/idx"
	"github.com/tensor-types/tensortypes/internal/tensor"
)

const dimsYAML = `
types:
  EncoderInput:
    dims: [2, 3]
    kind: float32
`

// writeFixture creates an IDX file with the given shape and kind under a
// temp dir and returns its path.
func writeFixture(t *testing.T, shape tensor.Shape, dtype tensor.DataType) string {
	t.Helper()
	raw, err := tensor.NewRaw(shape, dtype)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fixture.idx")
	require.NoError(t, idx.WriteFile(path, raw))
	return path
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dims.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dimsYAML), 0o600))
	return path
}

// run executes the CLI with args and returns stdout and the command error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect(t *testing.T) {
	path := writeFixture(t, tensor.Shape{2, 3}, tensor.Float32)

	out, err := run(t, "inspect", path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "inspect_float32", []byte(out))
}

func TestInspectGroupsElementCount(t *testing.T) {
	path := writeFixture(t, tensor.Shape{100, 100}, tensor.Uint8)

	out, err := run(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "elements: 10,000")
}

func TestInspectMissingFile(t *testing.T) {
	_, err := run(t, "inspect", filepath.Join(t.TempDir(), "absent.idx"))
	assert.Error(t, err)
}

func TestCheckOK(t *testing.T) {
	cfgPath := writeConfig(t)
	path := writeFixture(t, tensor.Shape{2, 3}, tensor.Float32)

	out, err := run(t, "check", "--config", cfgPath, "--type", "EncoderInput", path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "check_ok", []byte(out))
}

func TestCheckShapeMismatch(t *testing.T) {
	cfgPath := writeConfig(t)
	path := writeFixture(t, tensor.Shape{3, 2}, tensor.Float32)

	_, err := run(t, "check", "--config", cfgPath, "--type", "EncoderInput", path)
	require.Error(t, err)
	assert.Equal(t,
		"shape mismatch on tensor type EncoderInput: expected dimensions [2 3], found [3 2]",
		err.Error())
}

func TestCheckKindMismatch(t *testing.T) {
	cfgPath := writeConfig(t)
	path := writeFixture(t, tensor.Shape{2, 3}, tensor.Float64)

	_, err := run(t, "check", "--config", cfgPath, "--type", "EncoderInput", path)
	require.Error(t, err)
	assert.Equal(t,
		"kind mismatch on tensor type EncoderInput: expected kind float32, found float64",
		err.Error())
}

func TestCheckUnknownType(t *testing.T) {
	cfgPath := writeConfig(t)
	path := writeFixture(t, tensor.Shape{2, 3}, tensor.Float32)

	_, err := run(t, "check", "--config", cfgPath, "--type", "DecoderInput", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DecoderInput is not declared")
}

func TestCheckWithoutConfig(t *testing.T) {
	t.Setenv("TENSORTYPES_CONFIG", "")
	path := writeFixture(t, tensor.Shape{2, 3}, tensor.Float32)

	_, err := run(t, "check", "--type", "EncoderInput", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dimensions config")
}

func TestCheckConfigFromEnv(t *testing.T) {
	cfgPath := writeConfig(t)
	t.Setenv("TENSORTYPES_CONFIG", cfgPath)
	path := writeFixture(t, tensor.Shape{2, 3}, tensor.Float32)

	out, err := run(t, "check", "--type", "EncoderInput", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: EncoderInput")
}

// A malformed TENSORTYPES_* variable must not change behavior silently.
func TestBadEnvironmentWarns(t *testing.T) {
	t.Setenv("TENSORTYPES_VERBOSE", "banana")

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: ignoring TENSORTYPES environment")
	assert.Contains(t, out, "tensortypes "+version)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tensortypes "+version+"\n", out)
}
