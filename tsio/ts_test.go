package tsio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempo/tsio"
)

const sample = `@problemName Toy
@timeStamps false
@univariate true
@classLabel true low high
@data
0,0,0,1:low
9,9,9,9:high
`

func writeTempTS(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "toy.ts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadTSParsesUnivariateLabeled(t *testing.T) {
	path := writeTempTS(t, sample)
	ds, err := tsio.ReadTS(path)
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 4, ds.Row(0).L)
	assert.Equal(t, 1, ds.Row(0).D)
	assert.Equal(t, "low", ds.ClassName(ds.Label(0)))
	assert.Equal(t, "high", ds.ClassName(ds.Label(1)))
}

func TestReadTSMissingFileErrors(t *testing.T) {
	_, err := tsio.ReadTS("/nonexistent/path/does/not/exist.ts")
	assert.Error(t, err)
}
