package queryfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrove-io/impala-dialect/dialect/impala"
	"github.com/datagrove-io/impala-dialect/query/compiler"
)

// The shipped example documents must parse and compile.
func TestExampleDocumentsCompile(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "examples", "*.query"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	c := compiler.New(impala.New())
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			require.NoError(t, err)

			q, err := ParseString(path, string(src))
			require.NoError(t, err)

			compiled, err := c.Compile(q)
			require.NoError(t, err)
			assert.NotEmpty(t, compiled.SQL)
		})
	}
}
