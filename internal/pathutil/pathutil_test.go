package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"single", []string{"/path/to/input"}, []string{"/path/to/input"}},
		{"comma joined", []string{"a,b , c"}, []string{"a", "b", "c"}},
		{"quoted", []string{`"/with space"`, `'/single'`}, []string{"/with space", "/single"}},
		{"empties dropped", []string{"", " ", ",,", "x"}, []string{"x"}},
		{"repeated flag", []string{"a", "b"}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeList(tt.in))
		})
	}
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "ws1.Workspace/nb1.Notebook",
		JoinPath([]string{"ws1.Workspace/nb1.Notebook"}))
	assert.Equal(t, "My Workspace.Workspace/nb 1.Notebook",
		JoinPath([]string{"My", "Workspace.Workspace/nb", "1.Notebook"}))
	assert.Equal(t, "", JoinPath(nil))
}

func TestCollectParts(t *testing.T) {
	root := t.TempDir()
	write := func(rel string) {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	write("notebook-content.py")
	write(".platform")
	write("resources/data.csv")
	write(".git/config")

	parts, err := CollectParts(root, []string{"**/.git/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{".platform", "notebook-content.py", "resources/data.csv"}, parts)
}

func TestCollectPartsErrors(t *testing.T) {
	_, err := CollectParts(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = CollectParts(file, nil)
	assert.ErrorContains(t, err, "not a directory")
}
