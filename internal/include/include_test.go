package include

import (
	"os"
	"path/filepath"
	"testing"

	"docmill/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIncluder(t *testing.T, files map[string]string) *Includer {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg := &config.Config{}
	cfg.GitHub.BranchPlaceholder = "{branch_name}"
	cfg.Links = map[string]string{"[spec]": "spec/tides.spec.json"}

	inc := NewIncluder(cfg, root)
	inc.branch = func() (string, error) { return "feature-x", nil }
	return inc
}

func TestFile_AppliesTransforms(t *testing.T) {
	inc := testIncluder(t, map[string]string{
		"page.md": "# Title\n\nbranch is {branch_name}\n\n[spec]: old-target\n",
	})

	out, err := inc.File("page.md", DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, out, "## Title", "headings downshift by default")
	assert.Contains(t, out, "branch is feature-x")
	assert.Contains(t, out, "[spec]: spec/tides.spec.json")
}

func TestFile_LineSlicing(t *testing.T) {
	inc := testIncluder(t, map[string]string{
		"lines.txt": "zero\none\ntwo\nthree\n",
	})

	out, err := inc.File("lines.txt", Options{StartLine: 1, EndLine: 3})
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", out)
}

func TestFile_CodeFence(t *testing.T) {
	inc := testIncluder(t, map[string]string{
		"schema.json": "{\"a\": 1}",
	})

	opts := DefaultOptions()
	opts.CodeType = "json"
	out, err := inc.File("schema.json", opts)
	require.NoError(t, err)

	assert.Equal(t, "```json title='schema.json'\n{\"a\": 1}\n```", out)
}

func TestFile_Missing(t *testing.T) {
	inc := testIncluder(t, nil)
	_, err := inc.File("gone.md", DefaultOptions())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gone.md")
}

func TestSections_FiltersAfterInclude(t *testing.T) {
	inc := testIncluder(t, map[string]string{
		"doc.md": "# Keep\n\nyes\n\n# Drop\n\nno\n",
	})

	out, err := inc.Sections("doc.md", nil, []string{"drop"}, DefaultOptions())
	require.NoError(t, err)

	// Headings were downshifted before filtering.
	assert.Equal(t, "## Keep\n\nyes", out)
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir", "sub"), 0755))
	for _, name := range []string{"dir/a.md", "dir/b.md", "dir/c.txt", "single.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
	}

	paths := ListFiles([]string{
		filepath.Join(root, "single.md"),
		filepath.Join(root, "dir"),
		filepath.Join(root, "missing"),
	}, "*.md")

	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(root, "single.md"), paths[0])
	assert.Contains(t, paths, filepath.Join(root, "dir", "a.md"))
	assert.Contains(t, paths, filepath.Join(root, "dir", "b.md"))
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "/guide/intro/", PageURL("docs/guide/intro.md"))
	assert.Equal(t, "/assets/logo.png", PageURL("docs/assets/logo.png"))
	assert.Equal(t, "/readme/", PageURL("readme.md"), "paths outside docs/ still map")
}
