package datapkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePackage = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "name": {
      "description": "Package identifier.",
      "type": "string",
      "examples": ["tides-v1"]
    },
    "licenses": {
      "description": "Dataset licenses.",
      "type": "array"
    },
    "profile": {
      "description": "Descriptor profile.",
      "type": "string",
      "enum": ["tabular-data-package", "data-package"]
    }
  },
  "required": ["name"],
  "recommended": ["profile"],
  "$defs": {
    "contributor": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"description": "Contributor name.", "type": "string"},
          "role": {"description": "Contributor role.", "type": "string"}
        },
        "required": ["title"]
      }
    }
  }
}`

func writePackage(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "spec", "data-package.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(samplePackage), 0644))
	return path
}

func loadSample(t *testing.T) *Package {
	t.Helper()
	dir := t.TempDir()
	writePackage(t, dir)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	pkg, err := Load("**/data-package.json")
	require.NoError(t, err)
	return pkg
}

func TestLoad_RecursiveGlob(t *testing.T) {
	pkg := loadSample(t)
	assert.Equal(t, filepath.Join("spec", "data-package.json"), pkg.Path)
}

func TestLoad_NoMatch(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = Load("**/data-package.json")
	assert.ErrorIs(t, err, ErrNoPackage)
}

func TestFields_DeclarationOrderAndLevels(t *testing.T) {
	pkg := loadSample(t)

	t.Run("all", func(t *testing.T) {
		fields, err := pkg.Fields(LevelAll)
		require.NoError(t, err)
		require.Len(t, fields, 3)
		assert.Equal(t, "name", fields[0].Name)
		assert.Equal(t, "licenses", fields[1].Name)
		assert.Equal(t, "profile", fields[2].Name)
		assert.Equal(t, "required", fields[0].Requirement)
		assert.Equal(t, "-", fields[1].Requirement)
		assert.Equal(t, "recommended", fields[2].Requirement)
	})

	t.Run("required", func(t *testing.T) {
		fields, err := pkg.Fields(LevelRequired)
		require.NoError(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, "name", fields[0].Name)
	})

	t.Run("recommended", func(t *testing.T) {
		fields, err := pkg.Fields(LevelRecommended)
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, "name", fields[0].Name)
		assert.Equal(t, "profile", fields[1].Name)
	})
}

func TestFields_EnumAndExampleInDescription(t *testing.T) {
	pkg := loadSample(t)
	fields, err := pkg.Fields(LevelAll)
	require.NoError(t, err)

	assert.Contains(t, fields[0].Description, "**Example:** `tides-v1`")
	assert.Contains(t, fields[2].Description,
		"**Must be one of:**<ul><li>tabular-data-package</li><li>data-package</li></ul>")
}

func TestFieldTable(t *testing.T) {
	pkg := loadSample(t)
	table, err := pkg.FieldTable(LevelRequired)
	require.NoError(t, err)

	assert.Equal(t,
		"| name | description | type | requirement |\n"+
			"| --- | --- | --- | --- |\n"+
			"| `name` | Package identifier.<br>**Example:** `tides-v1` | string | required |",
		table)
}

func TestResolve_DefsAndArrayItems(t *testing.T) {
	pkg := loadSample(t)
	require.NoError(t, pkg.Resolve("contributor"))

	fields, err := pkg.Fields(LevelAll)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "title", fields[0].Name)
	assert.Equal(t, "required", fields[0].Requirement)
	assert.Equal(t, "role", fields[1].Name)
}

func TestResolve_UnknownNameKeepsPosition(t *testing.T) {
	pkg := loadSample(t)
	require.NoError(t, pkg.Resolve("nope"))

	fields, err := pkg.Fields(LevelAll)
	require.NoError(t, err)
	assert.Len(t, fields, 3)
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"required", "Recommended", " ALL "} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}

	_, err := ParseLevel("everything")
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	pkg := loadSample(t)

	good := filepath.Join(t.TempDir(), "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"name": "x", "profile": "data-package"}`), 0644))
	assert.NoError(t, pkg.ValidateFile(good))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"profile": "wrong-profile"}`), 0644))
	err := pkg.ValidateFile(bad)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.NotEmpty(t, vErr.Issues)
}
