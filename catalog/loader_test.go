package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Run("no patterns yields builtin", func(t *testing.T) {
		cat, err := NewLoader(nil).Load()
		require.NoError(t, err)
		assert.Len(t, cat.Dimensions, len(Default().Dimensions))
	})

	t.Run("overlay adds a dimension", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "angle.yaml", `
dimensions:
  - name: angle
    base: radian
    units:
      - symbol: radian
        aliases: [rad]
        factor: 1
      - symbol: degree
        aliases: [deg]
        factor: 0.017453292519943295
`)

		r, err := NewLoader(nil).Registry(filepath.Join(dir, "*.yaml"))
		require.NoError(t, err)

		got, err := r.Convert(180, "degree", "radian")
		require.NoError(t, err)
		assert.InDelta(t, 3.141592653589793, got, 1e-12)

		// Builtin catalog still present underneath.
		got, err = r.Convert(1, "kilometer", "meter")
		require.NoError(t, err)
		assert.Equal(t, 1000.0, got)
	})

	t.Run("overlay extends a builtin dimension", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "custom.yaml", `
dimensions:
  - name: length
    units:
      - symbol: furlong
        factor: 201.168
`)

		r, err := NewLoader(nil).Registry(filepath.Join(dir, "*.yaml"))
		require.NoError(t, err)

		got, err := r.Convert(8, "furlong", "mile")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-12)
	})

	t.Run("doublestar pattern walks subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "nested/deep/angle.yaml", `
dimensions:
  - name: angle
    base: radian
    units:
      - symbol: radian
        factor: 1
`)

		cat, err := NewLoader(nil).Load(filepath.Join(dir, "**", "*.yaml"))
		require.NoError(t, err)
		assert.Len(t, cat.Dimensions, len(Default().Dimensions)+1)
	})

	t.Run("unmatched pattern is not an error", func(t *testing.T) {
		_, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "*.yaml"))
		assert.NoError(t, err)
	})

	t.Run("bad pattern fails", func(t *testing.T) {
		_, err := NewLoader(nil).Load("[")
		assert.Error(t, err)
	})

	t.Run("conflicting overlay fails validation", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "bad.yaml", `
dimensions:
  - name: angle
    base: radian
    units:
      - symbol: radian
        aliases: [m]
        factor: 1
`)

		_, err := NewLoader(nil).Load(filepath.Join(dir, "*.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "defined in both")
	})

	t.Run("unparsable file fails", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalog(t, dir, "broken.yaml", "dimensions: [")

		_, err := NewLoader(nil).Load(filepath.Join(dir, "*.yaml"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("partial overlay parses without validation", func(t *testing.T) {
		dir := t.TempDir()
		path := writeCatalog(t, dir, "overlay.yaml", `
dimensions:
  - name: length
    units:
      - symbol: furlong
        factor: 201.168
`)

		c, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "furlong", c.Dimensions[0].Units[0].Symbol)
	})
}
