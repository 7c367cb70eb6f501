package internal

import (
	"go/token"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnolang/tlogic/internal/types"
)

func sampleReports(filename string) []tt.Report {
	return []tt.Report{
		{
			Source:         token.Position{Filename: filename, Line: 1, Column: 1},
			Expression:     "p and q",
			Variables:      []string{"p", "q"},
			Rows:           []tt.Row{{Values: []int{0, 0}}, {Values: []int{1, 0}}, {Values: []int{0, 1}}, {Values: []int{1, 1}, Result: 1}},
			Classification: "Contingent",
			Minimized:      "p and q",
		},
	}
}

func TestCache(t *testing.T) {
	tmpDir := t.TempDir()

	cacheDir := filepath.Join(tmpDir, "cache")
	cache, err := NewCache(cacheDir)
	require.NoError(t, err)

	t.Run("SaveAndLoad", func(t *testing.T) {
		filename := filepath.Join(tmpDir, "saved.logic")
		require.NoError(t, os.WriteFile(filename, []byte("p and q\n"), 0o644))

		reports := sampleReports(filename)
		require.NoError(t, cache.Set(filename, reports))

		loaded, found := cache.Get(filename)
		assert.True(t, found)
		assert.Equal(t, reports, loaded)

		// a fresh cache reads the persisted entries back
		reopened, err := NewCache(cacheDir)
		require.NoError(t, err)
		loaded, found = reopened.Get(filename)
		assert.True(t, found)
		assert.Equal(t, reports, loaded)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, found := cache.Get("nonexistent.logic")
		assert.False(t, found)
	})

	t.Run("FileModified", func(t *testing.T) {
		filename := filepath.Join(tmpDir, "modified.logic")
		require.NoError(t, os.WriteFile(filename, []byte("p and q\n"), 0o644))
		require.NoError(t, cache.Set(filename, sampleReports(filename)))

		require.NoError(t, os.WriteFile(filename, []byte("p or q\n"), 0o644))

		_, found := cache.Get(filename)
		assert.False(t, found)
	})

	t.Run("FingerprintChanged", func(t *testing.T) {
		filename := filepath.Join(tmpDir, "fingerprint.logic")
		require.NoError(t, os.WriteFile(filename, []byte("p and q\n"), 0o644))
		require.NoError(t, cache.Set(filename, sampleReports(filename)))

		cache.SetFingerprint("max=3")
		defer cache.SetFingerprint("")

		_, found := cache.Get(filename)
		assert.False(t, found)
	})

	t.Run("Expired", func(t *testing.T) {
		filename := filepath.Join(tmpDir, "expired.logic")
		require.NoError(t, os.WriteFile(filename, []byte("p and q\n"), 0o644))
		require.NoError(t, cache.Set(filename, sampleReports(filename)))

		cache.SetMaxAge(time.Nanosecond)
		defer cache.SetMaxAge(defaultCacheMaxAge)
		time.Sleep(time.Millisecond)

		_, found := cache.Get(filename)
		assert.False(t, found)
	})

	t.Run("DependencyChanged", func(t *testing.T) {
		dep := filepath.Join(tmpDir, ".tlogic.yaml")
		require.NoError(t, os.WriteFile(dep, []byte("max_variables: 20\n"), 0o644))

		depCache, err := NewCache(filepath.Join(tmpDir, "dep-cache"))
		require.NoError(t, err)
		require.NoError(t, depCache.AddDependency(dep))

		filename := filepath.Join(tmpDir, "dep.logic")
		require.NoError(t, os.WriteFile(filename, []byte("p and q\n"), 0o644))
		require.NoError(t, depCache.Set(filename, sampleReports(filename)))

		_, found := depCache.Get(filename)
		require.True(t, found)

		require.NoError(t, os.WriteFile(dep, []byte("max_variables: 4\n"), 0o644))
		_, found = depCache.Get(filename)
		assert.False(t, found)
	})

	t.Run("InvalidateAll", func(t *testing.T) {
		filename := filepath.Join(tmpDir, "all.logic")
		require.NoError(t, os.WriteFile(filename, []byte("p\n"), 0o644))
		require.NoError(t, cache.Set(filename, sampleReports(filename)))

		require.NoError(t, cache.InvalidateAll())
		_, found := cache.Get(filename)
		assert.False(t, found)
	})
}
