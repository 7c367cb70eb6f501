package logic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessPathWithEngine(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	for i := 0; i < 5; i++ {
		filename := filepath.Join(tempDir, fmt.Sprintf("expr%d.logic", i))
		content := "# generated\n"
		for j := 0; j <= i; j++ {
			content += fmt.Sprintf("v%d or not v%d\n", j, j)
		}
		require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	}

	engine, err := New("", zap.NewNop())
	require.NoError(t, err)

	reports, err := ProcessPath(context.Background(), zap.NewNop(), engine, tempDir, ProcessFile)
	require.NoError(t, err)

	// 1+2+3+4+5 expressions, grouped by file in name order
	require.Len(t, reports, 15)
	idx := 0
	for i := 0; i < 5; i++ {
		for j := 0; j <= i; j++ {
			r := reports[idx]
			assert.Equal(t, filepath.Join(tempDir, fmt.Sprintf("expr%d.logic", i)), r.Source.Filename)
			assert.Equal(t, j+2, r.Source.Line)
			assert.Equal(t, "Tautology", r.Classification)
			assert.Equal(t, "True", r.Minimized)
			idx++
		}
	}
}

func TestProcessPathContextCancellation(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	for i := 0; i < 10; i++ {
		filename := filepath.Join(tempDir, fmt.Sprintf("test%d.logic", i))
		require.NoError(t, os.WriteFile(filename, []byte("a and b\n"), 0o644))
	}

	engine, err := New("", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := ProcessPath(ctx, nil, engine, tempDir, ProcessFile)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, reports)
}

func TestProcessFilesRecordsUserErrors(t *testing.T) {
	t.Parallel()

	filename := filepath.Join(t.TempDir(), "mixed.logic")
	content := "a and\n(a or b\na xor b\na ⊕ b\n"
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))

	engine, err := New("", nil)
	require.NoError(t, err)

	reports, err := ProcessFiles(context.Background(), nil, engine, []string{filename}, ProcessFile)
	require.NoError(t, err)
	require.Len(t, reports, 4)

	assert.True(t, reports[0].Failed())
	assert.True(t, reports[1].Failed())
	// "xor" is not a keyword, so the line has two adjacent variables
	assert.True(t, reports[2].Failed())
	assert.False(t, reports[3].Failed())
	assert.Equal(t, "a and not b or not a and b", reports[3].Minimized)
}

func TestNewWithCache(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, DefaultConfigFile)
	config := DefaultConfig()
	config.CacheDir = filepath.Join(dir, "cache")
	require.NoError(t, WriteConfig(configPath, config))

	exprFile := filepath.Join(dir, "cached.logic")
	require.NoError(t, os.WriteFile(exprFile, []byte("a and b\n"), 0o644))

	engine, err := New(configPath, zap.NewNop())
	require.NoError(t, err)

	first, err := engine.Run(exprFile)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(config.CacheDir, "logic_cache.gob"))

	// a fresh engine reads the persisted entry
	engine, err = New(configPath, zap.NewNop())
	require.NoError(t, err)
	second, err := engine.Run(exprFile)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewInvalidConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte("notation: klingon\n"), 0o644))

	_, err := New(configPath, nil)
	assert.Error(t, err)
}
