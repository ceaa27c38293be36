package flappybird

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore")

	store := NewScoreStore(path)
	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Best())

	isBest, err := store.Update(7)
	require.NoError(t, err)
	assert.True(t, isBest)
	assert.Equal(t, 7, store.Best())

	// a fresh store must read the persisted value back
	reloaded := NewScoreStore(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 7, reloaded.Best())
}

func TestScoreStoreKeepsBest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore")
	store := NewScoreStore(path)

	isBest, err := store.Update(10)
	require.NoError(t, err)
	require.True(t, isBest)

	isBest, err = store.Update(3)
	require.NoError(t, err)
	assert.False(t, isBest)
	assert.Equal(t, 10, store.Best())

	reloaded := NewScoreStore(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 10, reloaded.Best())
}

func TestScoreStoreMissingFile(t *testing.T) {
	store := NewScoreStore(filepath.Join(t.TempDir(), "nope", "highscore"))
	assert.NoError(t, store.Load())
	assert.Equal(t, 0, store.Best())
}

func TestScoreStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore")
	require.NoError(t, os.WriteFile(path, []byte("not a number"), 0o644))

	store := NewScoreStore(path)
	assert.Error(t, store.Load())
	assert.Equal(t, 0, store.Best())
}

func TestScoreStoreNoPath(t *testing.T) {
	store := NewScoreStore("")
	require.NoError(t, store.Load())

	isBest, err := store.Update(5)
	require.NoError(t, err)
	assert.True(t, isBest)
	assert.Equal(t, 5, store.Best())
}
