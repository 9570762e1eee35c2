package score

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoresRecord(t *testing.T) {
	s := DefaultScores()
	assert.Len(t, s, 3)
	assert.Zero(t, s.Best(KeyMarathon))

	assert.True(t, s.Record(KeyClassic, 1200))
	assert.False(t, s.Record(KeyClassic, 1200))
	assert.False(t, s.Record(KeyClassic, 800))
	assert.Equal(t, 1200, s.Best(KeyClassic))

	assert.False(t, s.Record(KeyTimeAttack, 0))
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("SQLite")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, b)

	b, err = ParseBackend("json")
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, b)

	_, err = ParseBackend("redis")
	assert.Error(t, err)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "high_scores.json")
	store := NewFileStore(path)

	scores, err := store.Load(ctx)
	require.NoError(t, err, "missing file is not an error")
	assert.Equal(t, DefaultScores(), scores)

	scores.Record(KeyMarathon, 9001)
	scores["zen"] = 5
	require.NoError(t, store.Save(ctx, scores))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9001, loaded.Best(KeyMarathon))
	assert.Equal(t, 5, loaded.Best("zen"), "unknown key was dropped")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestFileStoreOriginalFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"classic": 4200, "time_attack": -3}`), 0644))

	scores, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Scores{KeyClassic: 4200, KeyTimeAttack: 0, KeyMarathon: 0}, scores)
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"classic": `), 0644))

	scores, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, DefaultScores(), scores)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(ctx, BackendSQLite, path)
	require.NoError(t, err)

	scores, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultScores(), scores)

	scores.Record(KeyTimeAttack, 3100)
	require.NoError(t, store.Save(ctx, scores))
	scores.Record(KeyTimeAttack, 3500)
	require.NoError(t, store.Save(ctx, scores))
	require.NoError(t, store.Close())

	store, err = Open(ctx, BackendSQLite, path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Scores{KeyClassic: 0, KeyTimeAttack: 3500, KeyMarathon: 0}, loaded)
}
