package save

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/game"
)

func TestSaveWritesTimestampedRecord(t *testing.T) {
	dir := t.TempDir()
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC))

	store, err := NewStore(dir, clock)
	require.NoError(t, err)

	path, err := store.Save(game.NewPlayer("Alice", 1250))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "blackjack_20260829_143005.json"), path)

	record, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Alice", record.PlayerName)
	assert.Equal(t, 1250, record.Bankroll)
	assert.True(t, record.SavedAt.Equal(time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)))
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")

	_, err := NewStore(dir, quartz.NewMock(t))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLatestReturnsNewestRecord(t *testing.T) {
	dir := t.TempDir()
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC))

	store, err := NewStore(dir, clock)
	require.NoError(t, err)

	_, err = store.Save(game.NewPlayer("Alice", 100))
	require.NoError(t, err)

	clock.Set(time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC))
	_, err = store.Save(game.NewPlayer("Alice", 900))
	require.NoError(t, err)

	record, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, 900, record.Bankroll)
}

func TestLatestWithNoRecords(t *testing.T) {
	store, err := NewStore(t.TempDir(), quartz.NewMock(t))
	require.NoError(t, err)

	_, err = store.Latest()
	assert.Error(t, err)
}

func TestLoadMalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjack_bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
