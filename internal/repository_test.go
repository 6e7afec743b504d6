package internal

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLRepository {
	t.Helper()

	repo, err := NewSQLRepository("file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared", false)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestRepository(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx, "SELECT 1")
	assert.NoError(t, err)

	// Init is repeatable
	assert.NoError(t, repo.Init(ctx))

	row, err := repo.Record(ctx, DecodeWord(0x8c230004), "test")
	require.NoError(t, err)
	assert.NotZero(t, row.ID)

	_, err = repo.Record(ctx, DecodeWord(0xfc000000), "test")
	require.NoError(t, err)

	rows, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, uint32(0xfc000000), rows[0].Word)
	assert.Equal(t, "unknown", rows[0].Mnemonic)
	assert.False(t, rows[0].Known)

	assert.Equal(t, uint32(0x8c230004), rows[1].Word)
	assert.Equal(t, "I", rows[1].Format)
	assert.Equal(t, "lw", rows[1].Mnemonic)
	assert.True(t, rows[1].Known)
	assert.Equal(t, "test", rows[1].Source)
	assert.False(t, rows[1].CreatedAt.IsZero())

	rows, err = repo.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRepositoryPersists(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "history.db")

	writer, err := NewSQLRepository(dsn, false)
	require.NoError(t, err)
	require.NoError(t, writer.Init(ctx))
	_, err = writer.Record(ctx, DecodeWord(0x00411820), "cli")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader, err := NewSQLRepository(dsn, false)
	require.NoError(t, err)
	defer reader.Close()
	require.NoError(t, reader.Init(ctx))

	rows, err := reader.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint32(0x00411820), rows[0].Word)
	assert.Equal(t, "add", rows[0].Mnemonic)
	assert.Equal(t, "cli", rows[0].Source)
}
