package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hacksnooze/hacksnooze-go/internal/dbx"
)

func TestRepository_SetGetClear(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, "file:sessiontest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db)

	// absent key reads as nil, not an error
	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, repo.Set(ctx, KeyUsername, []byte("alice")))
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("tok-1")))

	v, err = repo.Get(ctx, KeyUsername)
	require.NoError(t, err)
	require.Equal(t, []byte("alice"), v)

	// upsert replaces
	require.NoError(t, repo.Set(ctx, KeyToken, []byte("tok-2")))
	v, err = repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-2"), v)

	require.NoError(t, repo.Clear(ctx))
	v, err = repo.Get(ctx, KeyUsername)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestRepository_TransactionalWrite(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, "file:sessiontest_tx?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewRepository(tx)
		if err := repo.Set(ctx, KeyUsername, []byte("bob")); err != nil {
			return err
		}
		return repo.Set(ctx, KeyToken, []byte("tok"))
	})
	require.NoError(t, err)

	v, err := NewRepository(db).Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok"), v)
}
