package identitystore

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/rcc-emulator/server/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "identity.db")

	require.NoError(t, db.RunMigrations(context.Background(), path))

	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return New(conn)
}

func TestGetOrCreateAssignsMonotonicPlayerID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u1, err := s.GetOrCreate(ctx, "Steam", "76561198139908495", "")
	require.NoError(t, err)
	require.Equal(t, uint32(1), u1.PlayerID)
	require.Equal(t, "Player1", u1.DisplayName)

	u2, err := s.GetOrCreate(ctx, "Steam", "76561198000000001", "")
	require.NoError(t, err)
	require.Equal(t, uint32(2), u2.PlayerID)
}

func TestGetOrCreateRepeatLoginReturnsSamePlayerID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.GetOrCreate(ctx, "Steam", "76561198139908495", "aa")
	require.NoError(t, err)

	second, err := s.GetOrCreate(ctx, "Steam", "76561198139908495", "bb")
	require.NoError(t, err)

	require.Equal(t, first.PlayerID, second.PlayerID)
	require.Equal(t, "bb", second.AccessTokenHash)
}

func TestGetOrCreateConcurrentSameIdentitySingleRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const n = 20
	ids := make([]uint32, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			u, err := s.GetOrCreate(ctx, "Steam", "same-account", "")
			require.NoError(t, err)
			ids[i] = u.PlayerID
		}()
	}
	wg.Wait()

	for _, id := range ids {
		require.Equal(t, ids[0], id)
	}

	count, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestDefaultUserStateAndAccessLevel(t *testing.T) {
	s := newTestStore(t)
	u, err := s.GetOrCreate(context.Background(), "Steam", "x", "")
	require.NoError(t, err)
	require.EqualValues(t, 1, u.UserState)
	require.EqualValues(t, 0, u.AccessLevel)
}
