// Package identitystore implements the get-or-create identity
// semantics of spec.md §4.7: a keyed table with uniqueness on
// (source-type, source-id), serialized per key so concurrent logins
// for the same identity deterministically yield a single row.
package identitystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rcc-emulator/server/internal/model"
)

// Store resolves and creates User records against a sqlite-backed
// users/player_data table pair (spec.md §6). A per-(source-type,
// source-id) mutex stands in for the teacher's short-lived
// transactional blocks — sufficient here since contention on a single
// identity is rare (spec.md §9).
type Store struct {
	conn *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Store over an already-migrated sqlite connection.
func New(conn *sql.DB) *Store {
	return &Store{conn: conn, locks: make(map[string]*sync.Mutex)}
}

func identityKey(sourceType, sourceID string) string {
	return sourceType + "\x00" + sourceID
}

func (s *Store) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}

// GetOrCreate resolves the identity for (sourceType, sourceID). On a
// hit, it updates last-login and the hashed access token and returns
// the existing record. On a miss, it inserts a new row with a fresh
// monotonic player-id and a default display name of
// "Player{player-id}" (spec.md §4.7).
func (s *Store) GetOrCreate(ctx context.Context, sourceType, sourceID, accessTokenHash string) (*model.User, error) {
	key := identityKey(sourceType, sourceID)
	lock := s.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()

	existing, err := s.find(ctx, sourceType, sourceID)
	if err != nil {
		return nil, fmt.Errorf("looking up identity %s/%s: %w", sourceType, sourceID, err)
	}
	if existing != nil {
		if err := s.touchLogin(ctx, existing.PlayerID, accessTokenHash, now); err != nil {
			return nil, fmt.Errorf("updating last login for player %d: %w", existing.PlayerID, err)
		}
		existing.AccessTokenHash = accessTokenHash
		existing.LastLogin = now
		existing.RequestCount++
		return existing, nil
	}

	return s.create(ctx, sourceType, sourceID, accessTokenHash, now)
}

func (s *Store) find(ctx context.Context, sourceType, sourceID string) (*model.User, error) {
	var u model.User
	var createdAt, lastLogin time.Time
	err := s.conn.QueryRowContext(ctx, `
		SELECT player_id, source_type, source_id, access_token_hash,
		       user_state, access_level, request_count, created_at, last_login
		FROM users WHERE source_type = ? AND source_id = ?`,
		sourceType, sourceID,
	).Scan(&u.PlayerID, &u.SourceType, &u.SourceID, &u.AccessTokenHash,
		&u.UserState, &u.AccessLevel, &u.RequestCount, &createdAt, &lastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = createdAt
	u.LastLogin = lastLogin

	if err := s.conn.QueryRowContext(ctx,
		`SELECT name FROM player_data WHERE player_id = ?`, u.PlayerID,
	).Scan(&u.DisplayName); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	return &u, nil
}

func (s *Store) touchLogin(ctx context.Context, playerID uint32, accessTokenHash string, now time.Time) error {
	_, err := s.conn.ExecContext(ctx,
		`UPDATE users SET access_token_hash = ?, last_login = ?, request_count = request_count + 1
		 WHERE player_id = ?`,
		accessTokenHash, now, playerID,
	)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx,
		`UPDATE player_data SET last_seen = ? WHERE player_id = ?`, now, playerID)
	return err
}

func (s *Store) create(ctx context.Context, sourceType, sourceID, accessTokenHash string, now time.Time) (*model.User, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning identity transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO users (source_type, source_id, access_token_hash, user_state, access_level, request_count, created_at, last_login)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)`,
		sourceType, sourceID, accessTokenHash, model.UserStateMenu, model.AccessUser, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading new player id: %w", err)
	}
	playerID := uint32(id)
	displayName := fmt.Sprintf("Player%d", playerID)

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO player_data (player_id, name, last_seen) VALUES (?, ?, ?)`,
		playerID, displayName, now,
	); err != nil {
		return nil, fmt.Errorf("inserting player data: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing new identity: %w", err)
	}

	return &model.User{
		PlayerID:        playerID,
		SourceType:      sourceType,
		SourceID:        sourceID,
		AccessTokenHash: accessTokenHash,
		UserState:       model.UserStateMenu,
		AccessLevel:     model.AccessUser,
		CreatedAt:       now,
		LastLogin:       now,
		DisplayName:     displayName,
		RequestCount:    1,
	}, nil
}

// Count returns the number of resolved identities.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// All returns every resolved identity, used by the debug HTTP endpoint.
func (s *Store) All(ctx context.Context) ([]model.User, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT u.player_id, u.source_type, u.source_id, u.access_token_hash,
		       u.user_state, u.access_level, u.request_count, u.created_at, u.last_login,
		       COALESCE(p.name, '')
		FROM users u LEFT JOIN player_data p ON p.player_id = u.player_id
		ORDER BY u.player_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.PlayerID, &u.SourceType, &u.SourceID, &u.AccessTokenHash,
			&u.UserState, &u.AccessLevel, &u.RequestCount, &u.CreatedAt, &u.LastLogin, &u.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
