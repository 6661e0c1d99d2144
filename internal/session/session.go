package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	// TTL is how long a session stays valid after login
	TTL = 7 * 24 * time.Hour
	// keyPrefix is the Redis key prefix for session tokens
	keyPrefix = "session:"
)

// Manager issues and resolves session tokens. Redis is the hot path; every
// session also lands in the sessions table so a cache flush does not log
// everyone out.
type Manager struct {
	redis    *redis.Client
	postgres *pgxpool.Pool
}

func NewManager(redisClient *redis.Client, postgres *pgxpool.Pool) *Manager {
	return &Manager{redis: redisClient, postgres: postgres}
}

// Create issues a new session token for the user
func (m *Manager) Create(ctx context.Context, userID string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(raw)

	expiresAt := time.Now().Add(TTL)
	_, err := m.postgres.Exec(ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	if m.redis != nil {
		// Best effort; Postgres already holds the session
		m.redis.Set(ctx, keyPrefix+token, userID, TTL)
	}

	return token, nil
}

// Validate resolves a token to a user id. Tries Redis first, then falls back
// to Postgres and re-primes the cache on a hit.
func (m *Manager) Validate(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}

	if m.redis != nil {
		userID, err := m.redis.Get(ctx, keyPrefix+token).Result()
		if err == nil && userID != "" {
			return userID, true, nil
		}
	}

	var userID string
	var expiresAt time.Time
	err := m.postgres.QueryRow(ctx,
		`SELECT user_id, expires_at FROM sessions WHERE token = $1`,
		token,
	).Scan(&userID, &expiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up session: %w", err)
	}
	if time.Now().After(expiresAt) {
		return "", false, nil
	}

	if m.redis != nil {
		m.redis.Set(ctx, keyPrefix+token, userID, time.Until(expiresAt))
	}
	return userID, true, nil
}

// Destroy invalidates a session everywhere it is stored
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if m.redis != nil {
		m.redis.Del(ctx, keyPrefix+token)
	}
	if _, err := m.postgres.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
