package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	journalmodels "github.com/Alllfr/snap-journal/internal/models/journal"
)

const cacheTTL = 24 * time.Hour

// PGJournals persists journals in PostgreSQL with a Redis read cache keyed
// journal:<id>. The cache is invalidated on every mutation; Redis being down
// never fails a request.
type PGJournals struct {
	postgres *pgxpool.Pool
	redis    *redis.Client
}

// NewPGJournals creates a PostgreSQL-backed journal store. redis may be nil
// to disable caching.
func NewPGJournals(postgres *pgxpool.Pool, redis *redis.Client) *PGJournals {
	return &PGJournals{postgres: postgres, redis: redis}
}

func cacheKey(id string) string {
	return fmt.Sprintf("journal:%s", id)
}

func (s *PGJournals) Create(ctx context.Context, j *journalmodels.Journal) error {
	query := `
		INSERT INTO journals (id, user_id, title, note, media_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.postgres.Exec(ctx, query, j.ID, j.OwnerID, j.Title, j.Note, j.MediaPath, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert journal: %w", err)
	}
	s.cachePut(ctx, j)
	return nil
}

func (s *PGJournals) GetByID(ctx context.Context, id string) (*journalmodels.Journal, error) {
	if j := s.cacheGet(ctx, id); j != nil {
		return j, nil
	}

	query := `
		SELECT id, user_id, title, note, COALESCE(media_path, ''), created_at, updated_at
		FROM journals
		WHERE id = $1
	`
	var j journalmodels.Journal
	err := s.postgres.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.OwnerID, &j.Title, &j.Note, &j.MediaPath, &j.CreatedAt, &j.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load journal: %w", err)
	}
	s.cachePut(ctx, &j)
	return &j, nil
}

func (s *PGJournals) ListByOwner(ctx context.Context, ownerID string) ([]journalmodels.Journal, error) {
	query := `
		SELECT id, user_id, title, note, COALESCE(media_path, ''), created_at, updated_at
		FROM journals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.postgres.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	defer rows.Close()

	var journals []journalmodels.Journal
	for rows.Next() {
		var j journalmodels.Journal
		if err := rows.Scan(&j.ID, &j.OwnerID, &j.Title, &j.Note, &j.MediaPath, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal: %w", err)
		}
		journals = append(journals, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journals: %w", err)
	}
	return journals, nil
}

func (s *PGJournals) Update(ctx context.Context, j *journalmodels.Journal) error {
	query := `
		UPDATE journals
		SET title = $1, note = $2, media_path = $3, updated_at = $4
		WHERE id = $5
	`
	tag, err := s.postgres.Exec(ctx, query, j.Title, j.Note, j.MediaPath, j.UpdatedAt, j.ID)
	if err != nil {
		return fmt.Errorf("failed to update journal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.cacheDel(ctx, j.ID)
	return nil
}

func (s *PGJournals) Delete(ctx context.Context, id string) error {
	tag, err := s.postgres.Exec(ctx, `DELETE FROM journals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete journal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.cacheDel(ctx, id)
	return nil
}

func (s *PGJournals) ListDataURIMedia(ctx context.Context, limit int) ([]journalmodels.Journal, error) {
	query := `
		SELECT id, user_id, title, note, media_path, created_at, updated_at
		FROM journals
		WHERE media_path LIKE 'data:%'
		ORDER BY created_at ASC
		LIMIT $1
	`
	rows, err := s.postgres.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list data URI journals: %w", err)
	}
	defer rows.Close()

	var journals []journalmodels.Journal
	for rows.Next() {
		var j journalmodels.Journal
		if err := rows.Scan(&j.ID, &j.OwnerID, &j.Title, &j.Note, &j.MediaPath, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal: %w", err)
		}
		journals = append(journals, j)
	}
	return journals, rows.Err()
}

func (s *PGJournals) SetMediaPath(ctx context.Context, id, path string) error {
	tag, err := s.postgres.Exec(ctx, `UPDATE journals SET media_path = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("failed to set media path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.cacheDel(ctx, id)
	return nil
}

// cachedJournal mirrors Journal with the owner included; the public model
// never serializes ownerId but the cache must round-trip it.
type cachedJournal struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Note      string    `json:"note"`
	MediaPath string    `json:"mediaPath"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *PGJournals) cachePut(ctx context.Context, j *journalmodels.Journal) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(cachedJournal(*j))
	if err != nil {
		return
	}
	s.redis.Set(ctx, cacheKey(j.ID), payload, cacheTTL)
}

func (s *PGJournals) cacheGet(ctx context.Context, id string) *journalmodels.Journal {
	if s.redis == nil {
		return nil
	}
	payload, err := s.redis.Get(ctx, cacheKey(id)).Result()
	if err != nil {
		return nil
	}
	var cached cachedJournal
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil
	}
	j := journalmodels.Journal(cached)
	return &j
}

func (s *PGJournals) cacheDel(ctx context.Context, id string) {
	if s.redis == nil {
		return
	}
	s.redis.Del(ctx, cacheKey(id))
}
