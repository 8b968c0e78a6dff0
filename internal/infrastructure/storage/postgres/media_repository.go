package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/media"
)

type MediaRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewMediaRepository(pool *pgxpool.Pool, log *slog.Logger) *MediaRepository {
	return &MediaRepository{
		pool: pool,
		log:  log.With("component", "media_repository"),
	}
}

func (r *MediaRepository) Insert(ctx context.Context, m media.Media) (media.Media, error) {
	const query = `
		INSERT INTO media (note_id, user_id, file_name, file_path, file_type, file_size, mime_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		m.NoteID, m.UserID, m.FileName, m.FilePath, m.FileType, m.FileSize, m.MimeType).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return media.Media{}, fmt.Errorf("insert media: %w", err)
	}

	return m, nil
}

// Find requires that both the attachment row and its note are owned by the
// user, so a stolen media id across accounts still reads as missing.
func (r *MediaRepository) Find(ctx context.Context, userID, mediaID string) (media.Media, error) {
	const query = `
		SELECT m.id, m.note_id, m.user_id, m.file_name, m.file_path,
		       m.file_type, m.file_size, m.mime_type, m.created_at
		FROM media m
		JOIN notes n ON n.id = m.note_id AND n.user_id = m.user_id
		WHERE m.id = $1 AND m.user_id = $2`

	var m media.Media
	err := r.pool.QueryRow(ctx, query, mediaID, userID).
		Scan(&m.ID, &m.NoteID, &m.UserID, &m.FileName, &m.FilePath,
			&m.FileType, &m.FileSize, &m.MimeType, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return media.Media{}, media.ErrNotFound
		}
		return media.Media{}, fmt.Errorf("find media: %w", err)
	}

	return m, nil
}

func (r *MediaRepository) ListByNote(ctx context.Context, userID, noteID string) ([]media.Media, error) {
	const query = `
		SELECT id, note_id, user_id, file_name, file_path, file_type, file_size, mime_type, created_at
		FROM media
		WHERE note_id = $1 AND user_id = $2
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	items := []media.Media{}
	for rows.Next() {
		var m media.Media
		if err := rows.Scan(&m.ID, &m.NoteID, &m.UserID, &m.FileName, &m.FilePath,
			&m.FileType, &m.FileSize, &m.MimeType, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate media: %w", err)
	}
	return items, nil
}

func (r *MediaRepository) Delete(ctx context.Context, userID, mediaID string) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM media WHERE id = $1 AND user_id = $2`, mediaID, userID)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return media.ErrNotFound
	}
	return nil
}

func (r *MediaRepository) NoteExists(ctx context.Context, userID, noteID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notes WHERE id = $1 AND user_id = $2)`,
		noteID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check note: %w", err)
	}
	return exists, nil
}

func (r *MediaRepository) AddCleanup(ctx context.Context, objectPath string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO storage_cleanup (object_path) VALUES ($1)`, objectPath)
	return err
}

func (r *MediaRepository) PendingCleanups(ctx context.Context, limit int) ([]media.CleanupEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, object_path, created_at FROM storage_cleanup ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list cleanups: %w", err)
	}
	defer rows.Close()

	entries := []media.CleanupEntry{}
	for rows.Next() {
		var e media.CleanupEntry
		if err := rows.Scan(&e.ID, &e.ObjectPath, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cleanup: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *MediaRepository) ResolveCleanup(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM storage_cleanup WHERE id = $1`, id)
	return err
}
