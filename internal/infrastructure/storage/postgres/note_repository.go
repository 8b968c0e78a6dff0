package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

type NoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNoteRepository(pool *pgxpool.Pool, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		pool: pool,
		log:  log.With("component", "note_repository"),
	}
}

func (r *NoteRepository) List(ctx context.Context, userID string) ([]note.Note, error) {
	const query = `
		SELECT id, user_id, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *NoteRepository) Create(ctx context.Context, userID, content string) (note.Note, error) {
	const query = `
		INSERT INTO notes (user_id, content)
		VALUES ($1, $2)
		RETURNING id, user_id, content, created_at, updated_at`

	var n note.Note
	err := r.pool.QueryRow(ctx, query, userID, content).
		Scan(&n.ID, &n.UserID, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create note", "user_id", userID, "error", err)
		return note.Note{}, fmt.Errorf("create note: %w", err)
	}

	return n, nil
}

func (r *NoteRepository) Update(ctx context.Context, userID, noteID, content string) (note.Note, error) {
	const query = `
		UPDATE notes
		SET content = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, content, created_at, updated_at`

	var n note.Note
	err := r.pool.QueryRow(ctx, query, noteID, userID, content).
		Scan(&n.ID, &n.UserID, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return note.Note{}, note.ErrNotFound
		}
		r.log.Error("failed to update note", "note_id", noteID, "user_id", userID, "error", err)
		return note.Note{}, fmt.Errorf("update note: %w", err)
	}

	return n, nil
}

func (r *NoteRepository) Delete(ctx context.Context, userID, noteID string) error {
	ct, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`, noteID, userID)
	if err != nil {
		r.log.Error("failed to delete note", "note_id", noteID, "user_id", userID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return note.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Search(ctx context.Context, userID, query string, prefix bool) ([]note.Note, error) {
	var (
		sql  string
		term string
	)

	if prefix {
		sql = `
			SELECT id, user_id, content, created_at, updated_at
			FROM notes
			WHERE user_id = $1
			  AND to_tsvector('english', content) @@ to_tsquery('english', $2)
			ORDER BY updated_at DESC`
		term = prefixQuery(query)
		if term == "" {
			return []note.Note{}, nil
		}
	} else {
		sql = `
			SELECT id, user_id, content, created_at, updated_at
			FROM notes
			WHERE user_id = $1
			  AND to_tsvector('english', content) @@ websearch_to_tsquery('english', $2)
			ORDER BY updated_at DESC`
		term = query
	}

	rows, err := r.pool.Query(ctx, sql, userID, term)
	if err != nil {
		r.log.Error("search query failed", "user_id", userID, "prefix", prefix, "error", err)
		return nil, fmt.Errorf("search notes: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// prefixQuery turns free text into a tsquery of prefix terms
// ("alp bet" -> "alp:* & bet:*"). Tokens are stripped to alphanumerics so
// tsquery operators cannot be injected.
func prefixQuery(query string) string {
	var terms []string
	for _, tok := range strings.Fields(query) {
		tok = strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, tok)
		if tok != "" {
			terms = append(terms, tok+":*")
		}
	}
	return strings.Join(terms, " & ")
}

func scanNotes(rows pgx.Rows) ([]note.Note, error) {
	notes := []note.Note{}
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}
