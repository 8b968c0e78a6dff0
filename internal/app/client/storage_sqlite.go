package client

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"notekeeper/internal/domain/note"
)

// SQLiteStorage кэширует заметки и сессию локально для офлайн-чтения.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS notes (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at);

		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT ''
		);
	`)

	return err
}

// ReplaceNotes полностью заменяет локальный кэш набором заметок с сервера.
func (s *SQLiteStorage) ReplaceNotes(notes []note.View) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM notes"); err != nil {
		return fmt.Errorf("ошибка очистки кэша: %w", err)
	}

	for _, n := range notes {
		_, err := tx.Exec(`
			INSERT INTO notes (id, content, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`, n.ID, n.Content, n.CreatedAt, n.UpdatedAt)
		if err != nil {
			return fmt.Errorf("ошибка сохранения заметки: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) UpsertNote(n note.View) error {
	_, err := s.db.Exec(`
		INSERT INTO notes (id, content, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at
	`, n.ID, n.Content, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка сохранения заметки: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) DeleteNote(id string) error {
	if _, err := s.db.Exec("DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("ошибка удаления заметки: %w", err)
	}
	return nil
}

// ListNotes возвращает кэшированные заметки, новые сверху.
func (s *SQLiteStorage) ListNotes() ([]note.View, error) {
	rows, err := s.db.Query(`
		SELECT id, content, created_at, updated_at
		FROM notes
		ORDER BY updated_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения кэша: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

// SearchLocal ищет подстроку без учета регистра в локальном кэше.
func (s *SQLiteStorage) SearchLocal(query string) ([]note.View, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	rows, err := s.db.Query(`
		SELECT id, content, created_at, updated_at
		FROM notes
		WHERE LOWER(content) LIKE ? ESCAPE '\'
		ORDER BY updated_at DESC, id DESC
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска в кэше: %w", err)
	}
	defer rows.Close()

	return scanNotes(rows)
}

func scanNotes(rows *sql.Rows) ([]note.View, error) {
	var notes []note.View
	for rows.Next() {
		var n note.View
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&n.ID, &n.Content, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("ошибка чтения строки: %w", err)
		}
		n.CreatedAt = createdAt
		n.UpdatedAt = updatedAt
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func (s *SQLiteStorage) SaveSession(token, email string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, token, email) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, email = excluded.email
	`, token, email)
	if err != nil {
		return fmt.Errorf("ошибка сохранения сессии: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) LoadSession() (token, email string, err error) {
	err = s.db.QueryRow("SELECT token, email FROM session WHERE id = 1").Scan(&token, &email)
	if err == sql.ErrNoRows {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("ошибка чтения сессии: %w", err)
	}
	return token, email, nil
}

func (s *SQLiteStorage) ClearSession() error {
	if _, err := s.db.Exec("DELETE FROM session"); err != nil {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
