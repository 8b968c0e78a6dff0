package note

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, userID string) ([]Note, error)
	Create(ctx context.Context, userID, content string) (Note, error)
	Update(ctx context.Context, userID, noteID, content string) (Note, error)
	Delete(ctx context.Context, userID, noteID string) error
	Search(ctx context.Context, userID, query string) ([]Note, error)
	SearchPartial(ctx context.Context, userID, query string) ([]Note, error)
}

// Attachments tears down the stored objects behind a note. Satisfied by the
// media service.
type Attachments interface {
	CleanupNote(ctx context.Context, userID, noteID string) error
}

type Service struct {
	repo        Repository
	attachments Attachments
	log         *slog.Logger
}

func NewService(repo Repository, attachments Attachments, log *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		attachments: attachments,
		log:         log.With("component", "note_service"),
	}
}

// List returns all notes of the user ordered by updatedAt descending.
func (s *Service) List(ctx context.Context, userID string) ([]Note, error) {
	notes, err := s.repo.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list notes", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Create inserts a new note. The store assigns the identifier and both
// timestamps; content may be empty.
func (s *Service) Create(ctx context.Context, userID, content string) (Note, error) {
	n, err := s.repo.Create(ctx, userID, content)
	if err != nil {
		s.log.Error("failed to create note", "user_id", userID, "error", err)
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	s.log.Info("note created", "note_id", n.ID, "user_id", userID)
	return n, nil
}

// Update replaces the note content in full and refreshes updatedAt. There are
// no partial/patch semantics.
func (s *Service) Update(ctx context.Context, userID, noteID, content string) (Note, error) {
	n, err := s.repo.Update(ctx, userID, noteID, content)
	if err != nil {
		return Note{}, err
	}
	return n, nil
}

// Delete removes the note and its attachment objects. Objects go first: the
// media rows cascade away with the note, and after that nothing remembers
// which objects belonged to it.
func (s *Service) Delete(ctx context.Context, userID, noteID string) error {
	if s.attachments != nil {
		if err := s.attachments.CleanupNote(ctx, userID, noteID); err != nil {
			s.log.Error("attachment cleanup failed", "note_id", noteID, "error", err)
			return fmt.Errorf("cleanup attachments: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, userID, noteID); err != nil {
		return err
	}

	s.log.Info("note deleted", "note_id", noteID, "user_id", userID)
	return nil
}

// Search runs a full-text match against note content, scoped to the user and
// ordered by updatedAt descending. A blank query is rejected before the
// repository is touched.
func (s *Service) Search(ctx context.Context, userID, query string) ([]Note, error) {
	return s.search(ctx, userID, query, false)
}

// SearchPartial matches token prefixes instead of whole lexemes.
func (s *Service) SearchPartial(ctx context.Context, userID, query string) ([]Note, error) {
	return s.search(ctx, userID, query, true)
}

func (s *Service) search(ctx context.Context, userID, query string, prefix bool) ([]Note, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	notes, err := s.repo.Search(ctx, userID, query, prefix)
	if err != nil {
		s.log.Error("search failed", "user_id", userID, "prefix", prefix, "error", err)
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return notes, nil
}
