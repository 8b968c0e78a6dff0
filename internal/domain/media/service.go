package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const (
	// MaxFileSize is the upload ceiling, checked before any storage write.
	MaxFileSize = 50 << 20

	// URLValidity is the lifetime of signed download links.
	URLValidity = time.Hour
)

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"audio/mpeg":      {},
	"audio/mp4":       {},
	"audio/wav":       {},
	"audio/webm":      {},
	"video/mp4":       {},
	"video/quicktime": {},
	"video/webm":      {},
}

type Servicer interface {
	Upload(ctx context.Context, userID, noteID, fileName, mimeType string, size int64, r io.Reader) (Media, error)
	ListByNote(ctx context.Context, userID, noteID string) ([]Media, error)
	SignedURL(ctx context.Context, userID, mediaID string) (string, error)
	Delete(ctx context.Context, userID, mediaID string) error
}

type Service struct {
	repo  Repository
	store ObjectStore
	log   *slog.Logger
	now   func() time.Time
}

func NewService(repo Repository, store ObjectStore, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		store: store,
		log:   log.With("component", "media_service"),
		now:   time.Now,
	}
}

// Upload validates the file, writes the object, then inserts the metadata
// row. The two writes are not transactional: when the insert fails the object
// is deleted best-effort, and a failed compensating delete lands in the
// cleanup log instead of escalating.
func (s *Service) Upload(ctx context.Context, userID, noteID, fileName, mimeType string, size int64, r io.Reader) (Media, error) {
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return Media{}, ErrUnsupportedType
	}
	if size > MaxFileSize {
		return Media{}, ErrTooLarge
	}

	exists, err := s.repo.NoteExists(ctx, userID, noteID)
	if err != nil {
		return Media{}, fmt.Errorf("check note: %w", err)
	}
	if !exists {
		return Media{}, ErrNoteNotFound
	}

	objectPath := fmt.Sprintf("%s/%s/%d-%s", userID, noteID, s.now().UnixMilli(), sanitizeFileName(fileName))

	if err := s.store.Put(ctx, objectPath, r, size, mimeType); err != nil {
		s.log.Error("object write failed", "path", objectPath, "error", err)
		return Media{}, fmt.Errorf("store object: %w", err)
	}

	m := Media{
		NoteID:   noteID,
		UserID:   userID,
		FileName: fileName,
		FilePath: objectPath,
		FileType: classify(mimeType),
		FileSize: size,
		MimeType: mimeType,
	}

	inserted, err := s.repo.Insert(ctx, m)
	if err != nil {
		s.log.Error("metadata insert failed, removing object", "path", objectPath, "error", err)
		s.compensate(ctx, objectPath)
		return Media{}, fmt.Errorf("insert media: %w", err)
	}

	s.log.Info("media uploaded", "media_id", inserted.ID, "note_id", noteID, "size", size)
	return inserted, nil
}

func (s *Service) ListByNote(ctx context.Context, userID, noteID string) ([]Media, error) {
	exists, err := s.repo.NoteExists(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("check note: %w", err)
	}
	if !exists {
		return nil, ErrNoteNotFound
	}

	return s.repo.ListByNote(ctx, userID, noteID)
}

func (s *Service) SignedURL(ctx context.Context, userID, mediaID string) (string, error) {
	m, err := s.repo.Find(ctx, userID, mediaID)
	if err != nil {
		return "", err
	}

	url, err := s.store.PresignedURL(ctx, m.FilePath, URLValidity)
	if err != nil {
		s.log.Error("presign failed", "media_id", mediaID, "error", err)
		return "", fmt.Errorf("presign object: %w", err)
	}
	return url, nil
}

func (s *Service) Delete(ctx context.Context, userID, mediaID string) error {
	m, err := s.repo.Find(ctx, userID, mediaID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID, mediaID); err != nil {
		return err
	}

	s.compensate(ctx, m.FilePath)
	return nil
}

// CleanupNote removes every object attached to the note. The metadata rows
// disappear with the note itself via the cascade, but the objects need
// explicit deletes or they orphan.
func (s *Service) CleanupNote(ctx context.Context, userID, noteID string) error {
	items, err := s.repo.ListByNote(ctx, userID, noteID)
	if err != nil {
		return fmt.Errorf("list attachments: %w", err)
	}

	for _, m := range items {
		s.compensate(ctx, m.FilePath)
	}
	return nil
}

func (s *Service) compensate(ctx context.Context, objectPath string) {
	if err := s.store.Remove(ctx, objectPath); err != nil {
		s.log.Warn("compensating delete failed, queueing cleanup", "path", objectPath, "error", err)
		if logErr := s.repo.AddCleanup(ctx, objectPath); logErr != nil {
			s.log.Error("cleanup log write failed, object orphaned", "path", objectPath, "error", logErr)
		}
	}
}

func classify(mimeType string) FileType {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return TypeImage
	case strings.HasPrefix(mimeType, "audio/"):
		return TypeAudio
	case strings.HasPrefix(mimeType, "video/"):
		return TypeVideo
	default:
		return TypeOther
	}
}

func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
