package media

import (
	"context"
	"io"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/media"
)

type MockServicer struct {
	mock.Mock
}

func (m *MockServicer) Upload(ctx context.Context, userID, noteID, fileName, mimeType string, size int64, r io.Reader) (media.Media, error) {
	args := m.Called(ctx, userID, noteID, fileName, mimeType, size, r)
	return args.Get(0).(media.Media), args.Error(1)
}

func (m *MockServicer) ListByNote(ctx context.Context, userID, noteID string) ([]media.Media, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Get(0).([]media.Media), args.Error(1)
}

func (m *MockServicer) SignedURL(ctx context.Context, userID, mediaID string) (string, error) {
	args := m.Called(ctx, userID, mediaID)
	return args.String(0), args.Error(1)
}

func (m *MockServicer) Delete(ctx context.Context, userID, mediaID string) error {
	args := m.Called(ctx, userID, mediaID)
	return args.Error(0)
}

func authedContext(userID string) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestHandler_list(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("ListByNote", mock.Anything, "user-1", "note-1").Return([]media.Media{
		{ID: "m1", NoteID: "note-1", FileName: "cat.png", FileType: media.TypeImage},
	}, nil)

	output, err := handler.list(authedContext("user-1"), &listInput{NoteID: "note-1"})

	assert.NoError(t, err)
	assert.Len(t, output.Body, 1)
	assert.Equal(t, "cat.png", output.Body[0].FileName)
}

func TestHandler_list_foreignNote(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("ListByNote", mock.Anything, "user-1", "note-2").
		Return([]media.Media(nil), media.ErrNoteNotFound)

	_, err := handler.list(authedContext("user-1"), &listInput{NoteID: "note-2"})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_signedURL(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("SignedURL", mock.Anything, "user-1", "m1").
		Return("https://storage.example.com/signed", nil)

	output, err := handler.signedURL(authedContext("user-1"), &urlInput{MediaID: "m1"})

	assert.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/signed", output.Body.URL)
}

func TestHandler_delete_notFound(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("Delete", mock.Anything, "user-1", "missing").Return(media.ErrNotFound)

	_, err := handler.delete(authedContext("user-1"), &deleteInput{MediaID: "missing"})

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}
