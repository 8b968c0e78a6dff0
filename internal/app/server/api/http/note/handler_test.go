package note

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/note"
)

type MockServicer struct {
	mock.Mock
}

func (m *MockServicer) List(ctx context.Context, userID string) ([]note.Note, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockServicer) Create(ctx context.Context, userID, content string) (note.Note, error) {
	args := m.Called(ctx, userID, content)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockServicer) Update(ctx context.Context, userID, noteID, content string) (note.Note, error) {
	args := m.Called(ctx, userID, noteID, content)
	return args.Get(0).(note.Note), args.Error(1)
}

func (m *MockServicer) Delete(ctx context.Context, userID, noteID string) error {
	args := m.Called(ctx, userID, noteID)
	return args.Error(0)
}

func (m *MockServicer) Search(ctx context.Context, userID, query string) ([]note.Note, error) {
	args := m.Called(ctx, userID, query)
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockServicer) SearchPartial(ctx context.Context, userID, query string) ([]note.Note, error) {
	args := m.Called(ctx, userID, query)
	return args.Get(0).([]note.Note), args.Error(1)
}

func authedContext(userID string) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func TestHandler_list(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	now := time.Now()
	service.On("List", mock.Anything, "user-1").Return([]note.Note{
		{ID: "n2", UserID: "user-1", Content: "second", UpdatedAt: now},
		{ID: "n1", UserID: "user-1", Content: "first", UpdatedAt: now.Add(-time.Hour)},
	}, nil)

	output, err := handler.list(authedContext("user-1"), &listInput{})

	assert.NoError(t, err)
	assert.Len(t, output.Body, 2)
	assert.Equal(t, "n2", output.Body[0].ID)
	service.AssertExpectations(t)
}

func TestHandler_list_unauthenticated(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	_, err := handler.list(context.Background(), &listInput{})

	assert.Error(t, err)
	service.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_update_notFound(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("Update", mock.Anything, "user-1", "missing", "text").
		Return(note.Note{}, note.ErrNotFound)

	_, err := handler.update(authedContext("user-1"), &updateInput{
		ID:   "missing",
		Body: NoteRequest{Content: "text"},
	})

	assert.Error(t, err)
	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandler_delete(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("Delete", mock.Anything, "user-1", "n1").Return(nil)

	output, err := handler.delete(authedContext("user-1"), &deleteInput{ID: "n1"})

	assert.NoError(t, err)
	assert.True(t, output.Body.Success)
}

func TestHandler_search_emptyQuery(t *testing.T) {
	service := new(MockServicer)
	handler := NewHandler(service, slog.Default(), huma.Middlewares{})

	service.On("Search", mock.Anything, "user-1", "").
		Return([]note.Note(nil), note.ErrEmptyQuery)

	_, err := handler.search(authedContext("user-1"), &searchInput{Query: ""})

	assert.Error(t, err)
	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.GetStatus())
}
