package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, me Media) (Media, error) {
	args := m.Called(ctx, me)
	return args.Get(0).(Media), args.Error(1)
}

func (m *MockRepository) Find(ctx context.Context, userID, mediaID string) (Media, error) {
	args := m.Called(ctx, userID, mediaID)
	return args.Get(0).(Media), args.Error(1)
}

func (m *MockRepository) ListByNote(ctx context.Context, userID, noteID string) ([]Media, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Get(0).([]Media), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID, mediaID string) error {
	args := m.Called(ctx, userID, mediaID)
	return args.Error(0)
}

func (m *MockRepository) NoteExists(ctx context.Context, userID, noteID string) (bool, error) {
	args := m.Called(ctx, userID, noteID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) AddCleanup(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)
	return args.Error(0)
}

func (m *MockRepository) PendingCleanups(ctx context.Context, limit int) ([]CleanupEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]CleanupEntry), args.Error(1)
}

func (m *MockRepository) ResolveCleanup(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, objectPath, r, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) Remove(ctx context.Context, objectPath string) error {
	args := m.Called(ctx, objectPath)
	return args.Error(0)
}

func (m *MockObjectStore) PresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectPath, expiry)
	return args.String(0), args.Error(1)
}

func newService(repo Repository, store ObjectStore) *Service {
	return NewService(repo, store, slog.Default())
}

func TestService_Upload(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)
	service.now = func() time.Time { return time.UnixMilli(1700000000000) }

	mockRepo.On("NoteExists", mock.Anything, "u1", "n1").Return(true, nil)
	mockStore.On("Put", mock.Anything, "u1/n1/1700000000000-photo_1.jpg", mock.Anything, int64(42), "image/jpeg").Return(nil)
	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(me Media) bool {
		return me.FileType == TypeImage && me.FilePath == "u1/n1/1700000000000-photo_1.jpg"
	})).Return(Media{ID: "m1", FileType: TypeImage}, nil)

	m, err := service.Upload(context.Background(), "u1", "n1", "photo 1.jpg", "image/jpeg", 42, bytes.NewReader(make([]byte, 42)))
	assert.NoError(t, err)
	assert.Equal(t, "m1", m.ID)

	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestService_Upload_DisallowedTypeRejectedBeforeStorage(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	_, err := service.Upload(context.Background(), "u1", "n1", "archive.zip", "application/zip", 42, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	// No storage write may happen for a rejected file.
	mockStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_Upload_TooLarge(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	_, err := service.Upload(context.Background(), "u1", "n1", "movie.mp4", "video/mp4", MaxFileSize+1, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrTooLarge)
	mockStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Upload_ForeignNote(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	mockRepo.On("NoteExists", mock.Anything, "intruder", "n1").Return(false, nil)

	_, err := service.Upload(context.Background(), "intruder", "n1", "a.png", "image/png", 1, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrNoteNotFound)
	mockStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Upload_InsertFailureCompensates(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	mockRepo.On("NoteExists", mock.Anything, "u1", "n1").Return(true, nil)
	mockStore.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, int64(1), "image/png").Return(nil)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(Media{}, errors.New("insert failed"))
	mockStore.On("Remove", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	_, err := service.Upload(context.Background(), "u1", "n1", "a.png", "image/png", 1, bytes.NewReader(nil))
	assert.Error(t, err)

	mockStore.AssertCalled(t, "Remove", mock.Anything, mock.AnythingOfType("string"))
	mockRepo.AssertNotCalled(t, "AddCleanup", mock.Anything, mock.Anything)
}

func TestService_Upload_FailedCompensationLandsInCleanupLog(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	mockRepo.On("NoteExists", mock.Anything, "u1", "n1").Return(true, nil)
	mockStore.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, int64(1), "image/png").Return(nil)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(Media{}, errors.New("insert failed"))
	mockStore.On("Remove", mock.Anything, mock.AnythingOfType("string")).Return(errors.New("storage down"))
	mockRepo.On("AddCleanup", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	_, err := service.Upload(context.Background(), "u1", "n1", "a.png", "image/png", 1, bytes.NewReader(nil))
	assert.Error(t, err)

	mockRepo.AssertCalled(t, "AddCleanup", mock.Anything, mock.AnythingOfType("string"))
}

func TestService_SignedURL(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	mockRepo.On("Find", mock.Anything, "u1", "m1").Return(Media{ID: "m1", FilePath: "u1/n1/1-a.png"}, nil)
	mockStore.On("PresignedURL", mock.Anything, "u1/n1/1-a.png", URLValidity).Return("https://store/signed", nil)

	url, err := service.SignedURL(context.Background(), "u1", "m1")
	assert.NoError(t, err)
	assert.Equal(t, "https://store/signed", url)
}

func TestService_SignedURL_ForeignAttachment(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	mockRepo.On("Find", mock.Anything, "intruder", "m1").Return(Media{}, ErrNotFound)

	_, err := service.SignedURL(context.Background(), "intruder", "m1")
	assert.ErrorIs(t, err, ErrNotFound)
	mockStore.AssertNotCalled(t, "PresignedURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_RemovesRowThenObject(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	mockRepo.On("Find", mock.Anything, "u1", "m1").Return(Media{ID: "m1", FilePath: "u1/n1/1-a.png"}, nil)
	mockRepo.On("Delete", mock.Anything, "u1", "m1").Return(nil)
	mockStore.On("Remove", mock.Anything, "u1/n1/1-a.png").Return(nil)

	err := service.Delete(context.Background(), "u1", "m1")
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestService_CleanupNote_RemovesEveryObject(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	mockRepo.On("ListByNote", mock.Anything, "u1", "n1").Return([]Media{
		{ID: "m1", FilePath: "u1/n1/1-a.png"},
		{ID: "m2", FilePath: "u1/n1/2-b.mp4"},
	}, nil)
	mockStore.On("Remove", mock.Anything, "u1/n1/1-a.png").Return(nil)
	mockStore.On("Remove", mock.Anything, "u1/n1/2-b.mp4").Return(nil)

	err := service.CleanupNote(context.Background(), "u1", "n1")
	assert.NoError(t, err)

	mockStore.AssertExpectations(t)
}

func TestService_CleanupNote_FailedRemoveLandsInCleanupLog(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStore := new(MockObjectStore)
	service := newService(mockRepo, mockStore)

	mockRepo.On("ListByNote", mock.Anything, "u1", "n1").Return([]Media{
		{ID: "m1", FilePath: "u1/n1/1-a.png"},
	}, nil)
	mockStore.On("Remove", mock.Anything, "u1/n1/1-a.png").Return(errors.New("minio down"))
	mockRepo.On("AddCleanup", mock.Anything, "u1/n1/1-a.png").Return(nil)

	err := service.CleanupNote(context.Background(), "u1", "n1")
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		mime string
		want FileType
	}{
		{"image/png", TypeImage},
		{"audio/mpeg", TypeAudio},
		{"video/mp4", TypeVideo},
		{"application/pdf", TypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classify(tt.mime), tt.mime)
	}
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "my_photo_1.jpg", sanitizeFileName("my photo 1.jpg"))
	assert.Equal(t, "____.png", sanitizeFileName("кот!.png"))
	assert.Equal(t, "safe-name_v2.webm", sanitizeFileName("safe-name_v2.webm"))
}
