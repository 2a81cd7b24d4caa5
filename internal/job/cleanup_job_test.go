package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
)

// MockAttachmentRepository is a mock implementation of AttachmentRepository
type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) Create(ctx context.Context, attachment *domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) FindByID(ctx context.Context, id string) (*domain.Attachment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) FindByCardID(ctx context.Context, cardID string) ([]*domain.Attachment, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	args := m.Called(ctx, url)
	return args.Bool(0), args.Error(1)
}

func (m *MockAttachmentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestJob(repo *MockAttachmentRepository, storage *client.MockFileStorage) *CleanupJob {
	j := NewCleanupJob(repo, storage, time.Hour, zap.NewNop())
	j.now = func() time.Time { return fixedNow }
	return j
}

func TestCleanupJob_RunContext_RemovesOrphans(t *testing.T) {
	mockRepo := new(MockAttachmentRepository)
	storage := client.NewMockFileStorage()
	storage.Put("/uploads/orphan.txt", []byte("a"), fixedNow.Add(-2*time.Hour))
	storage.Put("/uploads/kept.txt", []byte("b"), fixedNow.Add(-2*time.Hour))
	storage.Put("/uploads/fresh.txt", []byte("c"), fixedNow.Add(-time.Minute))

	mockRepo.On("ExistsByURL", mock.Anything, "/uploads/orphan.txt").Return(false, nil)
	mockRepo.On("ExistsByURL", mock.Anything, "/uploads/kept.txt").Return(true, nil)

	result, err := newTestJob(mockRepo, storage).RunContext(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &CleanupResult{Scanned: 3, Removed: 1}, result)
	assert.False(t, storage.Has("/uploads/orphan.txt"))
	assert.True(t, storage.Has("/uploads/kept.txt"))
	assert.True(t, storage.Has("/uploads/fresh.txt"))
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "ExistsByURL", mock.Anything, "/uploads/fresh.txt")
}

func TestCleanupJob_RunContext_EmptyStorage(t *testing.T) {
	mockRepo := new(MockAttachmentRepository)

	result, err := newTestJob(mockRepo, client.NewMockFileStorage()).RunContext(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &CleanupResult{}, result)
	mockRepo.AssertNotCalled(t, "ExistsByURL")
}

func TestCleanupJob_RunContext_Failures(t *testing.T) {
	mockRepo := new(MockAttachmentRepository)
	storage := client.NewMockFileStorage()
	old := fixedNow.Add(-48 * time.Hour)
	storage.Put("/uploads/lookup-fails.txt", []byte("a"), old)
	storage.Put("/uploads/delete-fails.txt", []byte("b"), old)
	storage.DeleteFunc = func(ctx context.Context, url string) error {
		return errors.New("permission denied")
	}

	mockRepo.On("ExistsByURL", mock.Anything, "/uploads/lookup-fails.txt").Return(false, errors.New("db down"))
	mockRepo.On("ExistsByURL", mock.Anything, "/uploads/delete-fails.txt").Return(false, nil)

	result, err := newTestJob(mockRepo, storage).RunContext(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Failed)
	assert.Zero(t, result.Removed)
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_RunContext_ListError(t *testing.T) {
	storage := client.NewMockFileStorage()
	storage.ListFunc = func(ctx context.Context) ([]client.StoredFile, error) {
		return nil, errors.New("bucket unavailable")
	}

	_, err := newTestJob(new(MockAttachmentRepository), storage).RunContext(context.Background())
	assert.ErrorContains(t, err, "bucket unavailable")
}

func TestCleanupJob_Schedule(t *testing.T) {
	j := newTestJob(new(MockAttachmentRepository), client.NewMockFileStorage())

	c, err := j.Schedule("@every 1h")
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()

	_, err = j.Schedule("not a schedule")
	assert.Error(t, err)
}
