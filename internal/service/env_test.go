package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/client"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/lock"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
	"taskboard-api/internal/testutil"
)

const testMaxFileSize = 1024

// testEnv wires every service against a migrated SQLite database
type testEnv struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB

	boards      BoardService
	lists       ListService
	cards       CardService
	labels      LabelService
	members     MemberService
	checklists  ChecklistService
	attachments AttachmentService
	comments    CommentService
	users       UserService

	storage *client.MockFileStorage
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	logger := zap.NewNop()
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), logger)
	tx := repository.NewTransactor(db)
	locker := lock.NewLocalLocker()
	storage := client.NewMockFileStorage()

	boardRepo := repository.NewBoardRepository(db)
	listRepo := repository.NewListRepository(db)
	cardRepo := repository.NewCardRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &testEnv{
		t:           t,
		ctx:         context.Background(),
		db:          db,
		boards:      NewBoardService(boardRepo, tx, m, logger),
		lists:       NewListService(listRepo, boardRepo, tx, locker, logger),
		cards:       NewCardService(cardRepo, listRepo, tx, locker, m, logger),
		labels:      NewLabelService(labelRepo, boardRepo, cardRepo, tx, logger),
		members:     NewMemberService(memberRepo, cardRepo, userRepo, tx, logger),
		checklists:  NewChecklistService(checklistRepo, cardRepo, tx, locker, logger),
		attachments: NewAttachmentService(attachmentRepo, cardRepo, storage, tx, testMaxFileSize, m, logger),
		comments:    NewCommentService(commentRepo, cardRepo, userRepo, tx, logger),
		users:       NewUserService(userRepo, tx, logger),
		storage:     storage,
		metrics:     m,
	}
}

func (e *testEnv) user(name, email string) *domain.User {
	u := &domain.User{Name: name, Email: email}
	require.NoError(e.t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) board(title string) *domain.Board {
	b := &domain.Board{Title: title, Background: domain.DefaultBoardBackground}
	require.NoError(e.t, e.db.Create(b).Error)
	return b
}

func (e *testEnv) list(boardID, title string, position int) *domain.List {
	l := &domain.List{BoardID: boardID, Title: title, Position: position}
	require.NoError(e.t, e.db.Create(l).Error)
	return l
}

func (e *testEnv) card(listID, title string, position int) *domain.Card {
	c := &domain.Card{ListID: listID, Title: title, Position: position}
	require.NoError(e.t, e.db.Create(c).Error)
	return c
}

func (e *testEnv) label(boardID, name string) *domain.Label {
	l := &domain.Label{BoardID: boardID, Name: name, Color: "#61bd4f"}
	require.NoError(e.t, e.db.Create(l).Error)
	return l
}

func (e *testEnv) count(model interface{}, query string, args ...interface{}) int64 {
	var n int64
	q := e.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(e.t, q.Count(&n).Error)
	return n
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func ptr[T any](v T) *T {
	return &v
}
