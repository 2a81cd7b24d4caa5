package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/service"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockBoardService is a mock implementation of BoardService
type MockBoardService struct {
	CreateBoardFunc func(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoardsFunc   func(ctx context.Context) ([]*dto.BoardResponse, error)
	GetBoardFunc    func(ctx context.Context, boardID string) (*dto.BoardResponse, error)
	UpdateBoardFunc func(ctx context.Context, boardID string, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoardFunc func(ctx context.Context, boardID string) error
}

func (m *MockBoardService) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoards(ctx context.Context) ([]*dto.BoardResponse, error) {
	if m.GetBoardsFunc != nil {
		return m.GetBoardsFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, boardID string) (*dto.BoardResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, boardID string, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, boardID, req)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, boardID string) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, boardID)
	}
	return nil
}

// MockCardService is a mock implementation of CardService
type MockCardService struct {
	CreateCardFunc     func(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardDetailResponse, error)
	GetCardFunc        func(ctx context.Context, cardID string) (*dto.CardDetailResponse, error)
	GetCardsByListFunc func(ctx context.Context, listID string) ([]*dto.CardResponse, error)
	UpdateCardFunc     func(ctx context.Context, cardID string, req *dto.UpdateCardRequest) (*dto.CardDetailResponse, error)
	MoveCardFunc       func(ctx context.Context, cardID string, req *dto.MoveCardRequest) (*dto.CardDetailResponse, error)
	ReorderCardsFunc   func(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderResponse, error)
	DeleteCardFunc     func(ctx context.Context, cardID string) error
	SearchCardsFunc    func(ctx context.Context, query *dto.SearchCardsQuery) ([]*dto.CardResponse, error)
}

func (m *MockCardService) CreateCard(ctx context.Context, req *dto.CreateCardRequest) (*dto.CardDetailResponse, error) {
	if m.CreateCardFunc != nil {
		return m.CreateCardFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCardService) GetCard(ctx context.Context, cardID string) (*dto.CardDetailResponse, error) {
	if m.GetCardFunc != nil {
		return m.GetCardFunc(ctx, cardID)
	}
	return nil, nil
}

func (m *MockCardService) GetCardsByList(ctx context.Context, listID string) ([]*dto.CardResponse, error) {
	if m.GetCardsByListFunc != nil {
		return m.GetCardsByListFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockCardService) UpdateCard(ctx context.Context, cardID string, req *dto.UpdateCardRequest) (*dto.CardDetailResponse, error) {
	if m.UpdateCardFunc != nil {
		return m.UpdateCardFunc(ctx, cardID, req)
	}
	return nil, nil
}

func (m *MockCardService) MoveCard(ctx context.Context, cardID string, req *dto.MoveCardRequest) (*dto.CardDetailResponse, error) {
	if m.MoveCardFunc != nil {
		return m.MoveCardFunc(ctx, cardID, req)
	}
	return nil, nil
}

func (m *MockCardService) ReorderCards(ctx context.Context, req *dto.ReorderCardsRequest) (*dto.ReorderResponse, error) {
	if m.ReorderCardsFunc != nil {
		return m.ReorderCardsFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCardService) DeleteCard(ctx context.Context, cardID string) error {
	if m.DeleteCardFunc != nil {
		return m.DeleteCardFunc(ctx, cardID)
	}
	return nil
}

func (m *MockCardService) SearchCards(ctx context.Context, query *dto.SearchCardsQuery) ([]*dto.CardResponse, error) {
	if m.SearchCardsFunc != nil {
		return m.SearchCardsFunc(ctx, query)
	}
	return nil, nil
}

// MockLabelService is a mock implementation of LabelService
type MockLabelService struct {
	CreateLabelFunc      func(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error)
	GetLabelsByBoardFunc func(ctx context.Context, boardID string) ([]*dto.LabelResponse, error)
	UpdateLabelFunc      func(ctx context.Context, labelID string, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error)
	DeleteLabelFunc      func(ctx context.Context, labelID string) error
	AttachLabelFunc      func(ctx context.Context, cardID, labelID string) (*dto.CardLabelResponse, error)
	DetachLabelFunc      func(ctx context.Context, cardID, labelID string) error
}

func (m *MockLabelService) CreateLabel(ctx context.Context, req *dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	if m.CreateLabelFunc != nil {
		return m.CreateLabelFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockLabelService) GetLabelsByBoard(ctx context.Context, boardID string) ([]*dto.LabelResponse, error) {
	if m.GetLabelsByBoardFunc != nil {
		return m.GetLabelsByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockLabelService) UpdateLabel(ctx context.Context, labelID string, req *dto.UpdateLabelRequest) (*dto.LabelResponse, error) {
	if m.UpdateLabelFunc != nil {
		return m.UpdateLabelFunc(ctx, labelID, req)
	}
	return nil, nil
}

func (m *MockLabelService) DeleteLabel(ctx context.Context, labelID string) error {
	if m.DeleteLabelFunc != nil {
		return m.DeleteLabelFunc(ctx, labelID)
	}
	return nil
}

func (m *MockLabelService) AttachLabel(ctx context.Context, cardID, labelID string) (*dto.CardLabelResponse, error) {
	if m.AttachLabelFunc != nil {
		return m.AttachLabelFunc(ctx, cardID, labelID)
	}
	return nil, nil
}

func (m *MockLabelService) DetachLabel(ctx context.Context, cardID, labelID string) error {
	if m.DetachLabelFunc != nil {
		return m.DetachLabelFunc(ctx, cardID, labelID)
	}
	return nil
}

// MockAttachmentService is a mock implementation of AttachmentService
type MockAttachmentService struct {
	UploadAttachmentFunc func(ctx context.Context, cardID string, file *service.UploadFile) (*dto.AttachmentResponse, error)
	DeleteAttachmentFunc func(ctx context.Context, attachmentID string) error
}

func (m *MockAttachmentService) UploadAttachment(ctx context.Context, cardID string, file *service.UploadFile) (*dto.AttachmentResponse, error) {
	if m.UploadAttachmentFunc != nil {
		return m.UploadAttachmentFunc(ctx, cardID, file)
	}
	return nil, nil
}

func (m *MockAttachmentService) DeleteAttachment(ctx context.Context, attachmentID string) error {
	if m.DeleteAttachmentFunc != nil {
		return m.DeleteAttachmentFunc(ctx, attachmentID)
	}
	return nil
}
