package dto

import "taskboard-api/internal/domain"

// NewUserResponse converts a domain user
func NewUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewBoardResponse converts a board and whatever part of its tree was loaded
func NewBoardResponse(b *domain.Board) *BoardResponse {
	resp := &BoardResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Background:  b.Background,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Lists:       make([]BoardListResponse, 0, len(b.Lists)),
		Labels:      make([]LabelResponse, 0, len(b.Labels)),
	}
	for i := range b.Lists {
		l := &b.Lists[i]
		list := BoardListResponse{
			ID:        l.ID,
			BoardID:   l.BoardID,
			Title:     l.Title,
			Position:  l.Position,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
			Cards:     make([]CardDetailResponse, 0, len(l.Cards)),
		}
		for j := range l.Cards {
			list.Cards = append(list.Cards, *NewCardDetailResponse(&l.Cards[j], nil))
		}
		resp.Lists = append(resp.Lists, list)
	}
	for i := range b.Labels {
		resp.Labels = append(resp.Labels, *NewLabelResponse(&b.Labels[i]))
	}
	return resp
}

// NewListResponse converts a list with its loaded cards
func NewListResponse(l *domain.List) *ListResponse {
	resp := &ListResponse{
		ID:        l.ID,
		BoardID:   l.BoardID,
		Title:     l.Title,
		Position:  l.Position,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
		Cards:     make([]CardResponse, 0, len(l.Cards)),
	}
	for i := range l.Cards {
		resp.Cards = append(resp.Cards, *NewCardResponse(&l.Cards[i]))
	}
	return resp
}

// NewCardResponse converts a card with its labels and members
func NewCardResponse(c *domain.Card) *CardResponse {
	resp := &CardResponse{
		ID:          c.ID,
		ListID:      c.ListID,
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		DueDate:     c.DueDate,
		CoverImage:  c.CoverImage,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Labels:      make([]CardLabelResponse, 0, len(c.Labels)),
		Members:     make([]CardMemberResponse, 0, len(c.Members)),
	}
	for i := range c.Labels {
		resp.Labels = append(resp.Labels, *NewCardLabelResponse(&c.Labels[i]))
	}
	for i := range c.Members {
		resp.Members = append(resp.Members, *NewCardMemberResponse(&c.Members[i]))
	}
	return resp
}

// NewCardDetailResponse converts a fully loaded card. list may be nil.
func NewCardDetailResponse(c *domain.Card, list *domain.List) *CardDetailResponse {
	resp := &CardDetailResponse{
		CardResponse: *NewCardResponse(c),
		Checklists:   make([]ChecklistResponse, 0, len(c.Checklists)),
		Attachments:  make([]AttachmentResponse, 0, len(c.Attachments)),
		Comments:     make([]CommentResponse, 0, len(c.Comments)),
	}
	if list != nil {
		resp.List = &ListSummary{ID: list.ID, BoardID: list.BoardID, Title: list.Title}
	}
	for i := range c.Checklists {
		resp.Checklists = append(resp.Checklists, *NewChecklistResponse(&c.Checklists[i]))
	}
	for i := range c.Attachments {
		resp.Attachments = append(resp.Attachments, *NewAttachmentResponse(&c.Attachments[i]))
	}
	for i := range c.Comments {
		resp.Comments = append(resp.Comments, *NewCommentResponse(&c.Comments[i]))
	}
	return resp
}

// NewLabelResponse converts a label
func NewLabelResponse(l *domain.Label) *LabelResponse {
	if l == nil {
		return nil
	}
	return &LabelResponse{
		ID:        l.ID,
		BoardID:   l.BoardID,
		Name:      l.Name,
		Color:     l.Color,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// NewCardLabelResponse converts a card-label join row
func NewCardLabelResponse(cl *domain.CardLabel) *CardLabelResponse {
	return &CardLabelResponse{
		CardID:  cl.CardID,
		LabelID: cl.LabelID,
		Label:   NewLabelResponse(cl.Label),
	}
}

// NewCardMemberResponse converts a card-member join row
func NewCardMemberResponse(m *domain.CardMember) *CardMemberResponse {
	return &CardMemberResponse{
		CardID: m.CardID,
		UserID: m.UserID,
		User:   NewUserResponse(m.User),
	}
}

// NewChecklistResponse converts a checklist with its loaded items
func NewChecklistResponse(c *domain.Checklist) *ChecklistResponse {
	resp := &ChecklistResponse{
		ID:        c.ID,
		CardID:    c.CardID,
		Title:     c.Title,
		Position:  c.Position,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Items:     make([]ChecklistItemResponse, 0, len(c.Items)),
	}
	for i := range c.Items {
		resp.Items = append(resp.Items, *NewChecklistItemResponse(&c.Items[i]))
	}
	return resp
}

// NewChecklistItemResponse converts a checklist item
func NewChecklistItemResponse(item *domain.ChecklistItem) *ChecklistItemResponse {
	return &ChecklistItemResponse{
		ID:          item.ID,
		ChecklistID: item.ChecklistID,
		Text:        item.Text,
		IsCompleted: item.IsCompleted,
		Position:    item.Position,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// NewAttachmentResponse converts attachment metadata
func NewAttachmentResponse(a *domain.Attachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:        a.ID,
		CardID:    a.CardID,
		Name:      a.Name,
		URL:       a.URL,
		Type:      a.Type,
		Size:      a.Size,
		CreatedAt: a.CreatedAt,
	}
}

// NewCommentResponse converts a comment with its loaded author
func NewCommentResponse(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		CardID:    c.CardID,
		UserID:    c.UserID,
		Text:      c.Text,
		User:      NewUserResponse(c.User),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
