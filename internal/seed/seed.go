// Package seed loads demo users and a sample board for local development.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/repository"
)

// DemoBoardTitle identifies the seeded board. Seeding is skipped when a board with this title exists.
const DemoBoardTitle = "Welcome Board"

var demoUsers = []domain.User{
	{Name: "Alice Kim", Email: "alice@taskboard.local"},
	{Name: "Bob Lee", Email: "bob@taskboard.local"},
	{Name: "Carol Park", Email: "carol@taskboard.local"},
}

type demoCard struct {
	title       string
	description string
	labels      []int
	members     []int
}

type demoList struct {
	title string
	cards []demoCard
}

var demoLabels = []domain.Label{
	{Name: "Feature", Color: "#61bd4f"},
	{Name: "Bug", Color: "#eb5a46"},
	{Name: "Docs", Color: "#0079bf"},
}

var demoLists = []demoList{
	{title: "To Do", cards: []demoCard{
		{title: "Draft the release notes", description: "Summarize the changes since the last release", labels: []int{2}, members: []int{0}},
		{title: "Fix drag and drop on mobile", labels: []int{1}, members: []int{1}},
	}},
	{title: "In Progress", cards: []demoCard{
		{title: "Board search", description: "Filter cards by label, member and due date", labels: []int{0}, members: []int{0, 2}},
	}},
	{title: "Done", cards: []demoCard{
		{title: "Project setup", labels: []int{0}},
	}},
}

var demoChecklist = []string{"Collect merged changes", "Write highlights", "Publish"}

// Result reports what a seeding run created
type Result struct {
	UsersCreated int
	BoardCreated bool
	BoardID      string
}

// Seeder writes demo data through the repositories
type Seeder struct {
	tx            repository.Transactor
	userRepo      repository.UserRepository
	boardRepo     repository.BoardRepository
	listRepo      repository.ListRepository
	cardRepo      repository.CardRepository
	labelRepo     repository.LabelRepository
	memberRepo    repository.MemberRepository
	checklistRepo repository.ChecklistRepository
	logger        *zap.Logger
}

// New creates a Seeder for db
func New(db *gorm.DB, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		tx:            repository.NewTransactor(db),
		userRepo:      repository.NewUserRepository(db),
		boardRepo:     repository.NewBoardRepository(db),
		listRepo:      repository.NewListRepository(db),
		cardRepo:      repository.NewCardRepository(db),
		labelRepo:     repository.NewLabelRepository(db),
		memberRepo:    repository.NewMemberRepository(db),
		checklistRepo: repository.NewChecklistRepository(db),
		logger:        logger,
	}
}

// Run creates missing demo users, then the demo board if it does not exist yet.
// Running it again is a no-op.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		users, created, err := s.ensureUsers(ctx)
		if err != nil {
			return err
		}
		result.UsersCreated = created

		existing, err := s.boardRepo.FindByTitle(ctx, DemoBoardTitle)
		if err == nil {
			result.BoardID = existing.ID
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up demo board: %w", err)
		}

		boardID, err := s.createBoard(ctx, users)
		if err != nil {
			return err
		}
		result.BoardCreated = true
		result.BoardID = boardID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Seed completed",
		zap.Int("users_created", result.UsersCreated),
		zap.Bool("board_created", result.BoardCreated),
		zap.String("board_id", result.BoardID))
	return result, nil
}

func (s *Seeder) ensureUsers(ctx context.Context) ([]*domain.User, int, error) {
	users := make([]*domain.User, 0, len(demoUsers))
	created := 0
	for _, demo := range demoUsers {
		user, err := s.userRepo.FindByEmail(ctx, demo.Email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = &domain.User{Name: demo.Name, Email: demo.Email}
			if err := s.userRepo.Create(ctx, user); err != nil {
				return nil, 0, fmt.Errorf("failed to create user %s: %w", demo.Email, err)
			}
			created++
		} else if err != nil {
			return nil, 0, fmt.Errorf("failed to look up user %s: %w", demo.Email, err)
		}
		users = append(users, user)
	}
	return users, created, nil
}

func (s *Seeder) createBoard(ctx context.Context, users []*domain.User) (string, error) {
	description := "A sample board to explore lists, cards and labels"
	board := &domain.Board{
		Title:       DemoBoardTitle,
		Description: &description,
		Background:  domain.DefaultBoardBackground,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return "", fmt.Errorf("failed to create demo board: %w", err)
	}

	labels := make([]*domain.Label, 0, len(demoLabels))
	for _, demo := range demoLabels {
		label := &domain.Label{BoardID: board.ID, Name: demo.Name, Color: demo.Color}
		if err := s.labelRepo.Create(ctx, label); err != nil {
			return "", fmt.Errorf("failed to create label %s: %w", demo.Name, err)
		}
		labels = append(labels, label)
	}

	var firstCard *domain.Card
	for listPos, demo := range demoLists {
		list := &domain.List{BoardID: board.ID, Title: demo.title, Position: listPos}
		if err := s.listRepo.Create(ctx, list); err != nil {
			return "", fmt.Errorf("failed to create list %s: %w", demo.title, err)
		}

		for cardPos, dc := range demo.cards {
			card := &domain.Card{ListID: list.ID, Title: dc.title, Position: cardPos}
			if dc.description != "" {
				d := dc.description
				card.Description = &d
			}
			if err := s.cardRepo.Create(ctx, card); err != nil {
				return "", fmt.Errorf("failed to create card %s: %w", dc.title, err)
			}
			for _, i := range dc.labels {
				if _, err := s.labelRepo.AttachToCard(ctx, card.ID, labels[i].ID); err != nil {
					return "", fmt.Errorf("failed to attach label: %w", err)
				}
			}
			for _, i := range dc.members {
				if _, err := s.memberRepo.Attach(ctx, card.ID, users[i].ID); err != nil {
					return "", fmt.Errorf("failed to attach member: %w", err)
				}
			}
			if firstCard == nil {
				firstCard = card
			}
		}
	}

	checklist := &domain.Checklist{CardID: firstCard.ID, Title: "Release steps"}
	if err := s.checklistRepo.Create(ctx, checklist); err != nil {
		return "", fmt.Errorf("failed to create checklist: %w", err)
	}
	for i, text := range demoChecklist {
		item := &domain.ChecklistItem{ChecklistID: checklist.ID, Text: text, Position: i, IsCompleted: i == 0}
		if err := s.checklistRepo.CreateItem(ctx, item); err != nil {
			return "", fmt.Errorf("failed to create checklist item: %w", err)
		}
	}

	return board.ID, nil
}
