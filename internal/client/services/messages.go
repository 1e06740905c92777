package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/pagination"
)

// MaxMessageLength is the longest community message the backend accepts.
const MaxMessageLength = 1000

type MessageService interface {
	List(ctx context.Context, page, limit int) (pagination.Page[models.Message], error)
	Post(ctx context.Context, content string) (*models.Message, error)
	Pager(limit int) *pagination.Pager[models.Message]
}

type messageService struct {
	client client.Client
}

func NewMessageService(c client.Client) MessageService {
	return &messageService{client: c}
}

func (s *messageService) List(ctx context.Context, page, limit int) (pagination.Page[models.Message], error) {
	return listPage[models.Message](ctx, s.client, messagesPath, page, limit)
}

func (s *messageService) Pager(limit int) *pagination.Pager[models.Message] {
	return pagination.NewPager[models.Message](s.List, limit)
}

func (s *messageService) Post(ctx context.Context, content string) (*models.Message, error) {
	if err := requireText("content", content); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(content) > MaxMessageLength {
		return nil, fmt.Errorf("%w: message longer than %d characters", ErrInvalidInput, MaxMessageLength)
	}

	body := struct {
		Content string `json:"content"`
	}{content}

	var out models.Message
	if err := s.client.Post(ctx, messagesPath, body, &out); err != nil {
		return nil, fmt.Errorf("post message: %w", err)
	}
	return &out, nil
}
