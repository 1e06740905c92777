package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/pagination"
)

type TodoService interface {
	List(ctx context.Context, page, limit int) (pagination.Page[models.Todo], error)
	Create(ctx context.Context, in models.TodoInput) (*models.Todo, error)
	SetCompleted(ctx context.Context, id models.ID, completed bool) (*models.Todo, error)
	Delete(ctx context.Context, id models.ID) error
	Pager(limit int) *pagination.Pager[models.Todo]
}

type todoService struct {
	client client.Client
}

func NewTodoService(c client.Client) TodoService {
	return &todoService{client: c}
}

func (s *todoService) List(ctx context.Context, page, limit int) (pagination.Page[models.Todo], error) {
	return listPage[models.Todo](ctx, s.client, todosPath, page, limit)
}

func (s *todoService) Pager(limit int) *pagination.Pager[models.Todo] {
	return pagination.NewPager[models.Todo](s.List, limit)
}

func (s *todoService) Create(ctx context.Context, in models.TodoInput) (*models.Todo, error) {
	if err := requireText("title", in.Title); err != nil {
		return nil, err
	}
	var out models.Todo
	if err := s.client.Post(ctx, todosPath, in, &out); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return &out, nil
}

func (s *todoService) SetCompleted(ctx context.Context, id models.ID, completed bool) (*models.Todo, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	body := struct {
		Completed bool `json:"completed"`
	}{completed}

	var out models.Todo
	if err := s.client.Patch(ctx, itemPath(todosPath, id), body, &out); err != nil {
		return nil, fmt.Errorf("update todo %s: %w", id, err)
	}
	return &out, nil
}

func (s *todoService) Delete(ctx context.Context, id models.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.client.Delete(ctx, itemPath(todosPath, id), nil); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}
