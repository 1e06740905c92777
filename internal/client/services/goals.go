package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/pagination"
)

type GoalService interface {
	List(ctx context.Context, page, limit int) (pagination.Page[models.Goal], error)
	Create(ctx context.Context, in models.GoalInput) (*models.Goal, error)
	Update(ctx context.Context, id models.ID, patch models.GoalPatch) (*models.Goal, error)
	Delete(ctx context.Context, id models.ID) error
	Pager(limit int) *pagination.Pager[models.Goal]
}

type goalService struct {
	client client.Client
}

func NewGoalService(c client.Client) GoalService {
	return &goalService{client: c}
}

func (s *goalService) List(ctx context.Context, page, limit int) (pagination.Page[models.Goal], error) {
	return listPage[models.Goal](ctx, s.client, goalsPath, page, limit)
}

func (s *goalService) Pager(limit int) *pagination.Pager[models.Goal] {
	return pagination.NewPager[models.Goal](s.List, limit)
}

func (s *goalService) Create(ctx context.Context, in models.GoalInput) (*models.Goal, error) {
	if err := requireText("title", in.Title); err != nil {
		return nil, err
	}
	var out models.Goal
	if err := s.client.Post(ctx, goalsPath, in, &out); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return &out, nil
}

// Update sends only the fields set in patch.
func (s *goalService) Update(ctx context.Context, id models.ID, patch models.GoalPatch) (*models.Goal, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if patch.Title != nil {
		if err := requireText("title", *patch.Title); err != nil {
			return nil, err
		}
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *patch.Status)
	}

	var out models.Goal
	if err := s.client.Patch(ctx, itemPath(goalsPath, id), patch, &out); err != nil {
		return nil, fmt.Errorf("update goal %s: %w", id, err)
	}
	return &out, nil
}

func (s *goalService) Delete(ctx context.Context, id models.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.client.Delete(ctx, itemPath(goalsPath, id), nil); err != nil {
		return fmt.Errorf("delete goal %s: %w", id, err)
	}
	return nil
}
