package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/pagination"
)

type HabitService interface {
	List(ctx context.Context, page, limit int) (pagination.Page[models.Habit], error)
	Create(ctx context.Context, in models.HabitInput) (*models.Habit, error)
	// CheckIn marks the habit done for today and returns the updated streak.
	CheckIn(ctx context.Context, id models.ID) (*models.Habit, error)
	Delete(ctx context.Context, id models.ID) error
	Pager(limit int) *pagination.Pager[models.Habit]
}

type habitService struct {
	client client.Client
}

func NewHabitService(c client.Client) HabitService {
	return &habitService{client: c}
}

func (s *habitService) List(ctx context.Context, page, limit int) (pagination.Page[models.Habit], error) {
	return listPage[models.Habit](ctx, s.client, habitsPath, page, limit)
}

func (s *habitService) Pager(limit int) *pagination.Pager[models.Habit] {
	return pagination.NewPager[models.Habit](s.List, limit)
}

func (s *habitService) Create(ctx context.Context, in models.HabitInput) (*models.Habit, error) {
	if err := requireText("title", in.Title); err != nil {
		return nil, err
	}
	if in.Frequency == "" {
		in.Frequency = models.FrequencyDaily
	}
	if !in.Frequency.Valid() {
		return nil, fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, in.Frequency)
	}

	var out models.Habit
	if err := s.client.Post(ctx, habitsPath, in, &out); err != nil {
		return nil, fmt.Errorf("create habit: %w", err)
	}
	return &out, nil
}

func (s *habitService) CheckIn(ctx context.Context, id models.ID) (*models.Habit, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var out models.Habit
	if err := s.client.Post(ctx, itemPath(habitsPath, id, "check"), nil, &out); err != nil {
		return nil, fmt.Errorf("check in habit %s: %w", id, err)
	}
	return &out, nil
}

func (s *habitService) Delete(ctx context.Context, id models.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.client.Delete(ctx, itemPath(habitsPath, id), nil); err != nil {
		return fmt.Errorf("delete habit %s: %w", id, err)
	}
	return nil
}
