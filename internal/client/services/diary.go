package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/pagination"
)

type DiaryService interface {
	List(ctx context.Context, page, limit int) (pagination.Page[models.DiaryEntry], error)
	Create(ctx context.Context, in models.DiaryInput) (*models.DiaryEntry, error)
	Update(ctx context.Context, id models.ID, in models.DiaryInput) (*models.DiaryEntry, error)
	Delete(ctx context.Context, id models.ID) error
	Pager(limit int) *pagination.Pager[models.DiaryEntry]
}

type diaryService struct {
	client client.Client
}

func NewDiaryService(c client.Client) DiaryService {
	return &diaryService{client: c}
}

func (s *diaryService) List(ctx context.Context, page, limit int) (pagination.Page[models.DiaryEntry], error) {
	return listPage[models.DiaryEntry](ctx, s.client, diaryPath, page, limit)
}

func (s *diaryService) Pager(limit int) *pagination.Pager[models.DiaryEntry] {
	return pagination.NewPager[models.DiaryEntry](s.List, limit)
}

func (s *diaryService) Create(ctx context.Context, in models.DiaryInput) (*models.DiaryEntry, error) {
	if err := validateDiary(in); err != nil {
		return nil, err
	}
	var out models.DiaryEntry
	if err := s.client.Post(ctx, diaryPath, in, &out); err != nil {
		return nil, fmt.Errorf("create diary entry: %w", err)
	}
	return &out, nil
}

func (s *diaryService) Update(ctx context.Context, id models.ID, in models.DiaryInput) (*models.DiaryEntry, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validateDiary(in); err != nil {
		return nil, err
	}
	var out models.DiaryEntry
	if err := s.client.Put(ctx, itemPath(diaryPath, id), in, &out); err != nil {
		return nil, fmt.Errorf("update diary entry %s: %w", id, err)
	}
	return &out, nil
}

func (s *diaryService) Delete(ctx context.Context, id models.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	if err := s.client.Delete(ctx, itemPath(diaryPath, id), nil); err != nil {
		return fmt.Errorf("delete diary entry %s: %w", id, err)
	}
	return nil
}

func validateDiary(in models.DiaryInput) error {
	if err := requireText("content", in.Content); err != nil {
		return err
	}
	if in.Mood != "" && !in.Mood.Valid() {
		return fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, in.Mood)
	}
	return nil
}
