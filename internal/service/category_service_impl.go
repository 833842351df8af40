package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/google/uuid"
)

type categoryService struct {
	categories repository.CategoryRepo
}

func NewCategoryService(categories repository.CategoryRepo) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Name = strings.TrimSpace(c.Name)
	c.CreatedAt = time.Now().UTC()

	if err := c.Validate(); err != nil {
		return err
	}

	existing, err := s.categories.GetByName(ctx, c.UserID, c.Name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateCategory
	}

	return s.categories.Create(ctx, c)
}

func (s *categoryService) List(ctx context.Context, userID string) ([]*domain.Category, error) {
	return s.categories.List(ctx, userID)
}

func (s *categoryService) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyName
	}

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing, err := s.categories.GetByName(ctx, c.UserID, name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil && existing.ID != id {
		return domain.ErrDuplicateCategory
	}

	return s.categories.Rename(ctx, id, name)
}

// Delete refuses to remove a category while any activity, habit or task
// still references it.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return err
	}
	refs, err := s.categories.ReferenceCount(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrCategoryInUse
	}
	return s.categories.Delete(ctx, id)
}
