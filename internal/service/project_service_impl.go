package service

import (
	"context"
	"strings"
	"time"

	"github.com/akarlsen/cadence/internal/domain"
	"github.com/akarlsen/cadence/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Name = strings.TrimSpace(p.Name)
	p.CreatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return err
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.List(ctx, userID)
}

func (s *projectService) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyName
	}
	return s.projects.Rename(ctx, id, name)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}
	// Habit and task references are detached by the schema, not deleted.
	return s.projects.Delete(ctx, id)
}
