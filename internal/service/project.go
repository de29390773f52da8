package service

import (
	"context"

	"go.uber.org/zap"

	"portfolio-admin/internal/model"
	"portfolio-admin/pkg/metrics"
)

// ProjectStore is the slice of the project repository the service needs.
type ProjectStore interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	Insert(ctx context.Context, p *model.Project) (int64, error)
	Update(ctx context.Context, id int64, upd *model.ProjectUpdate) error
	Delete(ctx context.Context, id int64) error
}

type ProjectService struct {
	repo   ProjectStore
	logger *zap.Logger
}

func NewProjectService(repo ProjectStore, logger *zap.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new project after dropping blank-named tags. The
// creation timestamp is stamped by the store, whatever the caller sent.
func (s *ProjectService) Create(ctx context.Context, p *model.Project) (int64, error) {
	p.SanitizeTags()
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return 0, err
	}
	metrics.IncrementRecordMutation("project", "create")
	return id, nil
}

// Update applies a merge-style partial overwrite; created_at is not
// touchable through this path.
func (s *ProjectService) Update(ctx context.Context, id int64, upd *model.ProjectUpdate) error {
	if upd.Tags != nil {
		scratch := model.Project{Tags: *upd.Tags}
		scratch.SanitizeTags()
		upd.Tags = &scratch.Tags
	}
	if err := s.repo.Update(ctx, id, upd); err != nil {
		return err
	}
	metrics.IncrementRecordMutation("project", "update")
	return nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.IncrementRecordMutation("project", "delete")
	return nil
}
