package service

import (
	"context"

	"go.uber.org/zap"

	"portfolio-admin/internal/model"
	"portfolio-admin/pkg/metrics"
)

// ExperienceStore is the slice of the experience repository the service needs.
type ExperienceStore interface {
	List(ctx context.Context) ([]model.Experience, error)
	GetByID(ctx context.Context, id int64) (*model.Experience, error)
	Insert(ctx context.Context, e *model.Experience) (int64, error)
	Update(ctx context.Context, id int64, upd *model.ExperienceUpdate) error
	Delete(ctx context.Context, id int64) error
}

type ExperienceService struct {
	repo   ExperienceStore
	logger *zap.Logger
}

func NewExperienceService(repo ExperienceStore, logger *zap.Logger) *ExperienceService {
	return &ExperienceService{repo: repo, logger: logger}
}

func (s *ExperienceService) List(ctx context.Context) ([]model.Experience, error) {
	return s.repo.List(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id int64) (*model.Experience, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new experience after dropping blank bullet points.
func (s *ExperienceService) Create(ctx context.Context, e *model.Experience) (int64, error) {
	e.SanitizePoints()
	id, err := s.repo.Insert(ctx, e)
	if err != nil {
		return 0, err
	}
	e.ID = id
	metrics.IncrementRecordMutation("experience", "create")
	return id, nil
}

// Update applies a merge-style partial overwrite. A supplied points
// array is sanitized and replaces the stored one wholesale.
func (s *ExperienceService) Update(ctx context.Context, id int64, upd *model.ExperienceUpdate) error {
	if upd.Points != nil {
		scratch := model.Experience{Points: *upd.Points}
		scratch.SanitizePoints()
		upd.Points = &scratch.Points
	}
	if err := s.repo.Update(ctx, id, upd); err != nil {
		return err
	}
	metrics.IncrementRecordMutation("experience", "update")
	return nil
}

func (s *ExperienceService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.IncrementRecordMutation("experience", "delete")
	return nil
}
