package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	mqcontracts "portfolio-admin/contracts/mq"
	"portfolio-admin/internal/model"
	"portfolio-admin/pkg/metrics"
)

// TestimonialStore is the slice of the testimonial repository the service needs.
type TestimonialStore interface {
	List(ctx context.Context, status string) ([]model.Testimonial, error)
	GetByID(ctx context.Context, id int64) (*model.Testimonial, error)
	Insert(ctx context.Context, t *model.Testimonial) (int64, error)
	Update(ctx context.Context, id int64, upd *model.TestimonialUpdate) error
	SetStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

// EventPublisher pushes lifecycle events to the message broker.
// *mq.Publisher satisfies it.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type TestimonialService struct {
	repo   TestimonialStore
	events EventPublisher
	logger *zap.Logger
}

func NewTestimonialService(repo TestimonialStore, events EventPublisher, logger *zap.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, events: events, logger: logger}
}

// List returns testimonials, optionally restricted to one status.
func (s *TestimonialService) List(ctx context.Context, status string) ([]model.Testimonial, error) {
	if status != "" && !model.ValidTestimonialStatus(status) {
		return nil, fmt.Errorf("unknown testimonial status %q", status)
	}
	return s.repo.List(ctx, status)
}

func (s *TestimonialService) Get(ctx context.Context, id int64) (*model.Testimonial, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new testimonial. Status is forced to pending and the
// creation timestamp is stamped by the store, overriding anything the
// caller supplied. A testimonial.submitted event is published
// best-effort: a broker failure never fails the create.
func (s *TestimonialService) Create(ctx context.Context, t *model.Testimonial) (int64, error) {
	t.Status = model.TestimonialStatusPending

	id, err := s.repo.Insert(ctx, t)
	if err != nil {
		return 0, err
	}
	metrics.IncrementRecordMutation("testimonial", "create")

	s.publish(mqcontracts.RoutingKeyTestimonialSubmitted, mqcontracts.TestimonialSubmittedPayload{
		TestimonialID: id,
		Name:          t.Name,
		Company:       t.Company,
		SubmittedAt:   time.Now(),
	})
	return id, nil
}

// Submit is the public form path: same as Create plus a counter.
func (s *TestimonialService) Submit(ctx context.Context, t *model.Testimonial) (int64, error) {
	id, err := s.Create(ctx, t)
	if err != nil {
		return 0, err
	}
	metrics.TestimonialSubmittedCount.Inc()
	return id, nil
}

// Update applies a merge-style partial overwrite of the text fields.
func (s *TestimonialService) Update(ctx context.Context, id int64, upd *model.TestimonialUpdate) error {
	if err := s.repo.Update(ctx, id, upd); err != nil {
		return err
	}
	metrics.IncrementRecordMutation("testimonial", "update")
	return nil
}

// Approve sets status to approved unconditionally. Approving twice is
// fine; the second call is a no-op that still reports success.
func (s *TestimonialService) Approve(ctx context.Context, id int64) error {
	if err := s.repo.SetStatus(ctx, id, model.TestimonialStatusApproved); err != nil {
		return err
	}
	metrics.IncrementRecordMutation("testimonial", "approve")

	name := ""
	if t, err := s.repo.GetByID(ctx, id); err == nil {
		name = t.Name
	}
	s.publish(mqcontracts.RoutingKeyTestimonialApproved, mqcontracts.TestimonialApprovedPayload{
		TestimonialID: id,
		Name:          name,
		ApprovedAt:    time.Now(),
	})
	return nil
}

func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.IncrementRecordMutation("testimonial", "delete")
	return nil
}

func (s *TestimonialService) publish(routingKey string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(routingKey, payload); err != nil {
		s.logger.Error("Failed to publish testimonial event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}
