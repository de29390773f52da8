package service

import (
	"context"

	"go.uber.org/zap"
)

// Counter yields a single record count. The experience and project
// repositories satisfy it with their Count methods.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// TestimonialCounter yields the testimonial totals in one call.
type TestimonialCounter interface {
	CountByStatus(ctx context.Context) (total, pending, approved int, err error)
}

// VisitorSource yields the external visitor total.
type VisitorSource interface {
	TotalVisitors(ctx context.Context) (int, error)
}

// DashboardStats is the GET /dashboard/stats body.
type DashboardStats struct {
	TotalVisitors        int `json:"totalVisitors"`
	Experiences          int `json:"experiences"`
	Projects             int `json:"projects"`
	Testimonials         int `json:"testimonials"`
	PendingTestimonials  int `json:"pendingTestimonials"`
	ApprovedTestimonials int `json:"approvedTestimonials"`
}

type StatsService struct {
	experiences  Counter
	projects     Counter
	testimonials TestimonialCounter
	visitors     VisitorSource
	logger       *zap.Logger
}

func NewStatsService(
	experiences Counter,
	projects Counter,
	testimonials TestimonialCounter,
	visitors VisitorSource,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		experiences:  experiences,
		projects:     projects,
		testimonials: testimonials,
		visitors:     visitors,
		logger:       logger,
	}
}

// Stats aggregates the dashboard counters. Record counts are required;
// the visitor total degrades to 0 when the analytics endpoint is down.
func (s *StatsService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Experiences, err = s.experiences.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Projects, err = s.projects.Count(ctx); err != nil {
		return nil, err
	}
	total, pending, approved, err := s.testimonials.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.Testimonials = total
	stats.PendingTestimonials = pending
	stats.ApprovedTestimonials = approved

	if s.visitors != nil {
		if visitors, err := s.visitors.TotalVisitors(ctx); err == nil {
			stats.TotalVisitors = visitors
		} else {
			s.logger.Warn("Visitor count unavailable, reporting zero", zap.Error(err))
		}
	}

	return stats, nil
}
