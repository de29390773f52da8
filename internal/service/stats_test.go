package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedCounter int

func (c fixedCounter) Count(ctx context.Context) (int, error) { return int(c), nil }

type failingCounter struct{}

func (failingCounter) Count(ctx context.Context) (int, error) {
	return 0, errors.New("db down")
}

type fixedTestimonialCounter struct{ total, pending, approved int }

func (c fixedTestimonialCounter) CountByStatus(ctx context.Context) (int, int, int, error) {
	return c.total, c.pending, c.approved, nil
}

type fixedVisitors int

func (v fixedVisitors) TotalVisitors(ctx context.Context) (int, error) { return int(v), nil }

type failingVisitors struct{}

func (failingVisitors) TotalVisitors(ctx context.Context) (int, error) {
	return 0, errors.New("analytics unreachable")
}

func TestStatsAggregatesCounts(t *testing.T) {
	svc := NewStatsService(
		fixedCounter(3),
		fixedCounter(5),
		fixedTestimonialCounter{total: 4, pending: 1, approved: 3},
		fixedVisitors(1200),
		zap.NewNop(),
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Experiences)
	assert.Equal(t, 5, stats.Projects)
	assert.Equal(t, 4, stats.Testimonials)
	assert.Equal(t, 1, stats.PendingTestimonials)
	assert.Equal(t, 3, stats.ApprovedTestimonials)
	assert.Equal(t, 1200, stats.TotalVisitors)
}

func TestStatsDegradesVisitorsToZero(t *testing.T) {
	svc := NewStatsService(
		fixedCounter(1),
		fixedCounter(1),
		fixedTestimonialCounter{},
		failingVisitors{},
		zap.NewNop(),
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalVisitors)
}

func TestStatsFailsOnRepositoryError(t *testing.T) {
	svc := NewStatsService(
		failingCounter{},
		fixedCounter(1),
		fixedTestimonialCounter{},
		fixedVisitors(10),
		zap.NewNop(),
	)

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}
