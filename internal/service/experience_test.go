package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
)

type fakeExperienceStore struct {
	inserted   *model.Experience
	lastUpdate *model.ExperienceUpdate
	insertErr  error
}

func (f *fakeExperienceStore) List(ctx context.Context) ([]model.Experience, error) {
	return nil, nil
}

func (f *fakeExperienceStore) GetByID(ctx context.Context, id int64) (*model.Experience, error) {
	return nil, errors.New("no rows")
}

func (f *fakeExperienceStore) Insert(ctx context.Context, e *model.Experience) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = e
	return 7, nil
}

func (f *fakeExperienceStore) Update(ctx context.Context, id int64, upd *model.ExperienceUpdate) error {
	f.lastUpdate = upd
	return nil
}

func (f *fakeExperienceStore) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestExperienceCreateFiltersBlankPoints(t *testing.T) {
	store := &fakeExperienceStore{}
	svc := NewExperienceService(store, zap.NewNop())

	id, err := svc.Create(context.Background(), &model.Experience{
		Title:  "Engineer",
		Points: []string{"Built the API", "", "  "},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), id)
	assert.Equal(t, []string{"Built the API"}, store.inserted.Points)
}

func TestExperienceUpdateSanitizesSuppliedPoints(t *testing.T) {
	store := &fakeExperienceStore{}
	svc := NewExperienceService(store, zap.NewNop())

	points := []string{"kept", "", "\t"}
	err := svc.Update(context.Background(), 1, &model.ExperienceUpdate{Points: &points})
	require.NoError(t, err)

	require.NotNil(t, store.lastUpdate.Points)
	assert.Equal(t, []string{"kept"}, *store.lastUpdate.Points)
}

func TestExperienceUpdateLeavesAbsentPointsAlone(t *testing.T) {
	store := &fakeExperienceStore{}
	svc := NewExperienceService(store, zap.NewNop())

	title := "Staff Engineer"
	err := svc.Update(context.Background(), 1, &model.ExperienceUpdate{Title: &title})
	require.NoError(t, err)

	assert.Nil(t, store.lastUpdate.Points)
}

func TestExperienceCreatePropagatesStoreError(t *testing.T) {
	store := &fakeExperienceStore{insertErr: errors.New("db down")}
	svc := NewExperienceService(store, zap.NewNop())

	_, err := svc.Create(context.Background(), &model.Experience{Title: "Engineer"})
	assert.Error(t, err)
}
