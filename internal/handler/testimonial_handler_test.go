package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
	"portfolio-admin/internal/service"
)

type memTestimonialStore struct {
	records map[int64]*model.Testimonial
	nextID  int64
}

func newMemTestimonialStore() *memTestimonialStore {
	return &memTestimonialStore{records: map[int64]*model.Testimonial{}, nextID: 1}
}

func (m *memTestimonialStore) List(ctx context.Context, status string) ([]model.Testimonial, error) {
	out := []model.Testimonial{}
	for _, t := range m.records {
		if status == "" || t.Status == status {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memTestimonialStore) GetByID(ctx context.Context, id int64) (*model.Testimonial, error) {
	t, ok := m.records[id]
	if !ok {
		return nil, errNoRows
	}
	copied := *t
	return &copied, nil
}

func (m *memTestimonialStore) Insert(ctx context.Context, t *model.Testimonial) (int64, error) {
	id := m.nextID
	m.nextID++
	t.ID = id
	copied := *t
	m.records[id] = &copied
	return id, nil
}

func (m *memTestimonialStore) Update(ctx context.Context, id int64, upd *model.TestimonialUpdate) error {
	return nil
}

func (m *memTestimonialStore) SetStatus(ctx context.Context, id int64, status string) error {
	if t, ok := m.records[id]; ok {
		t.Status = status
	}
	return nil
}

func (m *memTestimonialStore) Delete(ctx context.Context, id int64) error {
	delete(m.records, id)
	return nil
}

var errNoRows = assert.AnError

func newTestRouter(store *memTestimonialStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewTestimonialService(store, nil, zap.NewNop())
	h := NewTestimonialHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/testimonials/submit", h.Submit)
	r.GET("/testimonials", h.List)
	r.POST("/testimonials/:id/approve", h.Approve)
	return r
}

func TestSubmitCreatesPendingTestimonial(t *testing.T) {
	store := newMemTestimonialStore()
	r := newTestRouter(store)

	body := `{"name":"Ada","designation":"CTO","company":"Analytical Engines","testimonial":"Great work","status":"approved"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/testimonials/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.TestimonialStatusPending, resp.Status)

	stored := store.records[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, model.TestimonialStatusPending, stored.Status)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	r := newTestRouter(newMemTestimonialStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/testimonials/submit", strings.NewReader(`{"name":"Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	r := newTestRouter(newMemTestimonialStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/testimonials?status=bogus", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveRejectsBadID(t *testing.T) {
	r := newTestRouter(newMemTestimonialStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/testimonials/abc/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveFlipsStatus(t *testing.T) {
	store := newMemTestimonialStore()
	store.records[5] = &model.Testimonial{ID: 5, Name: "Ada", Status: model.TestimonialStatusPending}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/testimonials/5/approve", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.TestimonialStatusApproved, store.records[5].Status)
}
