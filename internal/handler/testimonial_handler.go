package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
	"portfolio-admin/internal/service"
)

type TestimonialHandler struct {
	svc    *service.TestimonialService
	logger *zap.Logger
}

func NewTestimonialHandler(svc *service.TestimonialService, logger *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{svc: svc, logger: logger}
}

// List returns testimonials, optionally filtered with ?status=pending
// or ?status=approved.
func (h *TestimonialHandler) List(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !model.ValidTestimonialStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
		return
	}

	testimonials, err := h.svc.List(c.Request.Context(), status)
	if err != nil {
		h.logger.Error("Failed to list testimonials",
			zap.String("status", status),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

func (h *TestimonialHandler) Get(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	testimonial, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
			return
		}
		h.logger.Error("Failed to fetch testimonial",
			zap.Int64("testimonial_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch testimonial"})
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// Create is the authenticated admin path.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var t model.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid testimonial payload"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &t)
	if err != nil {
		h.logger.Error("Failed to create testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "testimonial": t})
}

type submitRequest struct {
	Name        string `json:"name" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Text        string `json:"testimonial" binding:"required"`
	PhotoURL    string `json:"photoUrl"`
}

// Submit is the unauthenticated visitor path. Whatever the form sends,
// the record comes out pending.
func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, designation, company and testimonial are required"})
		return
	}

	t := model.Testimonial{
		Name:        req.Name,
		Designation: req.Designation,
		Company:     req.Company,
		Text:        req.Text,
		PhotoURL:    req.PhotoURL,
	}

	id, err := h.svc.Submit(c.Request.Context(), &t)
	if err != nil {
		h.logger.Error("Failed to submit testimonial", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit testimonial"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     id,
		"status": t.Status,
	})
}

func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var upd model.TestimonialUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid testimonial payload"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, &upd); err != nil {
		h.logger.Error("Failed to update testimonial",
			zap.Int64("testimonial_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// Approve flips a testimonial to approved. Safe to call twice.
func (h *TestimonialHandler) Approve(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.svc.Approve(c.Request.Context(), id); err != nil {
		h.logger.Error("Failed to approve testimonial",
			zap.Int64("testimonial_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "approved"})
}

func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("Failed to delete testimonial",
			zap.Int64("testimonial_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
