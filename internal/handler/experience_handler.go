package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"portfolio-admin/internal/model"
	"portfolio-admin/internal/service"
)

type ExperienceHandler struct {
	svc    *service.ExperienceService
	logger *zap.Logger
}

func NewExperienceHandler(svc *service.ExperienceService, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{svc: svc, logger: logger}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list experiences", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch experiences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": experiences})
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	experience, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
			return
		}
		h.logger.Error("Failed to fetch experience",
			zap.Int64("experience_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch experience"})
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var e model.Experience
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience payload"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), &e)
	if err != nil {
		h.logger.Error("Failed to create experience", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create experience"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "experience": e})
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	var upd model.ExperienceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid experience payload"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, &upd); err != nil {
		h.logger.Error("Failed to update experience",
			zap.Int64("experience_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update experience"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("Failed to delete experience",
			zap.Int64("experience_id", id),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete experience"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// recordID parses the :id path parameter, writing the 400 itself.
func recordID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// notFound reports whether err means the record does not exist.
func notFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
