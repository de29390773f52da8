package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"portfolio-admin/internal/handler"
	"portfolio-admin/internal/service/auth"
)

type Router struct {
	Engine *gin.Engine
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Experience   *handler.ExperienceHandler
	Project      *handler.ProjectHandler
	Testimonial  *handler.TestimonialHandler
	Upload       *handler.UploadHandler
	Stats        *handler.StatsHandler
	Notification *handler.NotificationHandler
}

// Readiness is anything the readyz probe should check beyond the database.
type Readiness interface {
	IsConnected() bool
}

func NewRouter(
	h Handlers,
	authSvc *auth.Service,
	jwtSecret string,
	db *pgxpool.Pool,
	consumers []Readiness,
	logger *zap.Logger,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(TraceMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(MetricsMiddleware())

	// Health endpoints first, before any auth.
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}
		for _, consumer := range consumers {
			if !consumer.IsConnected() {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "mq_not_ready"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/login", h.Auth.Login)
	r.POST("/testimonials/submit", h.Testimonial.Submit)

	// Protected
	admin := r.Group("/")
	admin.Use(AuthMiddleware(jwtSecret, authSvc))
	{
		admin.GET("/me", h.Auth.Me)
		admin.POST("/logout", h.Auth.Logout)

		admin.GET("/experiences", h.Experience.List)
		admin.GET("/experiences/:id", h.Experience.Get)
		admin.POST("/experiences", h.Experience.Create)
		admin.PUT("/experiences/:id", h.Experience.Update)
		admin.DELETE("/experiences/:id", h.Experience.Delete)

		admin.GET("/projects", h.Project.List)
		admin.GET("/projects/:id", h.Project.Get)
		admin.POST("/projects", h.Project.Create)
		admin.PUT("/projects/:id", h.Project.Update)
		admin.DELETE("/projects/:id", h.Project.Delete)

		admin.GET("/testimonials", h.Testimonial.List)
		admin.GET("/testimonials/:id", h.Testimonial.Get)
		admin.POST("/testimonials", h.Testimonial.Create)
		admin.PUT("/testimonials/:id", h.Testimonial.Update)
		admin.POST("/testimonials/:id/approve", h.Testimonial.Approve)
		admin.DELETE("/testimonials/:id", h.Testimonial.Delete)

		admin.POST("/uploads", h.Upload.Upload)

		admin.GET("/dashboard/stats", h.Stats.Stats)

		admin.GET("/notifications", h.Notification.List)
		admin.POST("/notifications/:id/read", h.Notification.MarkRead)
	}

	return &Router{Engine: r}
}
