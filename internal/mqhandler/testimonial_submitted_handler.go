package mqhandler

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	mqcontracts "portfolio-admin/contracts/mq"
	"portfolio-admin/internal/model"
	"portfolio-admin/pkg/util"
)

const maxHandlerRetries = 5

// NotificationInserter is the slice of the notification repository the
// MQ handlers need.
type NotificationInserter interface {
	Insert(ctx context.Context, kind, message string) (int64, error)
}

type TestimonialSubmittedHandler struct {
	repo    NotificationInserter
	deduper *util.Deduper
	retries *util.RetryCounter
	logger  *zap.Logger
}

func NewTestimonialSubmittedHandler(
	repo NotificationInserter,
	deduper *util.Deduper,
	retries *util.RetryCounter,
	logger *zap.Logger,
) *TestimonialSubmittedHandler {
	return &TestimonialSubmittedHandler{
		repo:    repo,
		deduper: deduper,
		retries: retries,
		logger:  logger,
	}
}

func (h *TestimonialSubmittedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	var p mqcontracts.TestimonialSubmittedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal TestimonialSubmittedPayload", zap.Error(err))
		// Malformed payload: drop, a redelivery cannot fix it.
		return nil
	}

	if !h.deduper.AcquireOnce(ctx, "testimonial_submitted", p.TestimonialID) {
		return nil
	}

	h.logger.Info("Handling testimonial.submitted event",
		zap.Int64("testimonial_id", p.TestimonialID),
		zap.String("name", p.Name),
	)

	message := fmt.Sprintf("New testimonial from %s awaiting review", p.Name)
	if p.Company != "" {
		message = fmt.Sprintf("New testimonial from %s (%s) awaiting review", p.Name, p.Company)
	}

	if _, err := h.repo.Insert(ctx, model.NotificationTestimonialSubmitted, message); err != nil {
		return h.classify(ctx, "testimonial_submitted", p.TestimonialID, err)
	}
	return nil
}

// classify decides between requeue (transient failure, below the retry
// cap) and drop (permanent failure or cap exhausted).
func (h *TestimonialSubmittedHandler) classify(ctx context.Context, handler string, id int64, err error) error {
	retryable, errType := util.IsRetryableError(err)
	if !retryable {
		h.logger.Error("Dropping event after permanent failure",
			zap.String("handler", handler),
			zap.Int64("testimonial_id", id),
			zap.String("error_type", errType),
			zap.Error(err),
		)
		return nil
	}

	count, cerr := h.retries.IncrementAndGet(ctx, util.FormatRetryKey(handler, id))
	if cerr == nil && count > maxHandlerRetries {
		h.logger.Error("Dropping event after retry cap",
			zap.String("handler", handler),
			zap.Int64("testimonial_id", id),
			zap.Int64("retries", count),
			zap.Error(err),
		)
		return nil
	}
	return err
}
