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

type TestimonialApprovedHandler struct {
	repo    NotificationInserter
	deduper *util.Deduper
	retries *util.RetryCounter
	logger  *zap.Logger
}

func NewTestimonialApprovedHandler(
	repo NotificationInserter,
	deduper *util.Deduper,
	retries *util.RetryCounter,
	logger *zap.Logger,
) *TestimonialApprovedHandler {
	return &TestimonialApprovedHandler{
		repo:    repo,
		deduper: deduper,
		retries: retries,
		logger:  logger,
	}
}

func (h *TestimonialApprovedHandler) Handle(ctx context.Context, raw json.RawMessage) error {
	var p mqcontracts.TestimonialApprovedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal TestimonialApprovedPayload", zap.Error(err))
		return nil
	}

	if !h.deduper.AcquireOnce(ctx, "testimonial_approved", p.TestimonialID) {
		return nil
	}

	h.logger.Info("Handling testimonial.approved event",
		zap.Int64("testimonial_id", p.TestimonialID),
	)

	message := fmt.Sprintf("Testimonial #%d is now live on the site", p.TestimonialID)
	if p.Name != "" {
		message = fmt.Sprintf("Testimonial from %s is now live on the site", p.Name)
	}

	if _, err := h.repo.Insert(ctx, model.NotificationTestimonialApproved, message); err != nil {
		retryable, errType := util.IsRetryableError(err)
		if !retryable {
			h.logger.Error("Dropping event after permanent failure",
				zap.Int64("testimonial_id", p.TestimonialID),
				zap.String("error_type", errType),
				zap.Error(err),
			)
			return nil
		}
		count, cerr := h.retries.IncrementAndGet(ctx, util.FormatRetryKey("testimonial_approved", p.TestimonialID))
		if cerr == nil && count > maxHandlerRetries {
			h.logger.Error("Dropping event after retry cap",
				zap.Int64("testimonial_id", p.TestimonialID),
				zap.Int64("retries", count),
				zap.Error(err),
			)
			return nil
		}
		return err
	}
	return nil
}
