package mq

import "time"

const (
	RoutingKeyTestimonialSubmitted = "testimonial.submitted"
	RoutingKeyTestimonialApproved  = "testimonial.approved"
)

// TestimonialSubmittedPayload is published when a visitor submits a
// testimonial through the public form.
type TestimonialSubmittedPayload struct {
	TestimonialID int64     `json:"testimonial_id"`
	Name          string    `json:"name"`
	Company       string    `json:"company"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// TestimonialApprovedPayload is published when an admin approves a
// pending testimonial.
type TestimonialApprovedPayload struct {
	TestimonialID int64     `json:"testimonial_id"`
	Name          string    `json:"name"`
	ApprovedAt    time.Time `json:"approved_at"`
}
