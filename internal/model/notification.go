package model

import "time"

// Notification kinds.
const (
	NotificationTestimonialSubmitted = "testimonial_submitted"
	NotificationTestimonialApproved  = "testimonial_approved"
)

// Notification is one entry of the admin activity feed, written by the
// MQ consumer when testimonial events fire.
type Notification struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
