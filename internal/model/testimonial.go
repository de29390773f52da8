package model

import "time"

// Testimonial statuses. The only transition is pending -> approved,
// triggered by an explicit approve; there is no way back.
const (
	TestimonialStatusPending  = "pending"
	TestimonialStatusApproved = "approved"
)

// Testimonial is a visitor-submitted quote. Status and CreatedAt are
// stamped server-side on create regardless of what the caller sends.
type Testimonial struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Company     string    `json:"company"`
	Text        string    `json:"text"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ValidTestimonialStatus reports whether s is a known status value.
func ValidTestimonialStatus(s string) bool {
	return s == TestimonialStatusPending || s == TestimonialStatusApproved
}
