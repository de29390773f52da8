package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTagsDropsBlankNames(t *testing.T) {
	p := Project{
		Tags: []Tag{
			{Name: "go", Color: "blue-text-gradient"},
			{Name: "", Color: "green-text-gradient"},
			{Name: "  ", Color: "pink-text-gradient"},
			{Name: "postgres"},
		},
	}
	p.SanitizeTags()

	assert.Equal(t, []Tag{
		{Name: "go", Color: "blue-text-gradient"},
		{Name: "postgres"},
	}, p.Tags)
}

func TestValidTestimonialStatus(t *testing.T) {
	assert.True(t, ValidTestimonialStatus(TestimonialStatusPending))
	assert.True(t, ValidTestimonialStatus(TestimonialStatusApproved))
	assert.False(t, ValidTestimonialStatus("rejected"))
	assert.False(t, ValidTestimonialStatus(""))
}
