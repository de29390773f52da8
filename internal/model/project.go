package model

import (
	"strings"
	"time"
)

// Tag labels a project on the public site.
type Tag struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Project is one portfolio project card. CreatedAt is stamped
// server-side on create and never updated.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	Tags        []Tag     `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SanitizeTags drops tags with a blank name before persistence.
func (p *Project) SanitizeTags() {
	tags := make([]Tag, 0, len(p.Tags))
	for _, t := range p.Tags {
		if strings.TrimSpace(t.Name) != "" {
			tags = append(tags, t)
		}
	}
	p.Tags = tags
}
