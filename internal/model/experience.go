package model

import "strings"

// Experience is one entry of the work history timeline. EndDate empty
// means "current position". Dates are kept as the form's string values
// (YYYY-MM) rather than timestamps; ordering happens lexically in SQL.
type Experience struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	IconBg      string   `json:"iconBg"`
	Icon        string   `json:"icon"`
	Points      []string `json:"points"`
}

// SanitizePoints drops blank bullet points before persistence.
func (e *Experience) SanitizePoints() {
	points := make([]string, 0, len(e.Points))
	for _, p := range e.Points {
		if strings.TrimSpace(p) != "" {
			points = append(points, p)
		}
	}
	e.Points = points
}
