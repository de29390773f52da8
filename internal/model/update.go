package model

// Update payloads use pointer fields so handlers can tell "absent" from
// "set to zero": only supplied fields are written, arrays replace
// wholesale. This mirrors the merge behavior edit forms rely on.

type ExperienceUpdate struct {
	Title       *string   `json:"title"`
	CompanyName *string   `json:"company_name"`
	StartDate   *string   `json:"startDate"`
	EndDate     *string   `json:"endDate"`
	IconBg      *string   `json:"iconBg"`
	Icon        *string   `json:"icon"`
	Points      *[]string `json:"points"`
}

type ProjectUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	LiveURL     *string `json:"liveUrl"`
	SourceURL   *string `json:"sourceUrl"`
	Tags        *[]Tag  `json:"tags"`
}

// TestimonialUpdate deliberately has no status field: the only status
// transition is the explicit approve operation.
type TestimonialUpdate struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Company     *string `json:"company"`
	Text        *string `json:"text"`
	PhotoURL    *string `json:"photoUrl"`
}
