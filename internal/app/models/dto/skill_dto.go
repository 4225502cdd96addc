package dto

// CreateSkillRequest carries a new skill catalog entry
type CreateSkillRequest struct {
	Name string `json:"name" binding:"required" example:"Go"`
}

// UpdateSkillRequest renames an existing skill
type UpdateSkillRequest struct {
	Name string `json:"name" binding:"required" example:"Golang"`
}

// SkillNamesRequest carries a list of skill names for bulk attach/detach
type SkillNamesRequest struct {
	Skills []string `json:"skills" binding:"required,min=1" example:"Go,PostgreSQL"`
}

// UpdateCalendlyLinkRequest replaces a mentor's scheduling link
type UpdateCalendlyLinkRequest struct {
	CalendlyLink string `json:"calendlyLink" binding:"required" example:"https://calendly.com/ravi"`
}
