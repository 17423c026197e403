package model

import "time"

// Project statuses are wire-contract tokens, same caveat as contact statuses.
const (
	ProjectStatusActive     = "active"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusCompleted  = "completed"
)

const maxTitleLen = 200

// Project is a portfolio entry authored from the admin dashboard.
// Technologies keeps its insertion order; that order is the display order.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Image        string    `json:"image,omitempty"` // data URI or served URL
	Technologies []string  `json:"technologies"`
	Link         string    `json:"link,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ApplyDefaults fills fields the authoring form is allowed to omit.
func (p *Project) ApplyDefaults() {
	if p.Status == "" {
		p.Status = ProjectStatusActive
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
}

// Validate checks every constraint and returns a *ValidationError listing all
// violations, or nil if the project is valid.
func (p *Project) Validate() error {
	var v violations
	v.required("title", p.Title, "Please provide a project title")
	v.maxLen("title", p.Title, maxTitleLen)
	v.required("description", p.Description, "Please provide a project description")
	v.required("category", p.Category, "Please provide a project category")
	v.enum("status", p.Status, ProjectStatusActive, ProjectStatusInProgress, ProjectStatusCompleted)
	return v.err()
}
