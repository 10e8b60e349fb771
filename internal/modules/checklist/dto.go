package checklist

import "carsline/internal/domain"

// SubmitRequest carries the full inspection form plus the technician's
// closing comments.
type SubmitRequest struct {
	Checklist    domain.Checklist `json:"checklist" binding:"required"`
	TechComments string           `json:"tech_comments"`
}
