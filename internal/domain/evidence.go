package domain

import "time"

// EvidenceCategory distinguishes reception-time photos from work photos.
type EvidenceCategory string

const (
	EvidenceReception EvidenceCategory = "reception"
	EvidenceWork      EvidenceCategory = "work"
)

type Evidence struct {
	ID          int64     `json:"id"`
	OrderID     int64     `json:"order_id"`
	FilePath    string    `json:"file_path"`
	Description string    `json:"description"`
	IsWork      bool      `json:"is_work"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
