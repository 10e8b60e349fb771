package domain

import "time"

// PartLine is one part charged against a job.
type PartLine struct {
	ID        int64   `json:"id"`
	JobID     int64   `json:"job_id"`
	OrderID   int64   `json:"order_id"`
	Name      string  `json:"name" validate:"required,max=250"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"required,gte=0"`
}

// Total is the extended line amount.
func (p PartLine) Total() float64 {
	return float64(p.Quantity) * p.UnitPrice
}

// Part is a stocked inventory item, independent of any order.
type Part struct {
	ID         int64     `json:"id"`
	PartNumber string    `json:"part_number" validate:"required,max=50"`
	Type       string    `json:"type" validate:"required,max=100"`
	Location   string    `json:"location,omitempty"`
	Make       string    `json:"make,omitempty"`
	Model      string    `json:"model,omitempty"`
	Year       *int      `json:"year,omitempty"`
	Quantity   int       `json:"quantity"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
