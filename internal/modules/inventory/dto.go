package inventory

type CreatePartRequest struct {
	PartNumber string `json:"part_number" binding:"required,max=50"`
	Type       string `json:"type" binding:"required,max=100"`
	Location   string `json:"location"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       *int   `json:"year"`
	Quantity   int    `json:"quantity" binding:"gte=0"`
}

type AdjustQuantityRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}
