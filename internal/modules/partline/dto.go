package partline

type LineInput struct {
	Name      string  `json:"name" binding:"required,max=250"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
}

type AddLinesRequest struct {
	Lines []LineInput `json:"lines" binding:"required,min=1,dive"`
}
