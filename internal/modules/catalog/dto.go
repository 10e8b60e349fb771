package catalog

type CustomerRequest struct {
	FullName     string `json:"full_name" binding:"required,max=250"`
	TaxID        string `json:"tax_id" binding:"required,max=20"`
	MobilePhone  string `json:"mobile_phone" binding:"required,max=50"`
	HomePhone    string `json:"home_phone"`
	Email        string `json:"email"`
	Street       string `json:"street"`
	ExteriorNo   string `json:"exterior_no"`
	Neighborhood string `json:"neighborhood"`
	Municipality string `json:"municipality"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
}

type VehicleRequest struct {
	CustomerID int64  `json:"customer_id" binding:"required"`
	VIN        string `json:"vin" binding:"required,max=50"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Version    string `json:"version"`
	Year       *int   `json:"year"`
	Color      string `json:"color"`
	Plates     string `json:"plates"`
	InitialKm  int    `json:"initial_km"`
}

type ServiceTypeRequest struct {
	Name        string  `json:"name" binding:"required,max=150"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"gte=0"`
}
