package domain

type Customer struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name" validate:"required,max=250"`
	TaxID        string `json:"tax_id" validate:"required,max=20"`
	MobilePhone  string `json:"mobile_phone" validate:"required,max=50"`
	HomePhone    string `json:"home_phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Street       string `json:"street,omitempty"`
	ExteriorNo   string `json:"exterior_no,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Active       bool   `json:"active"`
}

type Vehicle struct {
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customer_id" validate:"required"`
	VIN          string `json:"vin" validate:"required,max=50"`
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Version      string `json:"version,omitempty"`
	Year         *int   `json:"year,omitempty"`
	Color        string `json:"color,omitempty"`
	Plates       string `json:"plates,omitempty"`
	InitialKm    int    `json:"initial_km"`
	Active       bool   `json:"active"`

	Customer *Customer `json:"customer,omitempty"`
}

type ServiceType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,max=150"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"`
	Active      bool    `json:"active"`
}
