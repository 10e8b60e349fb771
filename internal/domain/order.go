package domain

import "time"

type OrderStatus int

const (
	OrderPending   OrderStatus = 1
	OrderInProcess OrderStatus = 2
	OrderFinished  OrderStatus = 3
	OrderDelivered OrderStatus = 4
	OrderCancelled OrderStatus = 5
)

// Order type ids map to the three-letter prefix of the order number.
const (
	OrderTypeService    int64 = 1 // SRV
	OrderTypeDiagnostic int64 = 2 // DIA
	OrderTypeRepair     int64 = 3 // REP
	OrderTypeWarranty   int64 = 4 // GAR
	OrderTypeRework     int64 = 5 // RTO
)

// OrderPrefix returns the order-number prefix for a type id.
func OrderPrefix(typeID int64) string {
	switch typeID {
	case OrderTypeService:
		return "SRV"
	case OrderTypeDiagnostic:
		return "DIA"
	case OrderTypeRepair:
		return "REP"
	case OrderTypeWarranty:
		return "GAR"
	case OrderTypeRework:
		return "RTO"
	default:
		return "ORD"
	}
}

type Order struct {
	ID                 int64       `json:"id"`
	OrderNumber        string      `json:"order_number"`
	TypeID             int64       `json:"type_id" validate:"required"`
	CustomerID         int64       `json:"customer_id" validate:"required"`
	VehicleID          int64       `json:"vehicle_id" validate:"required"`
	AdvisorID          int64       `json:"advisor_id"`
	ServiceTypeID      *int64      `json:"service_type_id,omitempty"`
	CurrentKm          int         `json:"current_km"`
	PromisedDelivery   time.Time   `json:"promised_delivery"`
	ProcessStartedAt   *time.Time  `json:"process_started_at,omitempty"`
	FinishedAt         *time.Time  `json:"finished_at,omitempty"`
	DeliveredAt        *time.Time  `json:"delivered_at,omitempty"`
	AdvisorComments    string      `json:"advisor_comments,omitempty"`
	ForemanComments    string      `json:"foreman_comments,omitempty"`
	TotalCost          float64     `json:"total_cost"`
	TotalJobs          int         `json:"total_jobs"`
	CompletedJobs      int         `json:"completed_jobs"`
	Progress           float64     `json:"progress"`
	Status             OrderStatus `json:"status"`
	Active             bool        `json:"active"`
	HasEvidence        bool        `json:"has_evidence"`
	CreatedAt          time.Time   `json:"created_at"`

	Jobs        []Job        `json:"jobs,omitempty"`
	Customer    *Customer    `json:"customer,omitempty"`
	Vehicle     *Vehicle     `json:"vehicle,omitempty"`
	Advisor     *User        `json:"advisor,omitempty"`
	ServiceType *ServiceType `json:"service_type,omitempty"`
}

// IsOpen reports whether the order still appears on work queues.
func (o *Order) IsOpen() bool {
	return o.Status == OrderPending || o.Status == OrderInProcess || o.Status == OrderFinished
}
