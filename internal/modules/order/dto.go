package order

import "time"

type JobInput struct {
	Description  string `json:"description" binding:"required,max=1000"`
	Instructions string `json:"instructions"`
}

type CreateOrderRequest struct {
	TypeID           int64      `json:"type_id" binding:"required"`
	CustomerID       int64      `json:"customer_id" binding:"required"`
	VehicleID        int64      `json:"vehicle_id" binding:"required"`
	ServiceTypeID    *int64     `json:"service_type_id"`
	CurrentKm        int        `json:"current_km"`
	PromisedDelivery time.Time  `json:"promised_delivery" binding:"required"`
	AdvisorComments  string     `json:"advisor_comments"`
	Jobs             []JobInput `json:"jobs" binding:"required,min=1,dive"`
}
