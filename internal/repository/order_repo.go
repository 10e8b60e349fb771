package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	OrderNumber      string     `gorm:"column:order_number;uniqueIndex;size:50"`
	TypeID           int64      `gorm:"column:type_id;index"`
	CustomerID       int64      `gorm:"column:customer_id;index"`
	VehicleID        int64      `gorm:"column:vehicle_id;index"`
	AdvisorID        int64      `gorm:"column:advisor_id;index"`
	ServiceTypeID    *int64     `gorm:"column:service_type_id"`
	CurrentKm        int        `gorm:"column:current_km"`
	PromisedDelivery time.Time  `gorm:"column:promised_delivery"`
	ProcessStartedAt *time.Time `gorm:"column:process_started_at"`
	FinishedAt       *time.Time `gorm:"column:finished_at"`
	DeliveredAt      *time.Time `gorm:"column:delivered_at"`
	AdvisorComments  *string    `gorm:"column:advisor_comments;type:text"`
	ForemanComments  *string    `gorm:"column:foreman_comments;type:text"`
	TotalCost        float64    `gorm:"column:total_cost"`
	TotalJobs        int        `gorm:"column:total_jobs"`
	CompletedJobs    int        `gorm:"column:completed_jobs"`
	Progress         float64    `gorm:"column:progress"`
	Status           int        `gorm:"column:status"`
	Active           bool       `gorm:"column:active"`
	HasEvidence      bool       `gorm:"column:has_evidence"`
	CreatedAt        time.Time  `gorm:"column:created_at"`

	Jobs        []jobModel        `gorm:"foreignKey:OrderID"`
	Customer    *customerModel    `gorm:"foreignKey:CustomerID"`
	Vehicle     *vehicleModel     `gorm:"foreignKey:VehicleID"`
	Advisor     *userModel        `gorm:"foreignKey:AdvisorID"`
	ServiceType *serviceTypeModel `gorm:"foreignKey:ServiceTypeID"`
}

func (orderModel) TableName() string { return "orders" }

func toDomainOrder(m orderModel) *domain.Order {
	o := &domain.Order{
		ID:               m.ID,
		OrderNumber:      m.OrderNumber,
		TypeID:           m.TypeID,
		CustomerID:       m.CustomerID,
		VehicleID:        m.VehicleID,
		AdvisorID:        m.AdvisorID,
		ServiceTypeID:    m.ServiceTypeID,
		CurrentKm:        m.CurrentKm,
		PromisedDelivery: m.PromisedDelivery,
		ProcessStartedAt: m.ProcessStartedAt,
		FinishedAt:       m.FinishedAt,
		DeliveredAt:      m.DeliveredAt,
		AdvisorComments:  strOrEmpty(m.AdvisorComments),
		ForemanComments:  strOrEmpty(m.ForemanComments),
		TotalCost:        m.TotalCost,
		TotalJobs:        m.TotalJobs,
		CompletedJobs:    m.CompletedJobs,
		Progress:         m.Progress,
		Status:           domain.OrderStatus(m.Status),
		Active:           m.Active,
		HasEvidence:      m.HasEvidence,
		CreatedAt:        m.CreatedAt,
	}
	for _, jm := range m.Jobs {
		o.Jobs = append(o.Jobs, *toDomainJob(jm))
	}
	if m.Customer != nil {
		o.Customer = toDomainCustomer(*m.Customer)
	}
	if m.Vehicle != nil {
		o.Vehicle = toDomainVehicle(*m.Vehicle)
	}
	if m.Advisor != nil {
		o.Advisor = toDomainUser(*m.Advisor)
	}
	if m.ServiceType != nil {
		o.ServiceType = toDomainServiceType(*m.ServiceType)
	}
	return o
}

// NextOrderNumber scans existing numbers sharing the prefix and returns
// prefix-NNNNNN with the next sequence value. Callers must run it inside the
// same transaction as the insert; the unique index on order_number is the
// backstop against concurrent creations racing on the scan.
func nextOrderNumber(tx *gorm.DB, prefix string) (string, error) {
	var numbers []string
	if err := tx.Model(&orderModel{}).
		Where("order_number LIKE ?", prefix+"-%").
		Pluck("order_number", &numbers).Error; err != nil {
		return "", err
	}

	next := 1
	for _, n := range numbers {
		parts := strings.SplitN(n, "-", 2)
		if len(parts) < 2 {
			continue
		}
		if v, err := strconv.Atoi(parts[1]); err == nil && v >= next {
			next = v + 1
		}
	}

	return fmt.Sprintf("%s-%06d", prefix, next), nil
}

// CreateWithJobs atomically claims the next order number of the order type's
// prefix and persists the order together with its initial jobs. A duplicate
// order number surfaces as the driver's unique-violation error so the caller
// can retry.
func (r *OrderRepository) CreateWithJobs(ctx context.Context, o *domain.Order, jobs []domain.Job) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextOrderNumber(tx, domain.OrderPrefix(o.TypeID))
		if err != nil {
			return err
		}

		now := time.Now()
		m := orderModel{
			OrderNumber:      number,
			TypeID:           o.TypeID,
			CustomerID:       o.CustomerID,
			VehicleID:        o.VehicleID,
			AdvisorID:        o.AdvisorID,
			ServiceTypeID:    o.ServiceTypeID,
			CurrentKm:        o.CurrentKm,
			PromisedDelivery: o.PromisedDelivery,
			AdvisorComments:  strOrNil(o.AdvisorComments),
			Status:           int(domain.OrderPending),
			TotalJobs:        len(jobs),
			Active:           true,
			CreatedAt:        now,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		for i := range jobs {
			jm := jobModel{
				OrderID:      m.ID,
				Description:  jobs[i].Description,
				Instructions: strOrNil(jobs[i].Instructions),
				Status:       int(domain.JobPending),
				Active:       true,
				CreatedAt:    now,
			}
			if err := tx.Create(&jm).Error; err != nil {
				return err
			}
			jobs[i].ID = jm.ID
			jobs[i].OrderID = m.ID
			jobs[i].Status = domain.JobPending
		}

		o.ID = m.ID
		o.OrderNumber = number
		o.Status = domain.OrderPending
		o.TotalJobs = len(jobs)
		o.Active = true
		o.CreatedAt = now
		return nil
	})
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var m orderModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainOrder(m), nil
}

// GetDetail loads the order with customer, vehicle, advisor and its active
// jobs (with technician names).
func (r *OrderRepository) GetDetail(ctx context.Context, id int64) (*domain.Order, error) {
	var m orderModel
	err := r.db.WithContext(ctx).
		Preload("Jobs", "active = ?", true).
		Preload("Jobs.Technician").
		Preload("Customer").
		Preload("Vehicle").
		Preload("Advisor").
		Where("id = ? AND active = ?", id, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainOrder(m), nil
}

// ListOpen returns active orders of a type still on the shop floor
// (Pending, InProcess or Finished), soonest promise first. advisorID filters
// to one advisor's orders; zero means all (the foreman view).
func (r *OrderRepository) ListOpen(ctx context.Context, typeID, advisorID int64) ([]domain.Order, error) {
	q := r.db.WithContext(ctx).
		Preload("Jobs", "active = ?", true).
		Preload("Jobs.Technician").
		Preload("Customer").
		Preload("Vehicle").
		Preload("ServiceType").
		Where("type_id = ? AND active = ? AND status IN ?",
			typeID, true,
			[]int{int(domain.OrderPending), int(domain.OrderInProcess), int(domain.OrderFinished)})
	if advisorID != 0 {
		q = q.Where("advisor_id = ?", advisorID)
	}

	var rows []orderModel
	if err := q.Order("promised_delivery").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

// Deliver marks the order delivered if every active job is completed.
// Returns the count of outstanding jobs; a non-zero count means nothing
// changed.
func (r *OrderRepository) Deliver(ctx context.Context, id int64) (int, error) {
	outstanding := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m orderModel
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}

		var n int64
		if err := tx.Model(&jobModel{}).
			Where("order_id = ? AND active = ? AND status <> ?", id, true, int(domain.JobCompleted)).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			outstanding = int(n)
			return nil
		}

		now := time.Now()
		return tx.Model(&orderModel{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":       int(domain.OrderDelivered),
				"delivered_at": now,
			}).Error
	})
	return outstanding, err
}

// Cancel deactivates the order and force-cancels its still-pending jobs.
// Jobs already assigned, in process or completed are left untouched.
func (r *OrderRepository) Cancel(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m orderModel
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&orderModel{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"status": int(domain.OrderCancelled),
				"active": false,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&jobModel{}).
			Where("order_id = ? AND active = ? AND status = ?", id, true, int(domain.JobPending)).
			Update("status", int(domain.JobCancelled)).Error
	})
}

// MarkInProcess moves a pending order onto the shop floor the first time one
// of its jobs starts. A no-op for orders already past Pending.
func (r *OrderRepository) MarkInProcess(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&orderModel{}).
		Where("id = ? AND status = ?", id, int(domain.OrderPending)).
		Updates(map[string]interface{}{
			"status":             int(domain.OrderInProcess),
			"process_started_at": now,
		}).Error
}

// RecalculateProgress refreshes job counters and the progress percentage in
// its own transaction (used after job completion).
func (r *OrderRepository) RecalculateProgress(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return recalcOrderProgress(tx, orderID)
	})
}

// SearchByNumber matches active orders by number substring, newest first.
func (r *OrderRepository) SearchByNumber(ctx context.Context, number string, limit int) ([]domain.Order, error) {
	var rows []orderModel
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Where("active = ? AND order_number LIKE ?", true, "%"+strings.ToUpper(number)+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

// HistoryByVehicle returns delivered service orders for a vehicle created
// after the cutoff, newest first.
func (r *OrderRepository) HistoryByVehicle(ctx context.Context, vehicleID int64, since time.Time) ([]domain.Order, error) {
	var rows []orderModel
	err := r.db.WithContext(ctx).
		Preload("ServiceType").
		Where("vehicle_id = ? AND active = ? AND type_id = ? AND status = ? AND created_at >= ?",
			vehicleID, true, domain.OrderTypeService, int(domain.OrderDelivered), since).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

// AllHistoryByVehicle returns every active order of a vehicle created after
// the cutoff, any type or status, newest first.
func (r *OrderRepository) AllHistoryByVehicle(ctx context.Context, vehicleID int64, since time.Time) ([]domain.Order, error) {
	var rows []orderModel
	err := r.db.WithContext(ctx).
		Preload("ServiceType").
		Where("vehicle_id = ? AND active = ? AND created_at >= ?", vehicleID, true, since).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}
