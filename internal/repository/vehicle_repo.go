package repository

import (
	"context"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID         int64   `gorm:"column:id;primaryKey"`
	CustomerID int64   `gorm:"column:customer_id;index"`
	VIN        string  `gorm:"column:vin;uniqueIndex;size:50"`
	Make       *string `gorm:"column:make;size:100"`
	Model      *string `gorm:"column:model;size:100"`
	Version    *string `gorm:"column:version;size:100"`
	Year       *int    `gorm:"column:year"`
	Color      *string `gorm:"column:color;size:50"`
	Plates     *string `gorm:"column:plates;size:20"`
	InitialKm  int     `gorm:"column:initial_km"`
	Active     bool    `gorm:"column:active"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		VIN:        m.VIN,
		Make:       strOrEmpty(m.Make),
		Model:      strOrEmpty(m.Model),
		Version:    strOrEmpty(m.Version),
		Year:       m.Year,
		Color:      strOrEmpty(m.Color),
		Plates:     strOrEmpty(m.Plates),
		InitialKm:  m.InitialKm,
		Active:     m.Active,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		VIN:        v.VIN,
		Make:       strOrNil(v.Make),
		Model:      strOrNil(v.Model),
		Version:    strOrNil(v.Version),
		Year:       v.Year,
		Color:      strOrNil(v.Color),
		Plates:     strOrNil(v.Plates),
		InitialKm:  v.InitialKm,
		Active:     v.Active,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	v.ID = m.ID
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Vehicle, error) {
	var rows []vehicleModel
	tx := r.db.WithContext(ctx).
		Where("customer_id = ? AND active = ?", customerID, true).
		Order("id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

// SearchByVINSuffix matches the last characters of the VIN and preloads the
// owning customer, which the search view displays.
func (r *VehicleRepository) SearchByVINSuffix(ctx context.Context, suffix string, limit int) ([]domain.Vehicle, error) {
	var rows []vehicleModel
	tx := r.db.WithContext(ctx).
		Where("active = ? AND UPPER(vin) LIKE ?", true, "%"+suffix).
		Order("make").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		v := toDomainVehicle(m)
		var cm customerModel
		if err := r.db.WithContext(ctx).First(&cm, m.CustomerID).Error; err == nil {
			v.Customer = toDomainCustomer(cm)
		}
		out = append(out, *v)
	}
	return out, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *VehicleRepository) Deactivate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&vehicleModel{}).Where("id = ?", id).Update("active", false).Error
}
