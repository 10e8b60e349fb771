package repository

import (
	"context"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type ServiceTypeRepository struct {
	db *gorm.DB
}

func NewServiceTypeRepository(db *gorm.DB) *ServiceTypeRepository {
	return &ServiceTypeRepository{db: db}
}

type serviceTypeModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;size:150"`
	Description *string `gorm:"column:description;size:500"`
	BasePrice   float64 `gorm:"column:base_price"`
	Active      bool    `gorm:"column:active"`
}

func (serviceTypeModel) TableName() string { return "service_types" }

func toDomainServiceType(m serviceTypeModel) *domain.ServiceType {
	return &domain.ServiceType{
		ID:          m.ID,
		Name:        m.Name,
		Description: strOrEmpty(m.Description),
		BasePrice:   m.BasePrice,
		Active:      m.Active,
	}
}

func (r *ServiceTypeRepository) Create(ctx context.Context, st *domain.ServiceType) error {
	m := serviceTypeModel{
		Name:        st.Name,
		Description: strOrNil(st.Description),
		BasePrice:   st.BasePrice,
		Active:      st.Active,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	st.ID = m.ID
	return nil
}

func (r *ServiceTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceType, error) {
	var m serviceTypeModel
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainServiceType(m), nil
}

func (r *ServiceTypeRepository) List(ctx context.Context) ([]domain.ServiceType, error) {
	var rows []serviceTypeModel
	tx := r.db.WithContext(ctx).Where("active = ?", true).Order("name").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.ServiceType, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainServiceType(m))
	}
	return out, nil
}
