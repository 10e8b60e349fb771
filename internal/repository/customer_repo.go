package repository

import (
	"context"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID           int64   `gorm:"column:id;primaryKey"`
	FullName     string  `gorm:"column:full_name;size:250;index"`
	TaxID        string  `gorm:"column:tax_id;size:20"`
	MobilePhone  string  `gorm:"column:mobile_phone;size:50"`
	HomePhone    *string `gorm:"column:home_phone;size:50"`
	Email        *string `gorm:"column:email;size:150"`
	Street       *string `gorm:"column:street;size:150"`
	ExteriorNo   *string `gorm:"column:exterior_no;size:50"`
	Neighborhood *string `gorm:"column:neighborhood;size:150"`
	Municipality *string `gorm:"column:municipality;size:150"`
	State        *string `gorm:"column:state;size:150"`
	Country      *string `gorm:"column:country;size:100"`
	PostalCode   *string `gorm:"column:postal_code;size:20"`
	Active       bool    `gorm:"column:active"`
}

func (customerModel) TableName() string { return "customers" }

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:           m.ID,
		FullName:     m.FullName,
		TaxID:        m.TaxID,
		MobilePhone:  m.MobilePhone,
		HomePhone:    strOrEmpty(m.HomePhone),
		Email:        strOrEmpty(m.Email),
		Street:       strOrEmpty(m.Street),
		ExteriorNo:   strOrEmpty(m.ExteriorNo),
		Neighborhood: strOrEmpty(m.Neighborhood),
		Municipality: strOrEmpty(m.Municipality),
		State:        strOrEmpty(m.State),
		Country:      strOrEmpty(m.Country),
		PostalCode:   strOrEmpty(m.PostalCode),
		Active:       m.Active,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	return customerModel{
		ID:           c.ID,
		FullName:     c.FullName,
		TaxID:        c.TaxID,
		MobilePhone:  c.MobilePhone,
		HomePhone:    strOrNil(c.HomePhone),
		Email:        strOrNil(c.Email),
		Street:       strOrNil(c.Street),
		ExteriorNo:   strOrNil(c.ExteriorNo),
		Neighborhood: strOrNil(c.Neighborhood),
		Municipality: strOrNil(c.Municipality),
		State:        strOrNil(c.State),
		Country:      strOrNil(c.Country),
		PostalCode:   strOrNil(c.PostalCode),
		Active:       c.Active,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *CustomerRepository) Deactivate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&customerModel{}).Where("id = ?", id).Update("active", false).Error
}

func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	var rows []customerModel
	tx := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("full_name").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

// SearchByName does a case-insensitive substring match, capped for the
// unified search view.
func (r *CustomerRepository) SearchByName(ctx context.Context, name string, limit int) ([]domain.Customer, error) {
	var rows []customerModel
	tx := r.db.WithContext(ctx).
		Where("active = ? AND UPPER(full_name) LIKE ?", true, "%"+name+"%").
		Order("full_name").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}
