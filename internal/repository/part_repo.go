package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a decrease would take a part's
// quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

type partModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PartNumber string    `gorm:"column:part_number;size:50;uniqueIndex"`
	Type       string    `gorm:"column:type;size:100"`
	Location   *string   `gorm:"column:location;size:100"`
	Make       *string   `gorm:"column:make;size:100"`
	Model      *string   `gorm:"column:model;size:100"`
	Year       *int      `gorm:"column:year"`
	Quantity   int       `gorm:"column:quantity"`
	Active     bool      `gorm:"column:active"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (partModel) TableName() string { return "parts" }

func toDomainPart(m partModel) *domain.Part {
	return &domain.Part{
		ID:         m.ID,
		PartNumber: m.PartNumber,
		Type:       m.Type,
		Location:   strOrEmpty(m.Location),
		Make:       strOrEmpty(m.Make),
		Model:      strOrEmpty(m.Model),
		Year:       m.Year,
		Quantity:   m.Quantity,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *PartRepository) Create(ctx context.Context, p *domain.Part) error {
	m := partModel{
		PartNumber: strings.ToUpper(strings.TrimSpace(p.PartNumber)),
		Type:       p.Type,
		Location:   strOrNil(p.Location),
		Make:       strOrNil(p.Make),
		Model:      strOrNil(p.Model),
		Year:       p.Year,
		Quantity:   p.Quantity,
		Active:     true,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	p.PartNumber = m.PartNumber
	p.Active = true
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *PartRepository) List(ctx context.Context) ([]domain.Part, error) {
	var rows []partModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("part_number").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Part, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPart(m))
	}
	return out, nil
}

func (r *PartRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	var m partModel
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainPart(m), nil
}

// GetByPartNumber matches the exact normalized part number.
func (r *PartRepository) GetByPartNumber(ctx context.Context, number string) (*domain.Part, error) {
	var m partModel
	err := r.db.WithContext(ctx).
		Where("part_number = ? AND active = ?", strings.ToUpper(strings.TrimSpace(number)), true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return toDomainPart(m), nil
}

// ListPaginated returns one page of active parts plus the total match count.
// A non-empty search term does a case-insensitive substring match over part
// number, type, make and model. Page starts at 1; page size is clamped to
// the 5..50 range.
func (r *PartRepository) ListPaginated(ctx context.Context, search string, page, pageSize int) ([]domain.Part, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 5 {
		pageSize = 5
	}
	if pageSize > 50 {
		pageSize = 50
	}

	q := r.db.WithContext(ctx).Model(&partModel{}).Where("active = ?", true)
	if s := strings.TrimSpace(search); s != "" {
		pat := "%" + strings.ToUpper(s) + "%"
		q = q.Where(
			"UPPER(part_number) LIKE ? OR UPPER(type) LIKE ? OR UPPER(make) LIKE ? OR UPPER(model) LIKE ?",
			pat, pat, pat, pat,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []partModel
	err := q.Order("part_number").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	out := make([]domain.Part, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPart(m))
	}
	return out, total, nil
}

// Autocomplete matches a part number prefix, capped at 15 suggestions.
func (r *PartRepository) Autocomplete(ctx context.Context, prefix string) ([]domain.Part, error) {
	var rows []partModel
	err := r.db.WithContext(ctx).
		Where("part_number LIKE ? AND active = ?", strings.ToUpper(strings.TrimSpace(prefix))+"%", true).
		Order("part_number").
		Limit(15).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Part, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPart(m))
	}
	return out, nil
}

// AdjustQuantity applies a signed delta inside a transaction. A negative
// delta that would leave the quantity below zero fails with
// ErrInsufficientStock and leaves the row untouched.
func (r *PartRepository) AdjustQuantity(ctx context.Context, id int64, delta int) (*domain.Part, error) {
	var out *domain.Part
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m partModel
		if err := tx.Where("id = ? AND active = ?", id, true).First(&m).Error; err != nil {
			return err
		}
		next := m.Quantity + delta
		if next < 0 {
			return ErrInsufficientStock
		}
		if err := tx.Model(&partModel{}).Where("id = ?", id).Update("quantity", next).Error; err != nil {
			return err
		}
		m.Quantity = next
		out = toDomainPart(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate soft-deletes a part; history referencing it stays intact.
func (r *PartRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&partModel{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
