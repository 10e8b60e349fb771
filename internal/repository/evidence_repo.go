package repository

import (
	"context"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type EvidenceRepository struct {
	db *gorm.DB
}

func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository {
	return &EvidenceRepository{db: db}
}

type evidenceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OrderID     int64     `gorm:"column:order_id;index"`
	FilePath    string    `gorm:"column:file_path;size:500"`
	Description *string   `gorm:"column:description;size:250"`
	IsWork      bool      `gorm:"column:is_work"`
	Active      bool      `gorm:"column:active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (evidenceModel) TableName() string { return "order_evidence" }

func toDomainEvidence(m evidenceModel) *domain.Evidence {
	return &domain.Evidence{
		ID:          m.ID,
		OrderID:     m.OrderID,
		FilePath:    m.FilePath,
		Description: strOrEmpty(m.Description),
		IsWork:      m.IsWork,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
	}
}

// CreateBatch inserts one row per stored file and flags the order as having
// evidence, in a single transaction.
func (r *EvidenceRepository) CreateBatch(ctx context.Context, items []*domain.Evidence) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range items {
			m := evidenceModel{
				OrderID:     e.OrderID,
				FilePath:    e.FilePath,
				Description: strOrNil(e.Description),
				IsWork:      e.IsWork,
				Active:      true,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			e.ID = m.ID
			e.Active = true
			e.CreatedAt = m.CreatedAt
		}
		return tx.Model(&orderModel{}).
			Where("id = ?", items[0].OrderID).
			Update("has_evidence", true).Error
	})
}

func (r *EvidenceRepository) GetByID(ctx context.Context, id int64) (*domain.Evidence, error) {
	var m evidenceModel
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainEvidence(m), nil
}

func (r *EvidenceRepository) ListByOrder(ctx context.Context, orderID int64, isWork *bool) ([]domain.Evidence, error) {
	q := r.db.WithContext(ctx).Where("order_id = ? AND active = ?", orderID, true)
	if isWork != nil {
		q = q.Where("is_work = ?", *isWork)
	}
	var rows []evidenceModel
	if err := q.Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Evidence, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvidence(m))
	}
	return out, nil
}

// SoftDelete hides the row but leaves the file on disk for audit.
func (r *EvidenceRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&evidenceModel{}).
		Where("id = ?", id).
		Update("active", false).Error
}
