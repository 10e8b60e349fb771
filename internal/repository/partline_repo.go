package repository

import (
	"context"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type PartLineRepository struct {
	db *gorm.DB
}

func NewPartLineRepository(db *gorm.DB) *PartLineRepository {
	return &PartLineRepository{db: db}
}

type partLineModel struct {
	ID        int64   `gorm:"column:id;primaryKey"`
	JobID     int64   `gorm:"column:job_id;index"`
	OrderID   int64   `gorm:"column:order_id;index"`
	Name      string  `gorm:"column:name;size:250"`
	Quantity  int     `gorm:"column:quantity"`
	UnitPrice float64 `gorm:"column:unit_price"`
}

func (partLineModel) TableName() string { return "part_lines" }

func toDomainPartLine(m partLineModel) domain.PartLine {
	return domain.PartLine{
		ID:        m.ID,
		JobID:     m.JobID,
		OrderID:   m.OrderID,
		Name:      m.Name,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
	}
}

// refreshJobPartsTotal rewrites the job's parts total from the live sum of
// its lines. Always called inside the mutating transaction so the stored
// total can never drift from the ledger.
func refreshJobPartsTotal(tx *gorm.DB, jobID int64) error {
	var total float64
	err := tx.Model(&partLineModel{}).
		Where("job_id = ?", jobID).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	return tx.Model(&jobModel{}).Where("id = ?", jobID).
		Update("parts_total", total).Error
}

// AddBatch inserts the lines, refreshes the job's parts total and the
// order's progress counters in one transaction.
func (r *PartLineRepository) AddBatch(ctx context.Context, jobID, orderID int64, lines []domain.PartLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range lines {
			m := partLineModel{
				JobID:     jobID,
				OrderID:   orderID,
				Name:      lines[i].Name,
				Quantity:  lines[i].Quantity,
				UnitPrice: lines[i].UnitPrice,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			lines[i].ID = m.ID
			lines[i].JobID = jobID
			lines[i].OrderID = orderID
		}

		if err := refreshJobPartsTotal(tx, jobID); err != nil {
			return err
		}
		return recalcOrderProgress(tx, orderID)
	})
}

func (r *PartLineRepository) GetByID(ctx context.Context, id int64) (*domain.PartLine, error) {
	var m partLineModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	line := toDomainPartLine(m)
	return &line, nil
}

func (r *PartLineRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.PartLine, error) {
	var rows []partLineModel
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.PartLine, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPartLine(m))
	}
	return out, nil
}

func (r *PartLineRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.PartLine, error) {
	var rows []partLineModel
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.PartLine, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPartLine(m))
	}
	return out, nil
}

// Delete removes the line and re-derives the job total and order progress
// in the same transaction.
func (r *PartLineRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m partLineModel
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&partLineModel{}, id).Error; err != nil {
			return err
		}
		if err := refreshJobPartsTotal(tx, m.JobID); err != nil {
			return err
		}
		return recalcOrderProgress(tx, m.OrderID)
	})
}
