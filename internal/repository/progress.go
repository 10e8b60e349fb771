package repository

import (
	"math"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

// recalcOrderProgress refreshes the denormalized job counters and progress
// percentage on an order row, and moves the order between InProcess and
// Finished as completion crosses 100%. Must run inside the same transaction
// as the job or part-line mutation that triggered it.
func recalcOrderProgress(tx *gorm.DB, orderID int64) error {
	var total, completed int64

	if err := tx.Model(&jobModel{}).
		Where("order_id = ? AND active = ?", orderID, true).
		Count(&total).Error; err != nil {
		return err
	}
	if err := tx.Model(&jobModel{}).
		Where("order_id = ? AND active = ? AND status = ?", orderID, true, int(domain.JobCompleted)).
		Count(&completed).Error; err != nil {
		return err
	}

	progress := 0.0
	if total > 0 {
		progress = math.Round(float64(completed)/float64(total)*100*100) / 100
	}

	updates := map[string]interface{}{
		"total_jobs":     total,
		"completed_jobs": completed,
		"progress":       progress,
	}
	if err := tx.Model(&orderModel{}).Where("id = ?", orderID).Updates(updates).Error; err != nil {
		return err
	}

	var m orderModel
	if err := tx.First(&m, orderID).Error; err != nil {
		return err
	}
	switch {
	case total > 0 && completed == total &&
		(m.Status == int(domain.OrderPending) || m.Status == int(domain.OrderInProcess)):
		now := time.Now()
		return tx.Model(&orderModel{}).Where("id = ?", orderID).
			Updates(map[string]interface{}{
				"status":      int(domain.OrderFinished),
				"finished_at": now,
			}).Error
	case completed < total && m.Status == int(domain.OrderFinished):
		// adding a job to a finished order reopens it
		return tx.Model(&orderModel{}).Where("id = ?", orderID).
			Updates(map[string]interface{}{
				"status":      int(domain.OrderInProcess),
				"finished_at": nil,
			}).Error
	}
	return nil
}
