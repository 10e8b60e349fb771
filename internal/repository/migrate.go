package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema for every table the repositories own.
// Production runs against a pre-provisioned database; this is for local
// development and the sqlite test suites.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&roleModel{},
		&userModel{},
		&customerModel{},
		&vehicleModel{},
		&serviceTypeModel{},
		&orderModel{},
		&jobModel{},
		&jobPauseModel{},
		&partLineModel{},
		&checklistModel{},
		&evidenceModel{},
		&partModel{},
	)
}
