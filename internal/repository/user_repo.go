package repository

import (
	"context"
	"time"

	"carsline/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type roleModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name;uniqueIndex;size:50"`
	Description *string   `gorm:"column:description;size:255"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (roleModel) TableName() string { return "roles" }

type userModel struct {
	ID         int64      `gorm:"column:id;primaryKey"`
	FullName   string     `gorm:"column:full_name;size:150"`
	Username   string     `gorm:"column:username;uniqueIndex;size:50"`
	RoleID     int64      `gorm:"column:role_id"`
	Active     bool       `gorm:"column:active"`
	LastAccess *time.Time `gorm:"column:last_access"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	CreatedBy  *int64     `gorm:"column:created_by"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:         m.ID,
		FullName:   m.FullName,
		Username:   m.Username,
		RoleID:     m.RoleID,
		Active:     m.Active,
		LastAccess: m.LastAccess,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// GetActiveByID returns only active users; inactive accounts behave as absent.
func (r *UserRepository) GetActiveByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := userModel{
		FullName:  u.FullName,
		Username:  u.Username,
		RoleID:    u.RoleID,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		CreatedBy: u.CreatedBy,
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	u.ID = m.ID
	u.CreatedAt = m.CreatedAt
	return nil
}

func (r *UserRepository) CreateRole(ctx context.Context, role *domain.Role) error {
	m := roleModel{ID: role.ID, Name: role.Name, CreatedAt: time.Now()}
	if role.Description != "" {
		m.Description = &role.Description
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	role.ID = m.ID
	role.CreatedAt = m.CreatedAt
	return nil
}
