package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

type User struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email            string         `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password         string         `gorm:"column:password;type:varchar(255);not null"`
	Role             string         `gorm:"column:role;type:varchar(50);not null;default:'employee'"`
	EmailConfirmedAt *time.Time     `gorm:"column:email_confirmed_at;type:timestamptz"`
	IsActive         bool           `gorm:"column:is_active;default:true"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
