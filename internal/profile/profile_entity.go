package profile

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeProfile struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	FullName         string    `gorm:"column:full_name;type:varchar(255);not null"`
	Address          string    `gorm:"column:address;type:text;not null"`
	Contact          string    `gorm:"column:contact;type:varchar(50);not null"`
	Birthday         string    `gorm:"column:birthday;type:varchar(10);not null"`
	CivilStatus      string    `gorm:"column:civil_status;type:varchar(20);not null"`
	SSS              string    `gorm:"column:sss;type:varchar(50)"`
	Philhealth       string    `gorm:"column:philhealth;type:varchar(50)"`
	TIN              string    `gorm:"column:tin;type:varchar(50)"`
	Pagibig          string    `gorm:"column:pagibig;type:varchar(50)"`
	EmergencyContact string    `gorm:"column:emergency_contact;type:varchar(255)"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}
