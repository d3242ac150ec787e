package payroll

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type Payroll struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	AmountCents int64     `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Payroll) TableName() string {
	return "payrolls"
}
