package employee

import "time"

// EmployeeRecord is a read model over the users table. The roster only needs
// identity columns, so it stays independent of the auth package.
type EmployeeRecord struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255)"`
	Role      string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (EmployeeRecord) TableName() string {
	return "users"
}
