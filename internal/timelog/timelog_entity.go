package timelog

import (
	"time"

	"github.com/google/uuid"
)

type TimeLog struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	TimeIn    time.Time  `gorm:"column:time_in;type:timestamptz;not null;index"`
	TimeOut   *time.Time `gorm:"column:time_out;type:timestamptz"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (TimeLog) TableName() string {
	return "time_logs"
}
