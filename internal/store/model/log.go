package model

import "time"

// Log is one entry of the user activity audit trail.
type Log struct {
	ID        int64     `gorm:"primaryKey;column:log_id;autoIncrement"`
	UserID    *int64    `gorm:"column:user_id"`
	Action    string    `gorm:"column:action;type:TEXT;not null"`
	Details   string    `gorm:"column:details;type:TEXT"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

func (Log) TableName() string {
	return "logs"
}
