package model

import (
	"encoding/json"
	"time"
)

// User is a chat user who talked to the bot at least once.
type User struct {
	ID          int64     `gorm:"primaryKey;column:user_id;autoIncrement:false"`
	Username    string    `gorm:"column:username;type:TEXT"`
	FirstName   string    `gorm:"column:first_name;type:TEXT"`
	LastName    string    `gorm:"column:last_name;type:TEXT"`
	PhoneNumber *string   `gorm:"column:phone_number;type:VARCHAR(20)"`
	Language    string    `gorm:"column:language;type:VARCHAR(2);not null;default:hy"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	LastSeenAt  time.Time `gorm:"column:last_seen_at;not null"`
}

func (User) TableName() string {
	return "users"
}

type UserList []User

// IDs returns the ids of the users in list order.
func (l UserList) IDs() []int64 {
	ids := make([]int64, 0, len(l))
	for _, u := range l {
		ids = append(ids, u.ID)
	}
	return ids
}

func (u User) String() string {
	val, _ := json.Marshal(u)
	return string(val)
}

// LanguageCount is the number of users per display language.
type LanguageCount struct {
	Language string
	Count    int64
}
