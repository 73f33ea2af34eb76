package model

// Admin is an operator allowed to broadcast.
type Admin struct {
	ID int64 `gorm:"primaryKey;column:admin_id;autoIncrement:false"`
}

func (Admin) TableName() string {
	return "admins"
}
