package db

import "time"

type UserModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	FullName  string
	Password  string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
