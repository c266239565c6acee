package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}
