package model

import "time"

type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Affiliation  string    `gorm:"size:128" json:"affiliation"`
	Introduction string    `gorm:"type:text" json:"introduction"`
	Password     string    `gorm:"size:255;not null" json:"-"` // bcrypt哈希
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
