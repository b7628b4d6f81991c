package model

import "time"

type Club struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:64;not null" json:"name"`
	ClubType    string `gorm:"size:32;not null" json:"club_type"`
	Topic       string `gorm:"size:64;not null" json:"topic"`
	Description string `gorm:"type:text" json:"description"`
	Password    string `gorm:"size:16;not null" json:"-"` // 6位数字入会密码，响应中不返回
	ImageURL    string `gorm:"size:255" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ClubMember struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	ClubID     uint64 `gorm:"not null;index" json:"club_id"`
	Name       string `gorm:"size:64;not null" json:"name"`
	Contact    string `gorm:"size:64" json:"contact"`
	Major      string `gorm:"size:64" json:"major"`
	Generation int    `gorm:"not null;default:0" json:"generation"` // 期数/入会年份
	Role       string `gorm:"size:32;not null;default:'member'" json:"role"`
	Memo       string `gorm:"type:text" json:"memo"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
