package model

import "time"

// AccountingEntry 会计内容：金额为带符号整数，正数收入、负数支出。
// 余额不落库，由条目求和得出。
type AccountingEntry struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	ClubID      uint64    `gorm:"not null;index" json:"club_id"`
	Date        string    `gorm:"size:10;not null" json:"date"` // ISO日期字符串，按字典序排序
	Manager     string    `gorm:"size:64" json:"manager"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Amount      int64     `gorm:"not null" json:"amount"`
	PhotoURL    string    `gorm:"size:255" json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
