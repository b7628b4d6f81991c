package model

import "time"

// OperationLog 活动记录：Content 为不透明JSON负载，服务层整体序列化写入。
type OperationLog struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	ClubID    uint64    `gorm:"not null;index" json:"club_id"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Category  string    `gorm:"size:32" json:"category"`
	StartDate string    `gorm:"size:10" json:"start_date"`
	EndDate   string    `gorm:"size:10" json:"end_date"`
	Team      string    `gorm:"size:64" json:"team"`
	Content   string    `gorm:"type:json" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Files []UploadedFile `gorm:"foreignKey:LogID" json:"files"`
}

type UploadedFile struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	LogID     uint64    `gorm:"not null;index" json:"log_id"`
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	FilePath  string    `gorm:"size:255;not null" json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}
