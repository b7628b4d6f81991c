package mysql

import (
	"club-hub/internal/model"

	"gorm.io/gorm"
)

type OperationLogRepository struct {
	DB *gorm.DB
}

func NewOperationLogRepository() *OperationLogRepository {
	return &OperationLogRepository{DB: DB}
}

// CreateWithFiles 单事务写入记录与附件，失败不留半截数据
func (r *OperationLogRepository) CreateWithFiles(log *model.OperationLog) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		files := log.Files
		log.Files = nil
		if err := tx.Create(log).Error; err != nil {
			return err
		}
		for i := range files {
			files[i].LogID = log.ID
		}
		if len(files) > 0 {
			if err := tx.Create(&files).Error; err != nil {
				return err
			}
		}
		log.Files = files
		return nil
	})
}

// ListByClub 按创建时间倒序
func (r *OperationLogRepository) ListByClub(clubID uint64) ([]model.OperationLog, error) {
	var list []model.OperationLog
	err := r.DB.Where("club_id = ?", clubID).
		Preload("Files").
		Order("created_at desc, id desc").
		Find(&list).Error
	return list, err
}

func (r *OperationLogRepository) FindByID(id uint64) (*model.OperationLog, error) {
	var log model.OperationLog
	err := r.DB.Preload("Files").First(&log, id).Error
	return &log, err
}
