package mysql

import (
	"club-hub/internal/model"

	"gorm.io/gorm"
)

type ClubRepository struct {
	DB *gorm.DB
}

func NewClubRepository() *ClubRepository {
	return &ClubRepository{DB: DB}
}

func (r *ClubRepository) Create(club *model.Club) error {
	return r.DB.Create(club).Error
}

func (r *ClubRepository) FindByID(id uint64) (*model.Club, error) {
	var club model.Club
	err := r.DB.First(&club, id).Error
	return &club, err
}

func (r *ClubRepository) FindByName(name string) (*model.Club, error) {
	var club model.Club
	err := r.DB.Where("name = ?", name).First(&club).Error
	return &club, err
}

// List 按插入顺序返回全部社团
func (r *ClubRepository) List() ([]model.Club, error) {
	var list []model.Club
	err := r.DB.Order("id asc").Find(&list).Error
	return list, err
}

// Updates 只更新给定的字段
func (r *ClubRepository) Updates(id uint64, fields map[string]any) error {
	return r.DB.Model(&model.Club{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteCascade 单事务级联删除：成员、会计内容、活动记录及其附件，最后删社团
func (r *ClubRepository) DeleteCascade(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var logIDs []uint64
		if err := tx.Model(&model.OperationLog{}).
			Where("club_id = ?", id).
			Pluck("id", &logIDs).Error; err != nil {
			return err
		}
		if len(logIDs) > 0 {
			if err := tx.Where("log_id IN ?", logIDs).
				Delete(&model.UploadedFile{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.OperationLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.AccountingEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.ClubMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Club{}, id).Error
	})
}
