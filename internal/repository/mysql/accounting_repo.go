package mysql

import (
	"club-hub/internal/model"

	"gorm.io/gorm"
)

type AccountingRepository struct {
	DB *gorm.DB
}

func NewAccountingRepository() *AccountingRepository {
	return &AccountingRepository{DB: DB}
}

func (r *AccountingRepository) Create(entry *model.AccountingEntry) error {
	return r.DB.Create(entry).Error
}

func (r *AccountingRepository) ListByClub(clubID uint64) ([]model.AccountingEntry, error) {
	var list []model.AccountingEntry
	err := r.DB.Where("club_id = ?", clubID).Order("id asc").Find(&list).Error
	return list, err
}

// FindScoped 同时按 club_id 和 entry_id 查找，跨社团的id不可达
func (r *AccountingRepository) FindScoped(clubID, entryID uint64) (*model.AccountingEntry, error) {
	var entry model.AccountingEntry
	err := r.DB.Where("id = ? AND club_id = ?", entryID, clubID).First(&entry).Error
	return &entry, err
}

func (r *AccountingRepository) UpdatesScoped(clubID, entryID uint64, fields map[string]any) error {
	return r.DB.Model(&model.AccountingEntry{}).
		Where("id = ? AND club_id = ?", entryID, clubID).
		Updates(fields).Error
}

func (r *AccountingRepository) DeleteScoped(clubID, entryID uint64) error {
	return r.DB.Where("id = ? AND club_id = ?", entryID, clubID).
		Delete(&model.AccountingEntry{}).Error
}
