package mysql

import (
	"club-hub/internal/model"

	"gorm.io/gorm"
)

type ClubMemberRepository struct {
	DB *gorm.DB
}

func NewClubMemberRepository() *ClubMemberRepository {
	return &ClubMemberRepository{DB: DB}
}

func (r *ClubMemberRepository) Create(member *model.ClubMember) error {
	return r.DB.Create(member).Error
}

func (r *ClubMemberRepository) FindByID(id uint64) (*model.ClubMember, error) {
	var member model.ClubMember
	err := r.DB.First(&member, id).Error
	return &member, err
}

func (r *ClubMemberRepository) ListByClub(clubID uint64) ([]model.ClubMember, error) {
	var list []model.ClubMember
	err := r.DB.Where("club_id = ?", clubID).Order("id asc").Find(&list).Error
	return list, err
}

// Updates 部分更新：只覆盖给定字段
func (r *ClubMemberRepository) Updates(id uint64, fields map[string]any) error {
	return r.DB.Model(&model.ClubMember{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ClubMemberRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.ClubMember{}, id).Error
}
