package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
	"club-hub/internal/repository/mysql"
)

type MemberService struct {
	repo     *mysql.ClubMemberRepository
	clubRepo *mysql.ClubRepository
}

func NewMemberService() *MemberService {
	return &MemberService{
		repo:     mysql.NewClubMemberRepository(),
		clubRepo: mysql.NewClubRepository(),
	}
}

// AddMember 添加花名册成员，角色缺省为 member
func (s *MemberService) AddMember(clubID uint64, member *model.ClubMember) (*model.ClubMember, error) {
	if strings.TrimSpace(member.Name) == "" {
		return nil, pkg.ErrInvalid("member name required")
	}
	if err := s.ensureClub(clubID); err != nil {
		return nil, err
	}
	member.ID = 0
	member.ClubID = clubID
	if member.Role == "" {
		member.Role = "member"
	}
	if err := s.repo.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) ListMembers(clubID uint64) ([]model.ClubMember, error) {
	if err := s.ensureClub(clubID); err != nil {
		return nil, err
	}
	return s.repo.ListByClub(clubID)
}

// UpdateMember 部分更新：未给出的字段保持原值
func (s *MemberService) UpdateMember(memberID uint64, fields map[string]any) (*model.ClubMember, error) {
	if _, err := s.repo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound("member not found")
		}
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.repo.Updates(memberID, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByID(memberID)
}

func (s *MemberService) RemoveMember(memberID uint64) error {
	if _, err := s.repo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound("member not found")
		}
		return err
	}
	return s.repo.Delete(memberID)
}

func (s *MemberService) ensureClub(clubID uint64) error {
	if _, err := s.clubRepo.FindByID(clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound("club not found")
		}
		return err
	}
	return nil
}
