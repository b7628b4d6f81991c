package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"sort"
	"strings"

	"gorm.io/gorm"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
	"club-hub/internal/repository/mysql"
)

type AccountingService struct {
	repo     *mysql.AccountingRepository
	clubRepo *mysql.ClubRepository
	storage  *StorageService
}

func NewAccountingService(storage *StorageService) *AccountingService {
	return &AccountingService{
		repo:     mysql.NewAccountingRepository(),
		clubRepo: mysql.NewClubRepository(),
		storage:  storage,
	}
}

// AddEntry 新增会计内容：金额带符号，正收入负支出，无货币缩放
func (s *AccountingService) AddEntry(clubID uint64, date, description string, amount int64, manager string, photo *multipart.FileHeader) (*model.AccountingEntry, error) {
	if strings.TrimSpace(date) == "" {
		return nil, pkg.ErrInvalid("date required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, pkg.ErrInvalid("description required")
	}
	if _, err := s.ensureClub(clubID); err != nil {
		return nil, err
	}

	entry := &model.AccountingEntry{
		ClubID:      clubID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Manager:     manager,
	}

	// 凭证先落盘再写库
	if photo != nil {
		path, err := s.storage.Store(photo, "images")
		if err != nil {
			return nil, err
		}
		entry.PhotoURL = path
	}

	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *AccountingService) ListEntries(clubID uint64) ([]model.AccountingEntry, error) {
	if _, err := s.ensureClub(clubID); err != nil {
		return nil, err
	}
	return s.repo.ListByClub(clubID)
}

// ExportLedger 导出xlsx：按日期字符串升序，列为 date/manager/description/amount。
// 没有任何条目时返回 NotFound。
func (s *AccountingService) ExportLedger(clubID uint64) (*bytes.Buffer, string, error) {
	club, err := s.ensureClub(clubID)
	if err != nil {
		return nil, "", err
	}
	entries, err := s.repo.ListByClub(clubID)
	if err != nil {
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", pkg.ErrNotFound("no accounting entries to export")
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	buf, err := pkg.BuildLedgerXLSX(entries)
	if err != nil {
		return nil, "", err
	}
	return buf, club.Name, nil
}

// UpdateEntry 条目按 (club_id, entry_id) 双键定位，别的社团下的id不可达
func (s *AccountingService) UpdateEntry(clubID, entryID uint64, fields map[string]any) (*model.AccountingEntry, error) {
	if _, err := s.repo.FindScoped(clubID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound("accounting entry not found")
		}
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.repo.UpdatesScoped(clubID, entryID, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.FindScoped(clubID, entryID)
}

func (s *AccountingService) DeleteEntry(clubID, entryID uint64) error {
	if _, err := s.repo.FindScoped(clubID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound("accounting entry not found")
		}
		return err
	}
	return s.repo.DeleteScoped(clubID, entryID)
}

func (s *AccountingService) ensureClub(clubID uint64) (*model.Club, error) {
	club, err := s.clubRepo.FindByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound("club not found")
		}
		return nil, err
	}
	return club, nil
}
