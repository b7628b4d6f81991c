package service

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
	"club-hub/internal/repository/mysql"
)

// LogInput 活动记录创建负载，Content 为不透明键值映射
type LogInput struct {
	Title     string         `json:"title"`
	Category  string         `json:"category"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Team      string         `json:"team"`
	Content   map[string]any `json:"content"`
}

type OperationLogService struct {
	repo     *mysql.OperationLogRepository
	clubRepo *mysql.ClubRepository
	userRepo *mysql.UserRepository
	storage  *StorageService
}

func NewOperationLogService(storage *StorageService) *OperationLogService {
	return &OperationLogService{
		repo:     mysql.NewOperationLogRepository(),
		clubRepo: mysql.NewClubRepository(),
		userRepo: mysql.NewUserRepository(),
		storage:  storage,
	}
}

// CreateLog 附件先落盘，记录与附件行在同一事务内写入
func (s *OperationLogService) CreateLog(clubID, authorID uint64, in LogInput, files []*multipart.FileHeader) (*model.OperationLog, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, pkg.ErrInvalid("log title required")
	}
	if _, err := s.clubRepo.FindByID(clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound("club not found")
		}
		return nil, err
	}
	if _, err := s.userRepo.FindByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound("author not found")
		}
		return nil, err
	}

	content := "{}"
	if in.Content != nil {
		raw, err := json.Marshal(in.Content)
		if err != nil {
			return nil, pkg.ErrInvalid("log content is not serializable")
		}
		content = string(raw)
	}

	log := &model.OperationLog{
		ClubID:    clubID,
		AuthorID:  authorID,
		Title:     in.Title,
		Category:  in.Category,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Team:      in.Team,
		Content:   content,
	}

	for _, fh := range files {
		path, err := s.storage.Store(fh, "files")
		if err != nil {
			return nil, err
		}
		log.Files = append(log.Files, model.UploadedFile{
			FileName: fh.Filename,
			FilePath: path,
		})
	}

	if err := s.repo.CreateWithFiles(log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListLogs 按创建时间倒序
func (s *OperationLogService) ListLogs(clubID uint64) ([]model.OperationLog, error) {
	if _, err := s.clubRepo.FindByID(clubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound("club not found")
		}
		return nil, err
	}
	return s.repo.ListByClub(clubID)
}

// GetLog id必须落在该社团范围内，跨社团按 NotFound 处理
func (s *OperationLogService) GetLog(clubID, logID uint64) (*model.OperationLog, error) {
	log, err := s.repo.FindByID(logID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound("operation log not found")
	}
	if err != nil {
		return nil, err
	}
	if log.ClubID != clubID {
		return nil, pkg.ErrNotFound("operation log not found")
	}
	return log, nil
}
