package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
	"club-hub/internal/repository/mysql"
	"club-hub/pkg/logger"
)

const clubPasswordLen = 6

type ClubService struct {
	repo     *mysql.ClubRepository
	storage  *StorageService
	producer *pkg.EventProducer // 可为nil，关闭事件发布
}

func NewClubService(storage *StorageService, producer *pkg.EventProducer) *ClubService {
	return &ClubService{
		repo:     mysql.NewClubRepository(),
		storage:  storage,
		producer: producer,
	}
}

// CreateClub 创建社团：名称全局唯一，入会密码必须是6位数字
func (s *ClubService) CreateClub(name, clubType, topic, password, description string, image *multipart.FileHeader) (*model.Club, error) {
	if strings.TrimSpace(name) == "" {
		return nil, pkg.ErrInvalid("club name required")
	}
	if !pkg.IsDigits(password) || len(password) != clubPasswordLen {
		return nil, pkg.ErrInvalid("password must be a 6-digit number")
	}

	if _, err := s.repo.FindByName(name); err == nil {
		return nil, pkg.ErrConflict("club name already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	club := &model.Club{
		Name:        name,
		ClubType:    clubType,
		Topic:       topic,
		Password:    password,
		Description: description,
	}

	// 图片先落盘再写库；写库失败可能留下孤儿文件，属已知缺口
	if image != nil {
		path, err := s.storage.Store(image, "images")
		if err != nil {
			return nil, err
		}
		club.ImageURL = path
	}

	if err := s.repo.Create(club); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkg.ErrConflict("club name already registered")
		}
		return nil, err
	}

	s.publish("club.created", club.ID, club.Name)
	return club, nil
}

// ListClubs 全量列表，按插入顺序
func (s *ClubService) ListClubs() ([]model.Club, error) {
	return s.repo.List()
}

// SearchClubs 名称包含过滤（区分大小写），保持插入顺序
func (s *ClubService) SearchClubs(name string) ([]model.Club, error) {
	if strings.TrimSpace(name) == "" {
		return nil, pkg.ErrInvalid("search name required")
	}
	list, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	matched := make([]model.Club, 0, len(list))
	for _, c := range list {
		if strings.Contains(c.Name, name) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *ClubService) GetClub(id uint64) (*model.Club, error) {
	club, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound("club not found")
	}
	if err != nil {
		return nil, err
	}
	return club, nil
}

// JoinClub 按名称+密码入会。密码为精确字符串比较。
// 入会不落成员行：花名册是独立维护的名单，与注册用户无关联。
func (s *ClubService) JoinClub(name, password string) (*model.Club, error) {
	club, err := s.repo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.ErrNotFound("club not found")
	}
	if err != nil {
		return nil, err
	}
	if club.Password != password {
		return nil, pkg.ErrUnauthorized("wrong club password")
	}
	s.publish("club.joined", club.ID, club.Name)
	return club, nil
}

// UpdateClub 部分更新：只覆盖给定字段
func (s *ClubService) UpdateClub(id uint64, fields map[string]any) (*model.Club, error) {
	if _, err := s.GetClub(id); err != nil {
		return nil, err
	}
	if pw, ok := fields["password"]; ok {
		str, _ := pw.(string)
		if !pkg.IsDigits(str) || len(str) != clubPasswordLen {
			return nil, pkg.ErrInvalid("password must be a 6-digit number")
		}
	}
	if len(fields) > 0 {
		if err := s.repo.Updates(id, fields); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, pkg.ErrConflict("club name already registered")
			}
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

// DeleteClub 级联删除成员、会计内容、活动记录及附件
func (s *ClubService) DeleteClub(id uint64) error {
	club, err := s.GetClub(id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(id); err != nil {
		return err
	}
	s.publish("club.deleted", club.ID, club.Name)
	return nil
}

// publish 同步尽力而为地发事件，失败只记日志不影响请求
func (s *ClubService) publish(event string, clubID uint64, name string) {
	if s.producer == nil {
		return
	}
	ev := pkg.ClubEvent{
		Event:     event,
		ClubID:    clubID,
		ClubName:  name,
		EventTime: time.Now().UTC().Format(time.RFC3339Nano),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.producer.Publish(ctx, ev); err != nil && logger.L != nil {
		logger.L.Warn("club event publish failed", zap.Error(err))
	}
}
