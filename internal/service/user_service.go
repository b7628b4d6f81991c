package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"club-hub/internal/model"
	"club-hub/internal/pkg"
	"club-hub/internal/repository/mysql"
	"club-hub/internal/repository/redis"
)

// TokenStore 登录会话令牌存储（单会话：每个用户只保留一个有效token）
type TokenStore interface {
	AddUserToken(usrID uint64, token string) error
	DeleteUserToken(usrID uint64) error
}

type UserService struct {
	repo     *mysql.UserRepository
	tokens   TokenStore
	emailSvc *EmailService
}

func NewUserService(emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     mysql.NewUserRepository(),
		tokens:   &redis.UserRepository{},
		emailSvc: emailSvc,
	}
}

// Register 注册：邮箱全局唯一
func (s *UserService) Register(email, password, name, affiliation, introduction string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, pkg.ErrInvalid("email and password required")
	}

	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, pkg.ErrConflict("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		Affiliation:  affiliation,
		Introduction: introduction,
		Password:     string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkg.ErrConflict("email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate 校验邮箱+密码。凭证不对不区分具体原因。
func (s *UserService) Authenticate(email, password string) (*model.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrUnauthorized("invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, pkg.ErrUnauthorized("invalid email or password")
	}
	return user, nil
}

// Login 登录成功后将token写入会话存储（单会话）
func (s *UserService) Login(email, password string) (*pkg.Pair, error) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	token, err := pkg.GeneratePair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	if err = s.tokens.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(usrID uint64) error {
	return s.tokens.DeleteUserToken(usrID)
}

// Refresh 换发新token对。新access同时写入会话存储，旧access随即失效。
func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	pair, err := pkg.Refresh(refreshToken)
	if err != nil {
		return nil, pkg.ErrUnauthorized(err.Error())
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil, pkg.ErrUnauthorized(err.Error())
	}
	if err = s.tokens.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// ChangePassword 登录态修改密码，成功后强制下线
func (s *UserService) ChangePassword(usrID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(usrID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound("user not found")
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return pkg.ErrUnauthorized("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	return s.Logout(usrID)
}

// ResetPassword 用邮件验证码重置密码。
// 先确认账号存在再校验验证码，避免验证码被无账号的邮箱白白消耗。
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound("user not found")
		}
		return err
	}

	ok, err := s.emailSvc.VerifyResetCode(email, code)
	if err != nil || !ok {
		return pkg.ErrUnauthorized("verification failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(user, string(hash))
}
