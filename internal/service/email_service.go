package service

import (
	"club-hub/internal/pkg"
	"club-hub/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendResetCode 发送重置密码验证码
func (s *EmailService) SendResetCode(email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}

	// 先写入pending键
	if err = s.rds.SetResetCodePending(email, code); err != nil {
		return err
	}

	if err = pkg.SendResetCodeMail(s.emailCfg, email, code, redis.DefaultEmailCodeTTL); err != nil {
		return err
	}

	// 邮件发送后再将pending转为confirmed
	if err = s.rds.ConfirmResetCode(email); err != nil {
		_ = s.rds.DeleteResetCodePending(email)
		return err
	}
	return nil
}

// VerifyResetCode 校验验证码并一次性删除
func (s *EmailService) VerifyResetCode(email, code string) (bool, error) {
	val, err := s.rds.GetResetCode(email)
	if err != nil {
		// 不存在或已过期
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.rds.DeleteResetCode(email); err != nil {
		return false, err
	}
	return true, nil
}
