package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	ResetCodePrefix     = "email:code:reset"

	// 两阶段键：邮件发出前写 pending，发出后转 confirmed
	PendingSuffix   = "pending"
	ConfirmedSuffix = "confirmed"
)

var (
	ErrCodeNotFound        = errors.New("reset code not found")
	ErrCodeDelFailed       = errors.New("reset code delete failed")
	ErrCodePendingFailed   = errors.New("reset code pending failed")
	ErrCodeConfirmedFailed = errors.New("reset code confirmed failed")
)

// EmailRepository 密码重置验证码存储
type EmailRepository struct{}

func (e *EmailRepository) SetResetCodePending(email, code string) error {
	key := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, PendingSuffix, email)
	if err := Client.Set(context.Background(), key, code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrCodePendingFailed
	}
	return nil
}

// ConfirmResetCode 将 pending 转为 confirmed（lua脚本原子执行：取值+写目标+设TTL+删源）
func (e *EmailRepository) ConfirmResetCode(email string) error {
	srcKey := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, PendingSuffix, email)
	dstKey := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, ConfirmedSuffix, email)

	script := `
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
redis.call("SET", KEYS[2], val, "PX", ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`
	px := int64(DefaultEmailCodeTTL / time.Millisecond)
	res := Client.Eval(context.Background(), script, []string{srcKey, dstKey}, px)
	if err := res.Err(); err != nil {
		return ErrCodeConfirmedFailed
	}
	ok, _ := res.Int()
	if ok != 1 {
		return ErrCodeConfirmedFailed
	}
	return nil
}

// DeleteResetCodePending 删除 pending 键（幂等）
func (e *EmailRepository) DeleteResetCodePending(email string) error {
	key := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, PendingSuffix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrCodeDelFailed
	}
	return nil
}

// GetResetCode 校验时取 confirmed 的验证码
func (e *EmailRepository) GetResetCode(email string) (string, error) {
	key := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, ConfirmedSuffix, email)
	val, err := Client.Get(context.Background(), key).Result()
	if err != nil {
		return "", ErrCodeNotFound
	}
	return val, nil
}

// DeleteResetCode 验证成功后一次性删除
func (e *EmailRepository) DeleteResetCode(email string) error {
	key := fmt.Sprintf("%s:%s:%s", ResetCodePrefix, ConfirmedSuffix, email)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrCodeDelFailed
	}
	return nil
}
