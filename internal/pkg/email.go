package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

const ResetMailSubject = "ClubHub 密码重置验证码"

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// SendResetCodeMail 发送密码重置验证码邮件
func SendResetCodeMail(cfg SMTPConfig, to, code string, ttl time.Duration) error {
	return SendEmail(cfg, to, ResetMailSubject, ResetCodeHTML(code, ttl))
}

// ResetCodeHTML 重置验证码邮件正文
func ResetCodeHTML(code string, ttl time.Duration) string {
	return fmt.Sprintf(`<p>您好，</p><p>您正在重置 ClubHub 账号密码，验证码为：<b style="font-size:18px;">%s</b>。</p><p>有效期 %d 分钟，请勿泄露给他人。</p>`,
		code, int(ttl.Minutes()))
}
