package notify

import (
	"fmt"
	"net/smtp"

	"github.com/bekmanvision/uniqer/internal/config"
)

type SMTPNotifier struct {
	cfg config.SMTP
}

func NewSMTP(cfg config.SMTP) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(msg Message) error {
	if n.cfg.Host == "" {
		return fmt.Errorf("smtp is not configured")
	}

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)

	body := "From: " + n.cfg.From + "\r\n" +
		"To: " + msg.To + "\r\n" +
		"Subject: " + msg.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		msg.HTML

	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{msg.To}, []byte(body)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
