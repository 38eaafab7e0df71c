package mail

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/salespad-outreach/internal/entity"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) Channel() entity.Channel {
	return entity.ChannelEmail
}

// Send entrega via SMTP. Pode ser chamado mais de uma vez para a mesma
// mensagem (redelivery da fila); o dedup é responsabilidade do provedor.
func (s *EmailSender) Send(ctx context.Context, channelMessage entity.ChannelMessage) error {
	email, ok := channelMessage.(entity.EmailMessage)
	if !ok {
		return fmt.Errorf("email sender recebeu mensagem de outro canal: %s", channelMessage.MessageChannel())
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", toHTMLBody(email.Body))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func toHTMLBody(body string) string {
	paragraphs := strings.Split(body, "\n\n")
	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(p, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}
