package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"
	gomail "gopkg.in/mail.v2"

	"github.com/venue-reservation-service/internal/config"
	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
)

const (
	FromName = "Salones de Eventos"

	ReservationVenueTemplate  = "reservation_venue.tmpl"
	ReservationClientTemplate = "reservation_client.tmpl"
)

//go:embed "templates"
var FS embed.FS

// ReservationData - данные шаблонов уведомлений о бронировании
type ReservationData struct {
	Reservation *domain.ReservationDetail
	Venue       *domain.VenueDetail
}

type client struct {
	dialer *gomail.Dialer
	from   string
	send   func(...*gomail.Message) error
	logger *zap.Logger
}

// NewMailer создает SMTP клиент для уведомлений
func NewMailer(cfg *config.SMTPConfig, logger *zap.Logger) repository.Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = 10 * time.Second

	return &client{
		dialer: d,
		from:   cfg.From,
		send:   d.DialAndSend,
		logger: logger,
	}
}

// Send рендерит шаблон и отправляет письмо одним SMTP соединением
func (c *client) Send(ctx context.Context, mail repository.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, plain, html, err := Render(mail.Template, mail.Data)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", c.from, FromName)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plain)
	msg.AddAlternative("text/html", html)

	if err := c.send(msg); err != nil {
		c.logger.Error("Failed to send mail",
			zap.String("template", mail.Template),
			zap.String("to", mail.To),
			zap.Error(err))
		return fmt.Errorf("send mail: %w", err)
	}

	c.logger.Debug("Mail sent",
		zap.String("template", mail.Template),
		zap.String("to", mail.To))
	return nil
}

// Render executes the subject, plainBody and htmlBody blocks of an embedded
// template.
func Render(name string, data interface{}) (subject, plain, html string, err error) {
	tmpl, err := template.New("email").ParseFS(FS, "templates/"+name)
	if err != nil {
		return "", "", "", fmt.Errorf("parse template %s: %w", name, err)
	}

	parts := make([]string, 3)
	for i, block := range []string{"subject", "plainBody", "htmlBody"} {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
			return "", "", "", fmt.Errorf("execute %s/%s: %w", name, block, err)
		}
		parts[i] = buf.String()
	}
	return parts[0], parts[1], parts[2], nil
}
