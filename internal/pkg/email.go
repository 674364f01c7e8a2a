package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled indica si hay servidor SMTP configurado; sin él los avisos se omiten.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

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

// ShiftAssignedHTML es el cuerpo del aviso de turno asignado.
func ShiftAssignedHTML(name, position, assembly string, start, end time.Time) string {
	return fmt.Sprintf(
		`<p>Hola %s,</p><p>Se te ha asignado el turno de <b>%s</b> en <b>%s</b>.</p><p>Horario: %s &ndash; %s.</p><p>Puedes consultar o rechazar el turno desde tu panel.</p>`,
		name, position, assembly,
		start.Format("02/01/2006 15:04"), end.Format("15:04"),
	)
}
