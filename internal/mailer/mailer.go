package mailer

import (
	"errors"
	"io"

	"asistencia-cosmos-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer envía el reporte SUNAFIL en CSV al contador. SMTP se configura
// por .env; sin host configurado el envío falla con un error claro.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	to   string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		host: config.GetEnv("SMTP_HOST", ""),
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASSWORD", ""),
		from: config.GetEnv("SMTP_FROM", "asistencia@cosmos.pe"),
		to:   config.GetEnv("CONTADOR_EMAIL", ""),
	}
}

func (m *Mailer) Configured() bool {
	return m.host != "" && m.to != ""
}

// SendCSV envía un adjunto CSV al correo del contador (o a destino si no
// está vacío).
func (m *Mailer) SendCSV(destino, asunto, cuerpo, filename string, csvData []byte) error {
	if m.host == "" {
		return errors.New("SMTP no configurado")
	}
	if destino == "" {
		destino = m.to
	}
	if destino == "" {
		return errors.New("sin destinatario: define CONTADOR_EMAIL o pasa uno explícito")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", destino)
	msg.SetHeader("Subject", asunto)
	msg.SetBody("text/plain", cuerpo)
	msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(csvData)
		return err
	}))

	return gomail.NewDialer(m.host, m.port, m.user, m.pass).DialAndSend(msg)
}
