package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"time"

	"tiffinbox/internal/config"
)

type IMailService interface {
	SendNotification(to, subject, body string) error
}

type smtpMailService struct {
	cfg     *config.Config
	htmlTpl *template.Template
}

const notificationTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="font-family:sans-serif;background:#f8f5f0;margin:0;padding:24px">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:8px;padding:24px">
    <h2 style="color:#c0392b;margin-top:0">{{.AppName}}</h2>
    <h3>{{.Title}}</h3>
    <p style="line-height:1.6;color:#444">{{.Body}}</p>
    <p style="color:#999;font-size:12px">© {{.Year}} {{.AppName}}. All rights reserved.</p>
  </div>
</body>
</html>`

func NewSMTPMailService(cfg *config.Config) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("notification").Parse(notificationTemplate)),
	}
}

func (s *smtpMailService) SendNotification(to, subject, body string) error {
	var rendered bytes.Buffer
	err := s.htmlTpl.Execute(&rendered, map[string]interface{}{
		"Title":   subject,
		"Body":    body,
		"AppName": s.cfg.SMTPFromName,
		"Year":    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.SMTPFromName, s.cfg.SMTPFrom)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.Write(rendered.Bytes())

	return s.send(to, msg.Bytes())
}

func (s *smtpMailService) send(to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.SMTPHost, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.SMTPFrom); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
