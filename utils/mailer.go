package utils

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer kirim email notifikasi lewat SMTP. Kalau host kosong, mailer
// non-aktif dan semua kiriman dilewati.
type Mailer struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func NewMailer(host string, port int, sender, password string) *Mailer {
	if host == "" {
		return nil
	}
	return &Mailer{Host: host, Port: port, Sender: sender, Password: password}
}

// SendWelcome kirim email selamat datang ke user baru. Gagal kirim
// hanya dicatat, tidak menggagalkan pembuatan user.
func (m *Mailer) SendWelcome(to, username string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your admin account is ready")
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYour account has been created. You can now sign in to the admin console.\n", username))

	dialer := gomail.NewDialer(m.Host, m.Port, m.Sender, m.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("Warning: failed to send welcome email to", to, ":", err)
	}
}
