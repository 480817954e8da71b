package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Message — структурированная заявка с контактной формы
type Message struct {
	Name  string
	Email string
	Phone string
	Body  string
}

type Sender interface {
	Send(msg Message) error
}

// SMTPSender пересылает заявку на собственный адрес через внешний SMTP relay
type SMTPSender struct {
	host     string
	port     int
	email    string
	password string
}

func NewSMTPSender(host string, port int, email, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		email:    email,
		password: password,
	}
}

func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.email)
	m.SetHeader("To", s.email)
	m.SetHeader("Subject", "New Message!")
	m.SetBody("text/plain", FormatBody(msg))

	d := gomail.NewDialer(s.host, s.port, s.email, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("could not send contact mail: %w", err)
	}

	return nil
}

// FormatBody — формат письма исходного блога (строки Name/Email/Phone/Message)
func FormatBody(msg Message) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage: %s\n",
		msg.Name, msg.Email, msg.Phone, msg.Body)
}
