package notifier

import (
	"context"
	"errors"
	"fmt"
	"log"

	"pazes_checkout/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

var ErrMissingSMTPCredentials = errors.New("missing SMTP credentials")

const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 587
)

// SMTPNotifier sends transactional email through an SMTP relay (Gmail with
// an app password in production).

type SMTPNotifier struct {
	dialer   *gomail.Dialer
	fromName string
	address  string
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(host string, port int, address, password, fromName string) (*SMTPNotifier, error) {
	if address == "" || password == "" {
		return nil, ErrMissingSMTPCredentials
	}
	if host == "" {
		host = DefaultHost
	}
	if port == 0 {
		port = DefaultPort
	}
	log.Printf("[webhook][notifier] SMTP notifier initialized host=%s from=%s", host, address)

	return &SMTPNotifier{
		dialer:   gomail.NewDialer(host, port, address, password),
		fromName: fromName,
		address:  address,
	}, nil
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	// gomail has no context plumbing; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.address, n.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", to, err)
	}
	return nil
}
