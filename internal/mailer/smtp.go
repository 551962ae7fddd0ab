package mailer

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/smtp"
	"time"

	"github.com/maillist/internal/contact"
)

// ErrAuth reports a credential rejected by the relay.
var ErrAuth = errors.New("authentication rejected")

// Config carries the parameters fixed for a whole batch.
type Config struct {
	Host    string
	Port    int
	Sender  string
	Subject string
	Delay   time.Duration
}

func (c Config) addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Message is one outgoing mail. Messages exist only transiently for the
// send step; nothing is persisted.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Build composes the message for one recipient. Subject and From come
// from the batch configuration; the body is the template with the
// recipient's first name substituted.
func Build(row contact.Contact, tmpl string, cfg Config) Message {
	return Message{
		From:    cfg.Sender,
		To:      row.Email,
		Subject: cfg.Subject,
		Body:    Render(tmpl, row.FirstName),
	}
}

// BuildAll maps each contact to its rendered message, preserving order.
func BuildAll(rows iter.Seq[contact.Contact], tmpl string, cfg Config) iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for row := range rows {
			if !yield(Build(row, tmpl, cfg)) {
				return
			}
		}
	}
}

// format renders the wire form of the message.
func (m Message) format() string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.From, m.To, m.Subject, m.Body,
	)
}

// session is the part of *smtp.Client the batch sender uses. Tests
// substitute an in-memory fake.
type session interface {
	StartTLS(*tls.Config) error
	Auth(smtp.Auth) error
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Sender transmits message batches over a single SMTP session.
type Sender struct {
	cfg   Config
	out   io.Writer
	dial  func() (session, error)
	sleep func(time.Duration)
}

// NewSender returns a Sender that dials cfg's relay and writes progress
// lines to out.
func NewSender(cfg Config, out io.Writer) *Sender {
	return &Sender{
		cfg: cfg,
		out: out,
		dial: func() (session, error) {
			return smtp.Dial(cfg.addr())
		},
		sleep: time.Sleep,
	}
}

// DryRun prints each message's recipient and subject. No connection is
// opened.
func (s *Sender) DryRun(msgs iter.Seq[Message]) {
	fmt.Fprintln(s.out, "--- DRY RUN MODE ACTIVE (No emails will be sent) ---")
	for m := range msgs {
		fmt.Fprintf(s.out, "TO: %s | SUBJ: %s\n", m.To, m.Subject)
	}
}

// Send transmits every message over one authenticated session, pausing
// cfg.Delay after each transmission to respect relay rate limits. A
// rejected credential returns ErrAuth before anything is sent; the
// first transmission error aborts the remainder. The session is closed
// on every path.
func (s *Sender) Send(msgs iter.Seq[Message], user, password string) error {
	c, err := s.dial()
	if err != nil {
		return fmt.Errorf("connect %s: %w", s.cfg.addr(), err)
	}
	defer c.Close()

	if err := c.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if err := c.Auth(smtp.PlainAuth("", user, password, s.cfg.Host)); err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}

	for m := range msgs {
		if err := s.transmit(c, m); err != nil {
			return fmt.Errorf("send to %s: %w", m.To, err)
		}
		fmt.Fprintf(s.out, "Sent to: %s\n", m.To)
		s.sleep(s.cfg.Delay)
	}
	return c.Quit()
}

func (s *Sender) transmit(c session, m Message) error {
	if err := c.Mail(m.From); err != nil {
		return err
	}
	if err := c.Rcpt(m.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, m.format()); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
