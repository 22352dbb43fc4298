package service

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mk-watch-mods/models"
)

// DefaultSendTimeout bounds a single notification attempt
const DefaultSendTimeout = 10 * time.Second

// MailMessage is a single plain-text email
type MailMessage struct {
	From    string
	To      string
	Subject string
	Body    string
	Date    time.Time
}

// Bytes renders the message with RFC 5322 headers and CRLF line endings
func (m *MailMessage) Bytes() []byte {
	var b strings.Builder
	b.WriteString("From: " + m.From + "\r\n")
	b.WriteString("To: " + m.To + "\r\n")
	b.WriteString("Subject: " + singleLine(m.Subject) + "\r\n")
	b.WriteString("Date: " + m.Date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(m.Body, "\r\n", "\n"), "\n", "\r\n"))
	return []byte(b.String())
}

// MailTransport submits a message to a mail server
type MailTransport interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// SMTPTransport submits mail over SMTP: connect, STARTTLS, AUTH, submit
type SMTPTransport struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
	// TLSConfig overrides the STARTTLS configuration; nil verifies against Host
	TLSConfig *tls.Config
}

// Ensure SMTPTransport implements MailTransport
var _ MailTransport = (*SMTPTransport)(nil)

// Send performs one submission attempt. Every failure is a *TransportError.
func (t *SMTPTransport) Send(ctx context.Context, msg *MailMessage) error {
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	addr := net.JoinHostPort(t.Host, strconv.Itoa(t.Port))

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return &TransportError{Stage: "connect", Err: err}
	}

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return &TransportError{Stage: "connect", Err: err}
	}

	client, err := smtp.NewClient(conn, t.Host)
	if err != nil {
		conn.Close()
		return &TransportError{Stage: "connect", Err: err}
	}
	defer client.Close()

	tlsConfig := t.TLSConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{ServerName: t.Host, MinVersion: tls.VersionTLS12}
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		return &TransportError{Stage: "starttls", Err: err}
	}

	if err := client.Auth(smtp.PlainAuth("", t.Username, t.Password, t.Host)); err != nil {
		return &TransportError{Stage: "auth", Err: err}
	}

	if err := submit(client, msg); err != nil {
		return &TransportError{Stage: "submit", Err: err}
	}

	// The message was accepted at end of DATA; a failed QUIT does not undo that
	_ = client.Quit()
	return nil
}

func submit(client *smtp.Client, msg *MailMessage) error {
	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		w.Close()
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("end of data: %w", err)
	}
	return nil
}

// Notifier tells the shop owner about a reservation request by email
type Notifier struct {
	transport MailTransport
	from      string
	to        string
	now       func() time.Time
	log       *zap.SugaredLogger
}

// NewNotifier creates a Notifier sending from -> to over transport
func NewNotifier(transport MailTransport, from, to string, log *zap.SugaredLogger) *Notifier {
	return &Notifier{
		transport: transport,
		from:      from,
		to:        to,
		now:       time.Now,
		log:       log,
	}
}

// Send formats the reservation email and submits it once.
// A zero RequestedAt is stamped with the current time.
func (n *Notifier) Send(ctx context.Context, req models.ReservationRequest) error {
	if req.RequestedAt.IsZero() {
		req.RequestedAt = n.now()
	}
	msg := n.BuildMessage(req)

	n.log.Infof("📧 Send: Notifying %s about reservation model=%s collection=%s", n.to, req.ModelName, req.CollectionName)
	if err := n.transport.Send(ctx, msg); err != nil {
		var te *TransportError
		if !errors.As(err, &te) {
			err = &TransportError{Stage: "submit", Err: err}
		}
		n.log.Errorf("❌ Send: Notification failed: %v", err)
		return err
	}

	n.log.Infof("✅ Send: Notification sent for model=%s", req.ModelName)
	return nil
}

// BuildMessage renders the fixed reservation template
func (n *Notifier) BuildMessage(req models.ReservationRequest) *MailMessage {
	body := fmt.Sprintf(`New watch reservation request

Time:       %s
Collection: %s
Model:      %s

Customer name:    %s
Customer contact: %s
`,
		req.RequestedAt.Format("2006-01-02 15:04:05 MST"),
		singleLine(req.CollectionName),
		singleLine(req.ModelName),
		singleLine(req.CustomerName),
		singleLine(req.CustomerContact),
	)

	return &MailMessage{
		From:    n.from,
		To:      n.to,
		Subject: "New watch reservation: " + req.ModelName,
		Body:    body,
		Date:    req.RequestedAt,
	}
}

// singleLine keeps user input from adding lines or headers
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
