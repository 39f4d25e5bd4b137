// Package mail delivers transactional email. Delivery failures are
// expected to be non-fatal to callers: an invite exists whether or not
// its email ever arrived.
package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends group invite emails.
type Mailer interface {
	SendInvite(toEmail, groupName, inviteLink string) error
}

// smtpMailer sends mail through an SMTP relay using gomail.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a Mailer backed by the given SMTP relay.
func NewSMTPMailer(host string, port int, username, password, from string) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendInvite sends a group invitation email with a join link.
func (m *smtpMailer) SendInvite(toEmail, groupName, inviteLink string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("You're invited to join %q on BudgetFlow!", groupName))
	msg.SetBody("text/plain",
		fmt.Sprintf("You've been invited to the group %q. Click to join: %s", groupName, inviteLink))
	msg.AddAlternative("text/html", fmt.Sprintf(`<div style="font-family:sans-serif">
  <h2>You've been invited to <span style="color:#14b8a6">%s</span>!</h2>
  <p>Click the button below to join:</p>
  <a href="%s" style="background:#14b8a6;color:white;padding:10px 18px;text-decoration:none;border-radius:6px;display:inline-block">Join Group</a>
  <p>If you didn't expect this, just ignore this email.</p>
</div>`, groupName, inviteLink))

	return m.dialer.DialAndSend(msg)
}

// nopMailer discards all mail. Used when SMTP is not configured and in tests.
type nopMailer struct{}

// NewNopMailer creates a Mailer that discards everything it is given.
func NewNopMailer() Mailer {
	return nopMailer{}
}

func (nopMailer) SendInvite(string, string, string) error { return nil }
