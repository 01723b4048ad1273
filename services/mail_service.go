// file: services/mail_service.go
package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

var ErrMailNotConfigured = errors.New("SMTP is not configured")

// SendTeamConfirmation mails the allocated team ID to every member address.
// Registration treats this as fire-and-forget: an error here is logged by the
// caller and reported only as a soft flag, never failing the registration.
func SendTeamConfirmation(emails []string, teamID, leaderName string, memberNames []string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return ErrMailNotConfigured
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "noreply@example.com"
	}

	var members strings.Builder
	for _, name := range memberNames {
		if name == "" {
			continue
		}
		members.WriteString("<li>" + name + "</li>")
	}

	body := fmt.Sprintf(`<div>
  <h1>Team Registration Confirmed</h1>
  <p>Congratulations! Team led by %s has been successfully registered.</p>
  <p>Your Team ID is: <b>%s</b></p>
  <p>Keep this ID safe. You'll need it for future reference.</p>
  <h3>Team Members:</h3>
  <ul>%s</ul>
  <p>This is an automated email. Please do not reply to this message.</p>
</div>`, leaderName, teamID, members.String())

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", emails...)
	m.SetHeader("Subject", "Team Registration Confirmation - Team ID: "+teamID)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
