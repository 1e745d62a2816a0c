package email

import (
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for links back to the portal (e.g., "http://localhost:8080")
}

// sender is the part of *gomail.Dialer the service uses.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer sender
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendMeetingDecision(to string, mail MeetingDecisionMail) error {
	subject, htmlBody, plainBody := s.meetingDecisionContent(mail)
	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) meetingDecisionContent(mail MeetingDecisionMail) (subject, htmlBody, plainBody string) {
	link := fmt.Sprintf("%s/meetings/%d", s.config.BaseURL, mail.MeetingID)

	verdict := "approved"
	if !mail.Approved {
		verdict = "declined"
	}
	subject = fmt.Sprintf("Your booking \"%s\" was %s", mail.Title, verdict)

	reasonHTML, reasonPlain := "", ""
	if !mail.Approved && mail.Reason != "" {
		reasonHTML = fmt.Sprintf("<p>Reason: %s</p>", template.HTMLEscapeString(mail.Reason))
		reasonPlain = fmt.Sprintf("\nReason: %s\n", mail.Reason)
	}

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Booking %s</h2>
			<p><strong>%s</strong> in %s, %s to %s.</p>
			%s
			<p><a href="%s">View booking</a></p>
		</body>
		</html>
	`, verdict,
		template.HTMLEscapeString(mail.Title),
		template.HTMLEscapeString(mail.RoomName),
		mail.Start, mail.End,
		reasonHTML, link)

	plainBody = fmt.Sprintf(`
Booking %s

%s in %s, %s to %s.
%s
View booking: %s
	`, verdict, mail.Title, mail.RoomName, mail.Start, mail.End, reasonPlain, link)

	return subject, htmlBody, plainBody
}

func (s *SMTPEmailService) SendTicketAssigned(to string, mail TicketAssignedMail) error {
	link := fmt.Sprintf("%s/helpdesk/tickets/%d", s.config.BaseURL, mail.TicketID)
	subject := fmt.Sprintf("Ticket #%d assigned to you: %s", mail.TicketID, mail.Title)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New ticket assignment</h2>
			<p><strong>%s</strong> (priority: %s)</p>
			<p><a href="%s">Open ticket</a></p>
		</body>
		</html>
	`, template.HTMLEscapeString(mail.Title), mail.Priority, link)

	plainBody := fmt.Sprintf(`
New ticket assignment

%s (priority: %s)

Open ticket: %s
	`, mail.Title, mail.Priority, link)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
