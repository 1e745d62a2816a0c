package email

import (
	"errors"

	"github.com/opsportal/opsportal/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service not configured")

// MeetingDecisionMail carries what the creator needs to know about an approve or decline.
// Start and End are preformatted in the business timezone.
type MeetingDecisionMail struct {
	MeetingID uint
	Title     string
	RoomName  string
	Start     string
	End       string
	Approved  bool
	Reason    string
}

type TicketAssignedMail struct {
	TicketID uint
	Title    string
	Priority string
}

// Notifier is implemented by SMTPEmailService and DisabledEmailService.
type Notifier interface {
	SendMeetingDecision(to string, mail MeetingDecisionMail) error
	SendTicketAssigned(to string, mail TicketAssignedMail) error
}

// DisabledEmailService stands in when email.enabled is false.
type DisabledEmailService struct {
	logger logger.Interface
}

func NewDisabledEmailService(logger logger.Interface) *DisabledEmailService {
	return &DisabledEmailService{logger: logger}
}

func (d *DisabledEmailService) SendMeetingDecision(to string, mail MeetingDecisionMail) error {
	d.logger.Debugw("email disabled, skipping meeting decision", "to", to, "meeting_id", mail.MeetingID)
	return ErrEmailServiceNotConfigured
}

func (d *DisabledEmailService) SendTicketAssigned(to string, mail TicketAssignedMail) error {
	d.logger.Debugw("email disabled, skipping ticket assignment", "to", to, "ticket_id", mail.TicketID)
	return ErrEmailServiceNotConfigured
}

var (
	_ Notifier = (*SMTPEmailService)(nil)
	_ Notifier = (*DisabledEmailService)(nil)
)
