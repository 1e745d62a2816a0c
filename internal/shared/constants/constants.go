package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeJSON = "application/json"

	// gin context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyWingID    = "wing_id"
	ContextKeyRequestID = "request_id"

	// DefaultSopVersion is used when a document is created without a version.
	DefaultSopVersion = "1.0"

	// MaxUploadBytes caps multipart SOP uploads.
	MaxUploadBytes = 32 << 20

	TableUsers             = "users"
	TableRooms             = "rooms"
	TableMeetings          = "meetings"
	TableMeetingStatuses   = "meeting_statuses"
	TableMeetingAttendees  = "meeting_attendees"
	TableSops              = "sops"
	TableSopFiles          = "sop_files"
	TableHelpdeskTickets   = "helpdesk_tickets"
	TableTicketAssignments = "ticket_assignments"

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
