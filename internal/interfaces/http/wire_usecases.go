package http

import (
	bookingUsecases "github.com/opsportal/opsportal/internal/application/booking/usecases"
	helpdeskUsecases "github.com/opsportal/opsportal/internal/application/helpdesk/usecases"
	roomUsecases "github.com/opsportal/opsportal/internal/application/room/usecases"
	sopUsecases "github.com/opsportal/opsportal/internal/application/sop/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Rooms
	roomUC *roomUsecases.RoomUseCase

	// Booking
	createMeetingUC     *bookingUsecases.CreateMeetingUseCase
	updateMeetingUC     *bookingUsecases.UpdateMeetingUseCase
	deleteMeetingUC     *bookingUsecases.DeleteMeetingUseCase
	getMeetingUC        *bookingUsecases.GetMeetingUseCase
	listMeetingsUC      *bookingUsecases.ListMeetingsUseCase
	changeStatusUC      *bookingUsecases.ChangeMeetingStatusUseCase
	listStatusHistoryUC *bookingUsecases.ListStatusHistoryUseCase
	attendeesUC         *bookingUsecases.ManageAttendeesUseCase
	availabilityUC      *bookingUsecases.CheckAvailabilityUseCase

	// SOP documents
	createSopUC     *sopUsecases.CreateSopUseCase
	uploadVersionUC *sopUsecases.UploadVersionUseCase
	getSopUC        *sopUsecases.GetSopUseCase
	listSopsUC      *sopUsecases.ListSopsUseCase
	listVersionsUC  *sopUsecases.ListVersionsUseCase
	deleteSopUC     *sopUsecases.DeleteSopUseCase

	// Helpdesk
	createTicketUC   *helpdeskUsecases.CreateTicketUseCase
	getTicketUC      *helpdeskUsecases.GetTicketUseCase
	listTicketsUC    *helpdeskUsecases.ListTicketsUseCase
	updateTicketUC   *helpdeskUsecases.UpdateTicketUseCase
	setAssignmentsUC *helpdeskUsecases.SetAssignmentsUseCase
	ticketLifecycle  *helpdeskUsecases.TicketLifecycleUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log

	c.ucs = &allUseCases{
		roomUC: roomUsecases.NewRoomUseCase(r.roomRepo, r.meetingRepo, log),

		createMeetingUC: bookingUsecases.NewCreateMeetingUseCase(
			r.meetingRepo, r.statusRepo, r.attendeeRepo, r.roomRepo, r.userRepo, c.txMgr, c.roomLocker, log),
		updateMeetingUC: bookingUsecases.NewUpdateMeetingUseCase(
			r.meetingRepo, r.statusRepo, r.attendeeRepo, r.roomRepo, r.userRepo, c.txMgr, c.roomLocker, log),
		deleteMeetingUC: bookingUsecases.NewDeleteMeetingUseCase(
			r.meetingRepo, r.statusRepo, r.attendeeRepo, c.txMgr, log),
		getMeetingUC:   bookingUsecases.NewGetMeetingUseCase(r.meetingRepo, r.statusRepo, r.attendeeRepo, log),
		listMeetingsUC: bookingUsecases.NewListMeetingsUseCase(r.meetingRepo, r.statusRepo, r.attendeeRepo, log),
		changeStatusUC: bookingUsecases.NewChangeMeetingStatusUseCase(
			r.meetingRepo, r.statusRepo, r.roomRepo, r.userRepo, c.notifier, log),
		listStatusHistoryUC: bookingUsecases.NewListStatusHistoryUseCase(r.meetingRepo, r.statusRepo, log),
		attendeesUC:         bookingUsecases.NewManageAttendeesUseCase(r.meetingRepo, r.attendeeRepo, r.userRepo, log),
		availabilityUC:      bookingUsecases.NewCheckAvailabilityUseCase(r.meetingRepo, r.statusRepo, r.roomRepo, log),

		createSopUC:     sopUsecases.NewCreateSopUseCase(r.sopRepo, r.lineageRepo, c.fileStore, c.txMgr, log),
		uploadVersionUC: sopUsecases.NewUploadVersionUseCase(r.sopRepo, r.lineageRepo, c.fileStore, c.txMgr, log),
		getSopUC:        sopUsecases.NewGetSopUseCase(r.sopRepo, r.lineageRepo, log),
		listSopsUC:      sopUsecases.NewListSopsUseCase(r.sopRepo, log),
		listVersionsUC:  sopUsecases.NewListVersionsUseCase(r.sopRepo, r.lineageRepo, log),
		deleteSopUC:     sopUsecases.NewDeleteSopUseCase(r.sopRepo, r.lineageRepo, c.txMgr, log),

		createTicketUC: helpdeskUsecases.NewCreateTicketUseCase(
			r.ticketRepo, r.assignmentRepo, r.userRepo, c.notifier, c.markdown, c.txMgr, log),
		getTicketUC:   helpdeskUsecases.NewGetTicketUseCase(r.ticketRepo, r.assignmentRepo, c.markdown, log),
		listTicketsUC: helpdeskUsecases.NewListTicketsUseCase(r.ticketRepo, r.assignmentRepo, c.markdown, log),
		updateTicketUC: helpdeskUsecases.NewUpdateTicketUseCase(
			r.ticketRepo, r.assignmentRepo, r.userRepo, c.notifier, c.markdown, c.txMgr, log),
		setAssignmentsUC: helpdeskUsecases.NewSetAssignmentsUseCase(
			r.ticketRepo, r.assignmentRepo, r.userRepo, c.notifier, c.markdown, c.txMgr, log),
		ticketLifecycle: helpdeskUsecases.NewTicketLifecycleUseCase(r.ticketRepo, r.assignmentRepo, c.markdown, log),
	}
}
