package models

// All lists every persisted model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&RoomModel{},
		&MeetingModel{},
		&MeetingStatusModel{},
		&MeetingAttendeeModel{},
		&SopModel{},
		&SopFileModel{},
		&HelpdeskTicketModel{},
		&TicketAssignmentModel{},
	}
}
