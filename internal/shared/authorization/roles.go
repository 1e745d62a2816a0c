// Package authorization holds the role vocabulary carried in access tokens and
// the ownership rule shared by meeting and ticket handlers. Fine-grained
// resource permissions are enforced by casbin in the permission middleware.
package authorization

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleApprover UserRole = "approver"
	RoleHelpdesk UserRole = "helpdesk"
	RoleStaff    UserRole = "staff"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleApprover, RoleHelpdesk, RoleStaff:
		return true
	}
	return false
}

// ParseUserRole falls back to staff for anything unrecognised.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleStaff
}

// CanModifyOwned reports whether the actor may change a record created by ownerID.
func CanModifyOwned(actorID uint, actorRole UserRole, ownerID uint) bool {
	return actorRole.IsAdmin() || actorID == ownerID
}

// CanHandleTicket extends CanModifyOwned to helpdesk staff, who work every ticket.
func CanHandleTicket(actorID uint, actorRole UserRole, reporterID uint) bool {
	return actorRole == RoleHelpdesk || CanModifyOwned(actorID, actorRole, reporterID)
}
