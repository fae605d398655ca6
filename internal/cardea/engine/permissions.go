package engine

import "github.com/cardea-access/cardea/internal/cardea/types"

// Permission is a single capability a role may hold.
type Permission string

const (
	PermDoorUnlock      Permission = "door:unlock"
	PermManageSubjects  Permission = "subjects:manage"
	PermManageSchedules Permission = "guests:manage_schedules"
	PermReaderControl   Permission = "reader:control"
	PermViewAudit       Permission = "audit:view"
)

// rolePermissions is the role→permission matrix. It is built once at package
// init and never mutated afterwards, so both the scan loop and the gateway
// read it without locking. Adding a role means a restart.
var rolePermissions = buildMatrix()

func buildMatrix() map[types.Role]map[Permission]struct{} {
	grants := map[types.Role][]Permission{
		types.RoleAdmin: {
			PermDoorUnlock,
			PermManageSubjects,
			PermManageSchedules,
			PermReaderControl,
			PermViewAudit,
		},
		types.RoleApartmentAdmin: {
			PermDoorUnlock,
			PermManageSubjects,
			PermManageSchedules,
		},
		types.RoleUser: {
			PermDoorUnlock,
		},
		types.RoleGuest: {
			// Unlock is additionally gated by an active guest schedule.
			PermDoorUnlock,
		},
	}

	m := make(map[types.Role]map[Permission]struct{}, len(grants))
	for role, perms := range grants {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		m[role] = set
	}
	return m
}

// RoleHas reports whether the role holds the permission. Unknown roles hold
// nothing.
func RoleHas(role types.Role, p Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = set[p]
	return ok
}
