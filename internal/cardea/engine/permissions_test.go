package engine_test

import (
	"testing"

	"github.com/cardea-access/cardea/internal/cardea/engine"
	"github.com/cardea-access/cardea/internal/cardea/types"
)

func TestRoleHas_AllRolesMayUnlock(t *testing.T) {
	roles := []types.Role{
		types.RoleAdmin,
		types.RoleApartmentAdmin,
		types.RoleUser,
		types.RoleGuest,
	}
	for _, r := range roles {
		if !engine.RoleHas(r, engine.PermDoorUnlock) {
			t.Errorf("expected role %s to hold %s", r, engine.PermDoorUnlock)
		}
	}
}

func TestRoleHas_ManagementIsAdminOnly(t *testing.T) {
	if engine.RoleHas(types.RoleUser, engine.PermManageSubjects) {
		t.Error("user must not manage subjects")
	}
	if engine.RoleHas(types.RoleGuest, engine.PermManageSchedules) {
		t.Error("guest must not manage schedules")
	}
	if !engine.RoleHas(types.RoleApartmentAdmin, engine.PermManageSchedules) {
		t.Error("apartment admin manages guest schedules")
	}
	if !engine.RoleHas(types.RoleAdmin, engine.PermViewAudit) {
		t.Error("admin views the audit log")
	}
}

func TestRoleHas_UnknownRoleHoldsNothing(t *testing.T) {
	if engine.RoleHas(types.Role("janitor"), engine.PermDoorUnlock) {
		t.Error("unknown role must hold no permissions")
	}
}
