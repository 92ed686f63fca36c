package models

import "testing"

func TestUserFullName(t *testing.T) {
	u := &User{FirstName: "Asha", LastName: "Devi"}
	if got := u.FullName(); got != "Asha Devi" {
		t.Errorf("FullName() = %q, want %q", got, "Asha Devi")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleOwner, RoleFrontDesk, RoleFieldOfficer} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "admin", "Owner"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true, want false", role)
		}
	}
}
