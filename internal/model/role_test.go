package model

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range Roles {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, r := range []Role{"", "superuser", "installer", "Admin"} {
		if r.Valid() {
			t.Errorf("%q should be invalid", r)
		}
	}
}

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role       Role
		privileged bool
		writes     map[DoorType]bool
	}{
		{RoleAdmin, true, map[DoorType]bool{DoorEntrance: true, DoorInterior: true}},
		{RoleManager, true, map[DoorType]bool{DoorEntrance: true, DoorInterior: true}},
		{RoleInstallerEntrance, false, map[DoorType]bool{DoorEntrance: true, DoorInterior: false}},
		{RoleInstallerInterior, false, map[DoorType]bool{DoorEntrance: false, DoorInterior: true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if tt.role.Privileged() != tt.privileged {
				t.Errorf("Privileged() = %v, want %v", tt.role.Privileged(), tt.privileged)
			}
			for door, want := range tt.writes {
				if got := tt.role.CanWriteDoor(door); got != want {
					t.Errorf("CanWriteDoor(%s) = %v, want %v", door, got, want)
				}
			}
		})
	}
}

func TestDoorFilter(t *testing.T) {
	if _, ok := RoleAdmin.DoorFilter(); ok {
		t.Error("admin should not have a door filter")
	}
	if _, ok := RoleManager.DoorFilter(); ok {
		t.Error("manager should not have a door filter")
	}
	if d, ok := RoleInstallerEntrance.DoorFilter(); !ok || d != DoorEntrance {
		t.Errorf("entrance installer filter = %s, %v", d, ok)
	}
	if d, ok := RoleInstallerInterior.DoorFilter(); !ok || d != DoorInterior {
		t.Errorf("interior installer filter = %s, %v", d, ok)
	}
}

func TestCanAccess(t *testing.T) {
	appt := &Appointment{ID: "a1", UserID: "owner", DoorType: DoorEntrance}

	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"admin sees all", &User{ID: "x", Role: RoleAdmin}, true},
		{"manager sees all", &User{ID: "x", Role: RoleManager}, true},
		{"owner sees own", &User{ID: "owner", Role: RoleInstallerInterior}, true},
		{"matching specialization", &User{ID: "x", Role: RoleInstallerEntrance}, true},
		{"wrong specialization", &User{ID: "x", Role: RoleInstallerInterior}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.user, appt); got != tt.want {
				t.Errorf("CanAccess = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Year() != 2025 || d.Month() != 3 || d.Day() != 10 {
		t.Errorf("got %v", d)
	}
	if d.Location() != nil && d.Location().String() != "UTC" {
		t.Errorf("expected UTC, got %v", d.Location())
	}

	for _, bad := range []string{"", "10.03.2025", "2025-3-10", "2025-03-10T00:00:00Z", "2025-13-01", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}
