package model

type Role string

const (
	RoleAdmin             Role = "admin"
	RoleManager           Role = "manager"
	RoleInstallerEntrance Role = "installer_entrance"
	RoleInstallerInterior Role = "installer_interior"
)

// Roles lists every valid role, in the order they appear in error messages.
var Roles = []Role{RoleAdmin, RoleManager, RoleInstallerEntrance, RoleInstallerInterior}

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
)

type DoorType string

const (
	DoorEntrance DoorType = "entrance"
	DoorInterior DoorType = "interior"
)

// capability describes what a role may see and book.
// privileged roles read and write appointments of every user.
type capability struct {
	readDoorTypes  []DoorType
	writeDoorTypes []DoorType
	privileged     bool
}

var allDoors = []DoorType{DoorEntrance, DoorInterior}

var capabilities = map[Role]capability{
	RoleAdmin:             {readDoorTypes: allDoors, writeDoorTypes: allDoors, privileged: true},
	RoleManager:           {readDoorTypes: allDoors, writeDoorTypes: allDoors, privileged: true},
	RoleInstallerEntrance: {readDoorTypes: []DoorType{DoorEntrance}, writeDoorTypes: []DoorType{DoorEntrance}},
	RoleInstallerInterior: {readDoorTypes: []DoorType{DoorInterior}, writeDoorTypes: []DoorType{DoorInterior}},
}

func (r Role) Valid() bool {
	_, ok := capabilities[r]
	return ok
}

// Privileged reports whether the role sees and edits everyone's bookings.
func (r Role) Privileged() bool {
	return capabilities[r].privileged
}

// CanWriteDoor reports whether the role may create or move a booking
// to the given door type.
func (r Role) CanWriteDoor(dt DoorType) bool {
	for _, d := range capabilities[r].writeDoorTypes {
		if d == dt {
			return true
		}
	}
	return false
}

// DoorFilter returns the single door type a specialized installer is
// limited to reading. ok is false for privileged roles.
func (r Role) DoorFilter() (DoorType, bool) {
	c := capabilities[r]
	if c.privileged || len(c.readDoorTypes) != 1 {
		return "", false
	}
	return c.readDoorTypes[0], true
}

func (s TimeSlot) Valid() bool {
	return s == SlotMorning || s == SlotAfternoon
}

func (d DoorType) Valid() bool {
	return d == DoorEntrance || d == DoorInterior
}

// CanAccess reports whether u may view a: privileged roles see all,
// owners see their own, installers see their specialization.
func CanAccess(u *User, a *Appointment) bool {
	if u.Role.Privileged() {
		return true
	}
	if a.UserID == u.ID {
		return true
	}
	for _, d := range capabilities[u.Role].readDoorTypes {
		if d == a.DoorType {
			return true
		}
	}
	return false
}
