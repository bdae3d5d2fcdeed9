package handler

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"door-booking-api/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		in, first, last time.Time
	}{
		{day(2025, 3, 15), day(2025, 3, 1), day(2025, 3, 31)},
		{day(2025, 2, 1), day(2025, 2, 1), day(2025, 2, 28)},
		{day(2024, 2, 29), day(2024, 2, 1), day(2024, 2, 29)},
		{day(2025, 12, 31), day(2025, 12, 1), day(2025, 12, 31)},
	}
	for _, tt := range tests {
		if got := firstOfMonth(tt.in); !got.Equal(tt.first) {
			t.Errorf("firstOfMonth(%v) = %v, want %v", tt.in, got, tt.first)
		}
		if got := endOfMonth(tt.in); !got.Equal(tt.last) {
			t.Errorf("endOfMonth(%v) = %v, want %v", tt.in, got, tt.last)
		}
	}
}

func TestGroupCalendar(t *testing.T) {
	owner := model.Owner{ID: "u1", Username: "bob", Role: model.RoleInstallerEntrance, Color: "#3498db"}
	appts := []model.AppointmentWithOwner{
		{Appointment: model.Appointment{ID: "a1", Date: day(2025, 3, 15), TimeSlot: model.SlotMorning, DoorType: model.DoorEntrance}, Owner: owner},
		{Appointment: model.Appointment{ID: "a2", Date: day(2025, 3, 17), TimeSlot: model.SlotMorning, DoorType: model.DoorEntrance}, Owner: owner},
		{Appointment: model.Appointment{ID: "a3", Date: day(2025, 3, 17), TimeSlot: model.SlotAfternoon, DoorType: model.DoorEntrance}, Owner: owner},
	}

	days := groupCalendar(appts)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2 (empty days omitted)", len(days))
	}

	first := days[0]
	if first["date"] != "2025-03-15" {
		t.Errorf("first day = %v", first["date"])
	}
	if first["morning"] == nil {
		t.Error("morning slot should be populated")
	}
	if first["afternoon"] != nil {
		t.Error("afternoon slot should be null")
	}

	second := days[1]
	if second["date"] != "2025-03-17" {
		t.Errorf("second day = %v", second["date"])
	}
	if second["morning"] == nil || second["afternoon"] == nil {
		t.Error("both slots should be populated")
	}

	slot, _ := first["morning"].(gin.H)
	if slot == nil {
		t.Fatalf("slot payload type %T", first["morning"])
	}
	user, _ := slot["user"].(gin.H)
	if user == nil {
		t.Fatal("missing owner snapshot")
	}
	if user["username"] != "bob" || user["user_color"] != "#3498db" {
		t.Errorf("owner snapshot = %v", user)
	}
}

func TestGroupCalendarEmpty(t *testing.T) {
	if days := groupCalendar(nil); len(days) != 0 {
		t.Errorf("got %d days", len(days))
	}
}
