package reminder

import (
	"testing"
	"time"

	"door-booking-api/internal/model"
)

func appt(slot model.TimeSlot, door model.DoorType, address, invoice string) *model.Appointment {
	return &model.Appointment{
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:      slot,
		DoorType:      door,
		Address:       address,
		InvoiceNumber: invoice,
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		a    *model.Appointment
		want string
	}{
		{
			"morning entrance",
			appt(model.SlotMorning, model.DoorEntrance, "", ""),
			"Напоминание: завтра (10.03.2025) у вас запланирована установка входных дверей, утро (9:00-13:00)",
		},
		{
			"afternoon interior",
			appt(model.SlotAfternoon, model.DoorInterior, "", ""),
			"Напоминание: завтра (10.03.2025) у вас запланирована установка межкомнатных дверей, вечер (15:00-18:00)",
		},
		{
			"with address",
			appt(model.SlotMorning, model.DoorEntrance, "ул. Ленина 5", ""),
			"Напоминание: завтра (10.03.2025) у вас запланирована установка входных дверей, утро (9:00-13:00), по адресу: ул. Ленина 5",
		},
		{
			"with address and invoice",
			appt(model.SlotMorning, model.DoorEntrance, "ул. Ленина 5", "12-345"),
			"Напоминание: завтра (10.03.2025) у вас запланирована установка входных дверей, утро (9:00-13:00), по адресу: ул. Ленина 5, накладная №12-345",
		},
		{
			"invoice only",
			appt(model.SlotAfternoon, model.DoorEntrance, "", "77"),
			"Напоминание: завтра (10.03.2025) у вас запланирована установка входных дверей, вечер (15:00-18:00), накладная №77",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.a); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}
