package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"door-booking-api/internal/middleware"
	"door-booking-api/internal/model"
)

// Calendar returns bookings grouped per day into morning/afternoon
// slots, each enriched with the owner snapshot. Defaults to the
// current UTC month; days without bookings are omitted.
func (h *Handler) Calendar(c *gin.Context) {
	f, err := dateRangeFilter(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if f.From.IsZero() {
		f.From = firstOfMonth(time.Now().UTC())
	}
	if f.To.IsZero() {
		f.To = endOfMonth(f.From)
	}

	// the installer read filter applies only when no explicit
	// door_type was asked for
	if f.DoorType == "" {
		if door, ok := middleware.CallerRole(c).DoorFilter(); ok {
			f.VisibleDoor = door
			f.OwnerID = middleware.UserID(c)
		}
	}

	appts, err := h.store.ListAppointmentsWithOwner(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": groupCalendar(appts)})
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func endOfMonth(t time.Time) time.Time {
	return firstOfMonth(t).AddDate(0, 1, -1)
}

func groupCalendar(appts []model.AppointmentWithOwner) []gin.H {
	days := make([]gin.H, 0)
	index := make(map[string]gin.H)
	for i := range appts {
		a := &appts[i]
		date := a.Date.Format(model.DateFormat)
		day, ok := index[date]
		if !ok {
			day = gin.H{"date": date, "morning": nil, "afternoon": nil}
			index[date] = day
			days = append(days, day)
		}
		day[string(a.TimeSlot)] = calendarSlotJSON(a)
	}
	return days
}

func calendarSlotJSON(a *model.AppointmentWithOwner) gin.H {
	out := apptJSON(&a.Appointment)
	out["user"] = gin.H{
		"id":         a.Owner.ID,
		"username":   a.Owner.Username,
		"role":       a.Owner.Role,
		"user_color": a.Owner.Color,
	}
	return out
}
