package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"door-booking-api/internal/apperr"
	"door-booking-api/internal/middleware"
	"door-booking-api/internal/model"
	"door-booking-api/internal/store"
)

// dateRangeFilter parses the optional start_date / end_date / door_type
// query params shared by the list and calendar endpoints.
func dateRangeFilter(c *gin.Context) (store.AppointmentFilter, error) {
	var f store.AppointmentFilter
	if s := c.Query("start_date"); s != "" {
		d, err := model.ParseDate(s)
		if err != nil {
			return f, apperr.Validation("Invalid start_date format. Use YYYY-MM-DD")
		}
		f.From = d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := model.ParseDate(s)
		if err != nil {
			return f, apperr.Validation("Invalid end_date format. Use YYYY-MM-DD")
		}
		f.To = d
	}
	if s := c.Query("door_type"); s != "" {
		dt := model.DoorType(s)
		if !dt.Valid() {
			return f, apperr.Validation(`Invalid door_type. Must be "entrance" or "interior"`)
		}
		f.DoorType = dt
	}
	return f, nil
}

func (h *Handler) ListAppointments(c *gin.Context) {
	f, err := dateRangeFilter(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	// installers read their specialization plus their own bookings
	if door, ok := middleware.CallerRole(c).DoorFilter(); ok {
		f.VisibleDoor = door
		f.OwnerID = middleware.UserID(c)
	}

	appts, err := h.store.ListAppointments(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(appts))
	for i := range appts {
		out = append(out, apptJSON(&appts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"appointments": out})
}

type createApptReq struct {
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	DoorType      string `json:"door_type"`
	Comment       string `json:"comment"`
	InvoiceNumber string `json:"invoice_number"`
	Address       string `json:"address"`
	IsWeekend     bool   `json:"is_weekend"`
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req createApptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Validation("No data provided"))
		return
	}
	required := []struct{ name, val string }{
		{"date", req.Date},
		{"time_slot", req.TimeSlot},
		{"door_type", req.DoorType},
	}
	for _, f := range required {
		if f.val == "" {
			h.fail(c, apperr.Validation("Missing required field: "+f.name))
			return
		}
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		h.fail(c, apperr.Validation("Invalid date format. Use YYYY-MM-DD"))
		return
	}
	slot := model.TimeSlot(req.TimeSlot)
	if !slot.Valid() {
		h.fail(c, apperr.Validation(`Invalid time_slot. Must be "morning" or "afternoon"`))
		return
	}
	door := model.DoorType(req.DoorType)
	if !door.Valid() {
		h.fail(c, apperr.Validation(`Invalid door_type. Must be "entrance" or "interior"`))
		return
	}

	role := middleware.CallerRole(c)
	if !role.CanWriteDoor(door) {
		own, _ := role.DoorFilter()
		h.fail(c, apperr.Forbidden(fmt.Sprintf("You can only create %s door appointments", own)))
		return
	}
	if role == model.RoleManager && req.InvoiceNumber == "" {
		h.fail(c, apperr.Validation("Invoice number is required for managers"))
		return
	}

	a := &model.Appointment{
		ID:            uuid.New().String(),
		UserID:        middleware.UserID(c),
		Date:          date,
		TimeSlot:      slot,
		DoorType:      door,
		Comment:       req.Comment,
		InvoiceNumber: req.InvoiceNumber,
		Address:       req.Address,
		IsWeekend:     req.IsWeekend,
	}
	if err := h.store.CreateAppointment(c.Request.Context(), a); err != nil {
		h.fail(c, err)
		return
	}

	created, err := h.store.GetAppointment(c.Request.Context(), a.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment created successfully",
		"appointment": apptJSON(created),
	})
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := h.uuidParam(c, "Appointment not found")
	if !ok {
		return
	}
	a, err := h.store.GetAppointment(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		h.fail(c, apperr.NotFound("Appointment not found"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	caller := &model.User{ID: middleware.UserID(c), Role: middleware.CallerRole(c)}
	if !model.CanAccess(caller, a) {
		h.fail(c, apperr.Forbidden("You do not have permission to view this appointment"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": apptJSON(a)})
}

type updateApptReq struct {
	Date          *string `json:"date"`
	TimeSlot      *string `json:"time_slot"`
	DoorType      *string `json:"door_type"`
	Comment       *string `json:"comment"`
	InvoiceNumber *string `json:"invoice_number"`
	Address       *string `json:"address"`
	IsWeekend     *bool   `json:"is_weekend"`
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := h.uuidParam(c, "Appointment not found")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	a, err := h.store.GetAppointment(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		h.fail(c, apperr.NotFound("Appointment not found"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	role := middleware.CallerRole(c)
	if role != model.RoleAdmin && a.UserID != middleware.UserID(c) {
		h.fail(c, apperr.Forbidden("You do not have permission to update this appointment"))
		return
	}

	var req updateApptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperr.Validation("No data provided"))
		return
	}

	if req.Date != nil {
		date, err := model.ParseDate(*req.Date)
		if err != nil {
			h.fail(c, apperr.Validation("Invalid date format. Use YYYY-MM-DD"))
			return
		}
		a.Date = date
	}
	if req.TimeSlot != nil {
		slot := model.TimeSlot(*req.TimeSlot)
		if !slot.Valid() {
			h.fail(c, apperr.Validation(`Invalid time_slot. Must be "morning" or "afternoon"`))
			return
		}
		a.TimeSlot = slot
	}
	if req.DoorType != nil {
		door := model.DoorType(*req.DoorType)
		if !door.Valid() {
			h.fail(c, apperr.Validation(`Invalid door_type. Must be "entrance" or "interior"`))
			return
		}
		if !role.CanWriteDoor(door) {
			own, _ := role.DoorFilter()
			h.fail(c, apperr.Forbidden(fmt.Sprintf("You can only update to %s door type", own)))
			return
		}
		a.DoorType = door
	}
	if req.Comment != nil {
		a.Comment = *req.Comment
	}
	if req.InvoiceNumber != nil {
		a.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Address != nil {
		a.Address = *req.Address
	}
	if req.IsWeekend != nil {
		a.IsWeekend = *req.IsWeekend
	}

	if err := h.store.UpdateAppointment(ctx, a); err != nil {
		h.fail(c, err)
		return
	}

	updated, err := h.store.GetAppointment(ctx, a.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment updated successfully",
		"appointment": apptJSON(updated),
	})
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := h.uuidParam(c, "Appointment not found")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	a, err := h.store.GetAppointment(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		h.fail(c, apperr.NotFound("Appointment not found"))
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	if middleware.CallerRole(c) != model.RoleAdmin && a.UserID != middleware.UserID(c) {
		h.fail(c, apperr.Forbidden("You do not have permission to delete this appointment"))
		return
	}

	if err := h.store.DeleteAppointment(ctx, a.ID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
