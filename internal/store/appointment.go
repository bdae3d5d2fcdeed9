package store

import (
	"context"
	"fmt"
	"time"

	"door-booking-api/internal/model"
)

const apptCols = `id, user_id, date, time_slot, door_type,
	COALESCE(comment,''), COALESCE(invoice_number,''), COALESCE(address,''),
	is_weekend, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }, a *model.Appointment) error {
	return row.Scan(&a.ID, &a.UserID, &a.Date, &a.TimeSlot, &a.DoorType,
		&a.Comment, &a.InvoiceNumber, &a.Address,
		&a.IsWeekend, &a.CreatedAt, &a.UpdatedAt)
}

// CreateAppointment inserts inside a transaction that first checks the
// (date, time_slot, door_type) slot; the check only exists to return
// ErrSlotTaken instead of a raw constraint violation.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointments
		 WHERE date = $1 AND time_slot = $2 AND door_type = $3)`,
		a.Date, a.TimeSlot, a.DoorType).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrSlotTaken
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO appointments
		 (id, user_id, date, time_slot, door_type, comment, invoice_number, address, is_weekend, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())`,
		a.ID, a.UserID, a.Date, a.TimeSlot, a.DoorType,
		a.Comment, a.InvoiceNumber, a.Address, a.IsWeekend,
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpdateAppointment rewrites the row, re-checking the slot against all
// other appointments in the same transaction.
func (s *Store) UpdateAppointment(ctx context.Context, a *model.Appointment) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointments
		 WHERE date = $1 AND time_slot = $2 AND door_type = $3 AND id != $4)`,
		a.Date, a.TimeSlot, a.DoorType, a.ID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrSlotTaken
	}

	_, err = tx.Exec(ctx,
		`UPDATE appointments
		 SET date=$1, time_slot=$2, door_type=$3, comment=$4, invoice_number=$5,
		     address=$6, is_weekend=$7, updated_at=NOW()
		 WHERE id=$8`,
		a.Date, a.TimeSlot, a.DoorType, a.Comment, a.InvoiceNumber,
		a.Address, a.IsWeekend, a.ID,
	)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := scanAppointment(s.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

// AppointmentFilter narrows list and calendar reads. VisibleDoor with
// OwnerID is the installer read policy: a row matches when it is of
// the visible door type or belongs to the owner.
type AppointmentFilter struct {
	From        time.Time
	To          time.Time
	DoorType    model.DoorType
	VisibleDoor model.DoorType
	OwnerID     string
}

func (f AppointmentFilter) where() (string, []any) {
	q := ""
	var args []any
	add := func(clause string, v any) {
		args = append(args, v)
		q += " AND " + fmt.Sprintf(clause, len(args))
	}
	if !f.From.IsZero() {
		add(`date >= $%d`, f.From)
	}
	if !f.To.IsZero() {
		add(`date <= $%d`, f.To)
	}
	if f.DoorType != "" {
		add(`door_type = $%d`, f.DoorType)
	}
	if f.VisibleDoor != "" {
		args = append(args, f.VisibleDoor, f.OwnerID)
		q += fmt.Sprintf(` AND (door_type = $%d OR user_id = $%d)`, len(args)-1, len(args))
	}
	return q, args
}

func (s *Store) ListAppointments(ctx context.Context, f AppointmentFilter) ([]model.Appointment, error) {
	where, args := f.where()
	rows, err := s.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE TRUE`+where+
			` ORDER BY date, time_slot`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ListAppointmentsWithOwner joins the owner row for the calendar's
// denormalized user snapshot.
func (s *Store) ListAppointmentsWithOwner(ctx context.Context, f AppointmentFilter) ([]model.AppointmentWithOwner, error) {
	where, args := f.where()
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.user_id, a.date, a.time_slot, a.door_type,
		        COALESCE(a.comment,''), COALESCE(a.invoice_number,''), COALESCE(a.address,''),
		        a.is_weekend, a.created_at, a.updated_at,
		        u.id, u.username, u.role, u.user_color
		 FROM appointments a
		 JOIN users u ON u.id = a.user_id
		 WHERE TRUE`+where+
			` ORDER BY a.date, a.time_slot`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AppointmentWithOwner
	for rows.Next() {
		var a model.AppointmentWithOwner
		err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.TimeSlot, &a.DoorType,
			&a.Comment, &a.InvoiceNumber, &a.Address,
			&a.IsWeekend, &a.CreatedAt, &a.UpdatedAt,
			&a.Owner.ID, &a.Owner.Username, &a.Owner.Role, &a.Owner.Color)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AppointmentsOnDate feeds the reminder sweep.
func (s *Store) AppointmentsOnDate(ctx context.Context, date time.Time) ([]model.Appointment, error) {
	return s.ListAppointments(ctx, AppointmentFilter{From: date, To: date})
}
