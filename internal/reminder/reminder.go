// Package reminder generates next-day booking reminders. The sweep is
// idempotent, so running it on a timer, at startup, or both never
// duplicates a notification.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"door-booking-api/internal/model"
	"door-booking-api/internal/store"
)

type Sweeper struct {
	store    *store.Store
	logger   *zap.Logger
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func New(st *store.Store, logger *zap.Logger, interval time.Duration) *Sweeper {
	return &Sweeper{
		store:    st,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start sweeps once immediately, then on every tick until Stop.
func (s *Sweeper) Start() {
	go func() {
		defer close(s.done)
		s.sweep()
		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := s.SweepOnce(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("reminder sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		s.logger.Info("reminders created", zap.Int("count", n))
	}
}

// SweepOnce creates a reminder for every appointment on the day after
// now that does not already have one for its owner, and returns how
// many it created.
func (s *Sweeper) SweepOnce(ctx context.Context, now time.Time) (int, error) {
	y, m, d := now.AddDate(0, 0, 1).Date()
	tomorrow := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	appts, err := s.store.AppointmentsOnDate(ctx, tomorrow)
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range appts {
		a := &appts[i]
		exists, err := s.store.NotificationExists(ctx, a.ID, a.UserID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		n := &model.Notification{
			ID:            uuid.New().String(),
			UserID:        a.UserID,
			AppointmentID: a.ID,
			Message:       Message(a),
		}
		if err := s.store.CreateNotification(ctx, n); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// Message renders the reminder text. The wording and date form are
// what the installer-facing UI expects.
func Message(a *model.Appointment) string {
	slot := "утро (9:00-13:00)"
	if a.TimeSlot == model.SlotAfternoon {
		slot = "вечер (15:00-18:00)"
	}
	door := "входных дверей"
	if a.DoorType == model.DoorInterior {
		door = "межкомнатных дверей"
	}

	msg := fmt.Sprintf("Напоминание: завтра (%s) у вас запланирована установка %s, %s",
		a.Date.Format("02.01.2006"), door, slot)
	if a.Address != "" {
		msg += ", по адресу: " + a.Address
	}
	if a.InvoiceNumber != "" {
		msg += ", накладная №" + a.InvoiceNumber
	}
	return msg
}
