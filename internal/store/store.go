package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ErrSlotTaken is the friendly error for the in-transaction conflict
// check; the unique index on (date, time_slot, door_type) is the
// authoritative guard and surfaces as a unique violation when two
// writers race past the check.
var ErrSlotTaken = errors.New("slot already booked")

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
