package store

import (
	"context"

	"door-booking-api/internal/model"
)

const userCols = `id, username, email, password_hash, role, user_color, created_at, last_login`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Color, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, user_color, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,NOW())`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.Color,
	)
	return err
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(s.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM users WHERE username = $1`, username))
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+userCols+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (s *Store) UpdateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET username=$1, email=$2, password_hash=$3, role=$4, user_color=$5
		 WHERE id=$6`,
		u.Username, u.Email, u.PasswordHash, u.Role, u.Color, u.ID,
	)
	return err
}

// DeleteUser removes the user; owned appointments and notifications
// cascade at the schema level.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (s *Store) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, model.RoleAdmin).Scan(&n)
	return n, err
}

// UsernameTaken checks uniqueness against all rows other than
// excludeID; pass "" on create. The text cast keeps an empty exclude
// id from tripping the uuid parser.
func (s *Store) UsernameTaken(ctx context.Context, username, excludeID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 AND id::text <> $2)`,
		username, excludeID).Scan(&exists)
	return exists, err
}

func (s *Store) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id::text <> $2)`,
		email, excludeID).Scan(&exists)
	return exists, err
}

func (s *Store) TouchLastLogin(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET last_login = NOW() WHERE id = $1`, id)
	return err
}
