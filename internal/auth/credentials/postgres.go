package credentials

import (
	"context"
	"database/sql"
)

// PostgresDirectory reads users from the users table. Rows are seeded out
// of band (see internal/db); this directory never writes.
type PostgresDirectory struct {
	db *sql.DB
}

func NewPostgresDirectory(db *sql.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {

	var u User

	err := d.db.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
