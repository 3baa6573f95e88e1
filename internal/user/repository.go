package user

import (
	"database/sql"
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	findAll() ([]User, error)
	findByID(id int) (*User, error)
	findByEmail(email string) (*User, error)
	existsByEmail(email string) (bool, error)
	create(user *User) error
	update(user *User) error
	delete(id int) (bool, error)
	findByRole(role Role) ([]User, error)
	findByStatus(status Status) ([]User, error)
	countByRole(role Role) (int64, error)
	search(name, email string) ([]User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{
		db: db,
	}
}

const userColumns = "id, name, email, password_hash, role, status, created_at, updated_at"

func scanUser(row interface{ Scan(...interface{}) error }, user *User) error {
	return row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) queryUsers(query string, args ...interface{}) ([]User, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var user User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) findAll() ([]User, error) {
	return r.queryUsers("SELECT " + userColumns + " FROM users ORDER BY id")
}

func (r *userRepository) findByID(id int) (*User, error) {
	var user User
	err := scanUser(r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = $1", id), &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	return &user, nil
}

func (r *userRepository) findByEmail(email string) (*User, error) {
	var user User
	err := scanUser(r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = $1", email), &user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	return &user, nil
}

func (r *userRepository) existsByEmail(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists)
	return exists, err
}

func (r *userRepository) create(user *User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(query, user.Name, user.Email, user.PasswordHash, user.Role, user.Status).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	return nil
}

func (r *userRepository) update(user *User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, role = $4, status = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at;
	`
	err := r.db.QueryRow(query, user.Name, user.Email, user.PasswordHash, user.Role, user.Status, user.ID).
		Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("could not update user: %v", err)
	}
	return nil
}

func (r *userRepository) delete(id int) (bool, error) {
	result, err := r.db.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("could not delete user: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *userRepository) findByRole(role Role) ([]User, error) {
	return r.queryUsers("SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY id", role)
}

func (r *userRepository) findByStatus(status Status) ([]User, error) {
	return r.queryUsers("SELECT "+userColumns+" FROM users WHERE status = $1 ORDER BY id", status)
}

func (r *userRepository) countByRole(role Role) (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM users WHERE role = $1", role).Scan(&count)
	return count, err
}

// search matches a name substring or an email substring. Empty inputs make
// both patterns match everything, so calling it with neither returns all users.
func (r *userRepository) search(name, email string) ([]User, error) {
	return r.queryUsers(
		"SELECT "+userColumns+" FROM users WHERE name LIKE '%' || $1 || '%' OR email LIKE '%' || $2 || '%' ORDER BY id",
		name, email,
	)
}
