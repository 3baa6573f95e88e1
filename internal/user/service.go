package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnknownRole        = errors.New("unknown user role")
	ErrUnknownStatus      = errors.New("unknown user status")
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole maps external string input onto the closed role set.
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	}
	return "", ErrUnknownRole
}

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusInactive  Status = "INACTIVE"
	StatusSuspended Status = "SUSPENDED"
)

// ParseStatus maps external string input onto the closed status set.
func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(value))) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	case StatusSuspended:
		return StatusSuspended, nil
	}
	return "", ErrUnknownStatus
}

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Patch carries a partial update: nil fields preserve the stored value. A
// non-empty Password is re-hashed before it replaces the stored hash.
type Patch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

type Service interface {
	GetAllUsers() ([]User, error)
	GetUserByID(id int) (*User, error)
	GetUserByEmail(email string) (*User, error)
	CreateUser(name, email, password, role, status string) (*User, error)
	UpdateUser(id int, patch Patch) (*User, error)
	DeleteUser(id int) error
	GetUsersByRole(role Role) ([]User, error)
	GetUsersByStatus(status Status) ([]User, error)
	CountUsersByRole(role Role) (int64, error)
	SearchUsers(name, email string) ([]User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) GetAllUsers() ([]User, error) {
	return s.repo.findAll()
}

func (s *service) GetUserByID(id int) (*User, error) {
	return s.repo.findByID(id)
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.findByEmail(email)
}

// CreateUser hashes the password before anything touches the store and applies
// the USER/ACTIVE defaults when role or status is not supplied. The plaintext
// password is never persisted or logged.
func (s *service) CreateUser(name, email, password, role, status string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	exists, err := s.repo.existsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("could not check email: %v", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	userRole := RoleUser
	if role != "" {
		if userRole, err = ParseRole(role); err != nil {
			return nil, err
		}
	}
	userStatus := StatusActive
	if status != "" {
		if userStatus, err = ParseStatus(status); err != nil {
			return nil, err
		}
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         userRole,
		Status:       userStatus,
	}
	if err := s.repo.create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial patch: only supplied fields overwrite stored
// values, and the password is re-hashed only when a non-empty replacement
// arrives.
func (s *service) UpdateUser(id int, patch Patch) (*User, error) {
	user, err := s.repo.findByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		if err := validateEmailAddress(*patch.Email); err != nil {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		if user.Role, err = ParseRole(*patch.Role); err != nil {
			return nil, err
		}
	}
	if patch.Status != nil {
		if user.Status, err = ParseStatus(*patch.Status); err != nil {
			return nil, err
		}
	}
	if patch.Password != nil && *patch.Password != "" {
		if user.PasswordHash, err = hashPassword(*patch.Password); err != nil {
			return nil, fmt.Errorf("could not hash password: %v", err)
		}
	}

	if err := s.repo.update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) DeleteUser(id int) error {
	deleted, err := s.repo.delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (s *service) GetUsersByRole(role Role) ([]User, error) {
	return s.repo.findByRole(role)
}

func (s *service) GetUsersByStatus(status Status) ([]User, error) {
	return s.repo.findByStatus(status)
}

func (s *service) CountUsersByRole(role Role) (int64, error) {
	return s.repo.countByRole(role)
}

func (s *service) SearchUsers(name, email string) ([]User, error) {
	return s.repo.search(name, email)
}
