package user

import (
	"strings"
	"time"
)

// mockRepository keeps users in memory for service and handler tests.
type mockRepository struct {
	users  []User
	nextID int
}

func newMockRepository() *mockRepository {
	return &mockRepository{}
}

func (m *mockRepository) findAll() ([]User, error) {
	return m.users, nil
}

func (m *mockRepository) findByID(id int) (*User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			user := m.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) findByEmail(email string) (*User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			user := m.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) existsByEmail(email string) (bool, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) create(user *User) error {
	if m.nextID == 0 {
		m.nextID = 1
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users = append(m.users, *user)
	return nil
}

func (m *mockRepository) update(user *User) error {
	for i := range m.users {
		if m.users[i].ID == user.ID {
			user.UpdatedAt = time.Now()
			m.users[i] = *user
			return nil
		}
	}
	return ErrUserNotFound
}

func (m *mockRepository) delete(id int) (bool, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) findByRole(role Role) ([]User, error) {
	var filtered []User
	for _, user := range m.users {
		if user.Role == role {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

func (m *mockRepository) findByStatus(status Status) ([]User, error) {
	var filtered []User
	for _, user := range m.users {
		if user.Status == status {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

func (m *mockRepository) countByRole(role Role) (int64, error) {
	var count int64
	for _, user := range m.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func (m *mockRepository) search(name, email string) ([]User, error) {
	var matched []User
	for _, user := range m.users {
		if strings.Contains(user.Name, name) || strings.Contains(user.Email, email) {
			matched = append(matched, user)
		}
	}
	return matched, nil
}
