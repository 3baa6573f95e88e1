package infrastructure

import (
	"errors"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
)

// MockCategoryRepository keeps categories in memory for service tests.
type MockCategoryRepository struct {
	Categories []domain.Category
	NextID     int
	ShouldFail bool
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	if m.ShouldFail {
		return nil, errors.New("repository error")
	}
	return m.Categories, nil
}

func (m *MockCategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	if m.ShouldFail {
		return nil, errors.New("repository error")
	}
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindByType(categoryType string) ([]domain.Category, error) {
	var filtered []domain.Category
	for _, category := range m.Categories {
		if category.Type == categoryType {
			filtered = append(filtered, category)
		}
	}
	return filtered, nil
}

func (m *MockCategoryRepository) FindByUser(userID int) ([]domain.Category, error) {
	var filtered []domain.Category
	for _, category := range m.Categories {
		if category.UserID != nil && *category.UserID == userID {
			filtered = append(filtered, category)
		}
	}
	return filtered, nil
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.ShouldFail {
		return errors.New("repository error")
	}
	if m.NextID == 0 {
		m.NextID = 1
	}
	category.ID = m.NextID
	m.NextID++
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i] = category
			return nil
		}
	}
	return errors.New("category not found")
}

func (m *MockCategoryRepository) Delete(categoryID int) (bool, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
