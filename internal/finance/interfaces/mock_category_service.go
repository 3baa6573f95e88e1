package interfaces

import (
	"github.com/riskimanta/expense-tracker/internal/finance/domain"
)

// MockCategoryService returns canned data, or Err when set.
type MockCategoryService struct {
	Categories []domain.Category
	Category   *domain.Category
	Err        error

	LastPatch domain.CategoryPatch
}

func (m *MockCategoryService) GetAllCategories() ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryService) GetCategoryByID(categoryID int) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) GetCategoriesByType(categoryType string) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryService) GetCategoriesByUser(userID int) ([]domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryService) CreateCategory(category *domain.Category) error {
	if m.Err != nil {
		return m.Err
	}
	category.ID = 1
	return nil
}

func (m *MockCategoryService) UpdateCategory(categoryID int, patch domain.CategoryPatch) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastPatch = patch
	return m.Category, nil
}

func (m *MockCategoryService) DeleteCategory(categoryID int) error {
	return m.Err
}
