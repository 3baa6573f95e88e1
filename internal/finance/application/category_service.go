package application

import (
	"strings"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
	financeErrors "github.com/riskimanta/expense-tracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	return s.repo.FindAll()
}

func (s *CategoryService) GetCategoryByID(categoryID int) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.NewNotFoundError("Category not found")
	}
	return category, nil
}

func (s *CategoryService) GetCategoriesByType(categoryType string) ([]domain.Category, error) {
	return s.repo.FindByType(categoryType)
}

func (s *CategoryService) GetCategoriesByUser(userID int) ([]domain.Category, error) {
	return s.repo.FindByUser(userID)
}

// CreateCategory requires name and type; everything else is stored as-is.
func (s *CategoryService) CreateCategory(category *domain.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return financeErrors.NewValidationError("Category name is required")
	}
	if category.Type == "" {
		return financeErrors.NewValidationError("Category type is required")
	}
	return s.repo.Save(category)
}

// UpdateCategory applies a partial patch: only non-nil fields overwrite the
// stored values.
func (s *CategoryService) UpdateCategory(categoryID int, patch domain.CategoryPatch) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, financeErrors.NewNotFoundError("Category not found")
	}

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Type != nil {
		category.Type = *patch.Type
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}
	if patch.Icon != nil {
		category.Icon = *patch.Icon
	}

	if err := s.repo.Update(*category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(categoryID int) error {
	deleted, err := s.repo.Delete(categoryID)
	if err != nil {
		return err
	}
	if !deleted {
		return financeErrors.NewNotFoundError("Category not found")
	}
	return nil
}
