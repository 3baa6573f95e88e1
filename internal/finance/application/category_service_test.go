package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
	financeErrors "github.com/riskimanta/expense-tracker/internal/finance/errors"
	"github.com/riskimanta/expense-tracker/internal/finance/infrastructure"
)

func TestCreateCategory(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category := &domain.Category{Name: "Groceries", Type: "EXPENSE", Color: "green"}
	err := service.CreateCategory(category)

	assert.NoError(t, err)
	assert.Equal(t, 1, category.ID)
	assert.Equal(t, 1, len(repo.Categories))
}

func TestCreateCategory_MissingName(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	err := service.CreateCategory(&domain.Category{Name: "   ", Type: "EXPENSE"})

	assert.Error(t, err)
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Equal(t, "Category name is required", err.Error())
}

func TestCreateCategory_MissingType(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	err := service.CreateCategory(&domain.Category{Name: "Groceries"})

	assert.Error(t, err)
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Equal(t, "Category type is required", err.Error())
}

func TestUpdateCategory_PartialPatch(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category := &domain.Category{Name: "Food", Type: "EXPENSE", Color: "red"}
	assert.NoError(t, service.CreateCategory(category))

	blue := "blue"
	updated, err := service.UpdateCategory(category.ID, domain.CategoryPatch{Color: &blue})

	assert.NoError(t, err)
	assert.Equal(t, "Food", updated.Name)
	assert.Equal(t, "EXPENSE", updated.Type)
	assert.Equal(t, "blue", updated.Color)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	_, err := service.UpdateCategory(99, domain.CategoryPatch{})

	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestGetCategoryByID_NotFound(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	_, err := service.GetCategoryByID(99)

	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}

func TestGetCategoriesByType(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	assert.NoError(t, service.CreateCategory(&domain.Category{Name: "Salary", Type: "INCOME"}))
	assert.NoError(t, service.CreateCategory(&domain.Category{Name: "Food", Type: "EXPENSE"}))

	categories, err := service.GetCategoriesByType("EXPENSE")

	assert.NoError(t, err)
	assert.Equal(t, 1, len(categories))
	assert.Equal(t, "Food", categories[0].Name)
}

func TestDeleteCategory(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category := &domain.Category{Name: "Food", Type: "EXPENSE"}
	assert.NoError(t, service.CreateCategory(category))

	assert.NoError(t, service.DeleteCategory(category.ID))

	err := service.DeleteCategory(category.ID)
	assert.Error(t, err)
	assert.True(t, financeErrors.IsNotFoundError(err))
}
