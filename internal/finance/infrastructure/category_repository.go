package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/riskimanta/expense-tracker/internal/finance/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = "id, name, type, color, icon, is_default, user_id, created_at, updated_at"

func scanCategory(row interface{ Scan(...interface{}) error }, category *domain.Category) error {
	return row.Scan(&category.ID, &category.Name, &category.Type, &category.Color, &category.Icon,
		&category.IsDefault, &category.UserID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *CategoryRepository) queryCategories(query string, args ...interface{}) ([]domain.Category, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := scanCategory(rows, &category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	return r.queryCategories("SELECT " + categoryColumns + " FROM categories ORDER BY id")
}

func (r *CategoryRepository) FindByID(categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := scanCategory(r.db.QueryRow("SELECT "+categoryColumns+" FROM categories WHERE id = $1", categoryID), &category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByType(categoryType string) ([]domain.Category, error) {
	return r.queryCategories("SELECT "+categoryColumns+" FROM categories WHERE type = $1 ORDER BY id", categoryType)
}

func (r *CategoryRepository) FindByUser(userID int) ([]domain.Category, error) {
	return r.queryCategories("SELECT "+categoryColumns+" FROM categories WHERE user_id = $1 ORDER BY id", userID)
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := `
		INSERT INTO categories (name, type, color, icon, is_default, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, category.Name, category.Type, category.Color, category.Icon,
		category.IsDefault, category.UserID).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *CategoryRepository) Update(category domain.Category) error {
	_, err := r.db.Exec(
		`UPDATE categories SET name = $1, type = $2, color = $3, icon = $4, updated_at = NOW() WHERE id = $5`,
		category.Name, category.Type, category.Color, category.Icon, category.ID,
	)
	return err
}

func (r *CategoryRepository) Delete(categoryID int) (bool, error) {
	result, err := r.db.Exec("DELETE FROM categories WHERE id = $1", categoryID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
