package domain

import "time"

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // semantic values like "INCOME"/"EXPENSE", stored as-is
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"is_default"`
	UserID    *int      `json:"user_id"` // nil means a global/default category
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryPatch carries a partial update: nil fields preserve the stored value.
type CategoryPatch struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(categoryID int) (*Category, error)
	FindByType(categoryType string) ([]Category, error)
	FindByUser(userID int) ([]Category, error)
	Save(category *Category) error
	Update(category Category) error
	Delete(categoryID int) (bool, error)
}
