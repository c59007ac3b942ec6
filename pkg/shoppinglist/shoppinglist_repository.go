package shoppinglist

import (
	"Foodgram-Backend/domain"
	"context"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		GetCartIngredientLines(ctx context.Context, userID string) ([]domain.CartIngredientLine, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// GetCartIngredientLines returns every ingredient line of every recipe in
// the user's shopping cart, in line insertion order, with the ingredient
// name and measurement unit joined in. Grouping and summing happen in the
// service so the first-encountered order is preserved.
func (r *shoppingListRepository) GetCartIngredientLines(ctx context.Context, userID string) ([]domain.CartIngredientLine, error) {
	var lines []domain.CartIngredientLine
	if err := r.db.WithContext(ctx).
		Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, recipe_ingredients.amount AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = recipe_ingredients.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Order("shopping_carts.created_at asc, recipe_ingredients.created_at asc").
		Scan(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
