package recipe

import (
	"Foodgram-Backend/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIngredientLines(t *testing.T) {
	valid := []domain.RecipeIngredientRequest{
		{ID: "a", Amount: 1},
		{ID: "b", Amount: 10},
	}
	assert.NoError(t, ValidateIngredientLines(valid))

	assert.ErrorIs(t, ValidateIngredientLines(nil), domain.ErrNoIngredients)
	assert.ErrorIs(t, ValidateIngredientLines([]domain.RecipeIngredientRequest{}), domain.ErrNoIngredients)

	duplicate := []domain.RecipeIngredientRequest{
		{ID: "a", Amount: 1},
		{ID: "a", Amount: 2},
	}
	assert.ErrorIs(t, ValidateIngredientLines(duplicate), domain.ErrDuplicateIngredient)

	zeroAmount := []domain.RecipeIngredientRequest{
		{ID: "a", Amount: 0},
	}
	assert.ErrorIs(t, ValidateIngredientLines(zeroAmount), domain.ErrInvalidAmount)
}

func TestValidateTagIDs(t *testing.T) {
	assert.NoError(t, ValidateTagIDs([]string{"a", "b"}))
	assert.ErrorIs(t, ValidateTagIDs(nil), domain.ErrNoTags)
	assert.ErrorIs(t, ValidateTagIDs([]string{"a", "a"}), domain.ErrDuplicateTag)
}

func TestValidateCookingTime(t *testing.T) {
	assert.NoError(t, ValidateCookingTime(1))
	assert.ErrorIs(t, ValidateCookingTime(0), domain.ErrInvalidCookingTime)
	assert.ErrorIs(t, ValidateCookingTime(-5), domain.ErrInvalidCookingTime)
}

func TestValidateComposition(t *testing.T) {
	lines := []domain.RecipeIngredientRequest{{ID: "a", Amount: 2}}

	assert.NoError(t, ValidateComposition(lines, []string{"t"}, 15))
	assert.ErrorIs(t, ValidateComposition(nil, []string{"t"}, 15), domain.ErrNoIngredients)
	assert.ErrorIs(t, ValidateComposition(lines, nil, 15), domain.ErrNoTags)
	assert.ErrorIs(t, ValidateComposition(lines, []string{"t"}, 0), domain.ErrInvalidCookingTime)
}
