package shoppinglist

import (
	"Foodgram-Backend/domain"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSumsByNameAndUnit(t *testing.T) {
	lines := []domain.CartIngredientLine{
		{Name: "Salt", MeasurementUnit: "g", Amount: 5},
		{Name: "Sugar", MeasurementUnit: "g", Amount: 2},
		{Name: "Salt", MeasurementUnit: "g", Amount: 3},
	}

	items := Aggregate(lines)

	require.Len(t, items, 2)
	assert.Equal(t, domain.ShoppingListItem{Name: "Salt", MeasurementUnit: "g", Amount: 8}, items[0])
	assert.Equal(t, domain.ShoppingListItem{Name: "Sugar", MeasurementUnit: "g", Amount: 2}, items[1])
}

func TestAggregateKeepsUnitsSeparate(t *testing.T) {
	lines := []domain.CartIngredientLine{
		{Name: "Milk", MeasurementUnit: "ml", Amount: 200},
		{Name: "Milk", MeasurementUnit: "l", Amount: 1},
	}

	items := Aggregate(lines)

	require.Len(t, items, 2)
	assert.Equal(t, "ml", items[0].MeasurementUnit)
	assert.Equal(t, "l", items[1].MeasurementUnit)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestRender(t *testing.T) {
	items := []domain.ShoppingListItem{
		{Name: "Salt", MeasurementUnit: "g", Amount: 8},
		{Name: "Sugar", MeasurementUnit: "g", Amount: 2},
	}

	doc := Render(items)

	assert.Equal(t, "Shopping list\n\n1. Salt - 8g.\n2. Sugar - 2g.", doc)
}

func TestRenderEmptyCart(t *testing.T) {
	assert.Equal(t, "Shopping list\n", Render(nil))
}

type fakeShoppingListRepository struct {
	lines []domain.CartIngredientLine
	err   error
}

func (f *fakeShoppingListRepository) GetCartIngredientLines(ctx context.Context, userID string) ([]domain.CartIngredientLine, error) {
	return f.lines, f.err
}

func TestDownloadShoppingList(t *testing.T) {
	repo := &fakeShoppingListRepository{lines: []domain.CartIngredientLine{
		{Name: "Salt", MeasurementUnit: "g", Amount: 5},
		{Name: "Salt", MeasurementUnit: "g", Amount: 3},
	}}
	service := NewShoppingListService(repo)

	doc, err := service.DownloadShoppingList(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Shopping list\n\n1. Salt - 8g.", doc)
}

func TestDownloadShoppingListRepositoryError(t *testing.T) {
	repo := &fakeShoppingListRepository{err: errors.New("connection lost")}
	service := NewShoppingListService(repo)

	_, err := service.DownloadShoppingList(context.Background(), "user-1")

	assert.Error(t, err)
}
