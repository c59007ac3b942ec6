package shoppinglist

import (
	"Foodgram-Backend/domain"
	"context"
	"fmt"
	"strings"
)

const (
	listHeader = "Shopping list"

	// FileName is the attachment name of the downloaded document.
	FileName = "file.txt"
)

type (
	ShoppingListService interface {
		DownloadShoppingList(ctx context.Context, userID string) (string, error)
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
	}
)

func NewShoppingListService(shoppingListRepository ShoppingListRepository) ShoppingListService {
	return &shoppingListService{shoppingListRepository: shoppingListRepository}
}

// Aggregate groups ingredient lines by (name, measurement unit) and sums
// their amounts. Groups keep the order in which their ingredient was first
// encountered.
func Aggregate(lines []domain.CartIngredientLine) []domain.ShoppingListItem {
	index := make(map[string]int, len(lines))
	items := make([]domain.ShoppingListItem, 0, len(lines))

	for _, line := range lines {
		key := line.Name + "\x00" + line.MeasurementUnit
		if i, ok := index[key]; ok {
			items[i].Amount += line.Amount
			continue
		}
		index[key] = len(items)
		items = append(items, domain.ShoppingListItem{
			Name:            line.Name,
			MeasurementUnit: line.MeasurementUnit,
			Amount:          line.Amount,
		})
	}
	return items
}

// Render produces the plain-text document: a header followed by one
// numbered line per aggregated ingredient. An empty item list yields the
// header only.
func Render(items []domain.ShoppingListItem) string {
	var b strings.Builder
	b.WriteString(listHeader + "\n")
	for i, item := range items {
		fmt.Fprintf(&b, "\n%d. %s - %d%s.", i+1, item.Name, item.Amount, item.MeasurementUnit)
	}
	return b.String()
}

func (s *shoppingListService) DownloadShoppingList(ctx context.Context, userID string) (string, error) {
	lines, err := s.shoppingListRepository.GetCartIngredientLines(ctx, userID)
	if err != nil {
		return "", err
	}
	return Render(Aggregate(lines)), nil
}
