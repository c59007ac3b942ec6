package recipe

import (
	"Foodgram-Backend/domain"
)

// ValidateIngredientLines checks the candidate ingredient set of a recipe:
// it must be non-empty, free of repeated ingredient identities, and every
// line's amount must be at least 1.
func ValidateIngredientLines(lines []domain.RecipeIngredientRequest) error {
	if len(lines) == 0 {
		return domain.ErrNoIngredients
	}

	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ID]; ok {
			return domain.ErrDuplicateIngredient
		}
		seen[line.ID] = struct{}{}
		if line.Amount < 1 {
			return domain.ErrInvalidAmount
		}
	}
	return nil
}

// ValidateTagIDs checks the candidate tag set of a recipe: non-empty and
// free of repeated tag identities.
func ValidateTagIDs(tagIDs []string) error {
	if len(tagIDs) == 0 {
		return domain.ErrNoTags
	}

	seen := make(map[string]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seen[id]; ok {
			return domain.ErrDuplicateTag
		}
		seen[id] = struct{}{}
	}
	return nil
}

// ValidateCookingTime rejects non-positive cooking times.
func ValidateCookingTime(minutes int) error {
	if minutes < 1 {
		return domain.ErrInvalidCookingTime
	}
	return nil
}

// ValidateComposition runs the full structural check used before a recipe
// is persisted. It has no side effects; persistence is a separate step.
func ValidateComposition(lines []domain.RecipeIngredientRequest, tagIDs []string, cookingTime int) error {
	if err := ValidateIngredientLines(lines); err != nil {
		return err
	}
	if err := ValidateTagIDs(tagIDs); err != nil {
		return err
	}
	return ValidateCookingTime(cookingTime)
}
