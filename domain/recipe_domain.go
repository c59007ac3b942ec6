package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes         = "success get recipes"
	MessageSuccessGetRecipeDetail    = "success get recipe detail"
	MessageSuccessCreateRecipe       = "recipe created successfully"
	MessageSuccessUpdateRecipe       = "recipe updated successfully"
	MessageSuccessDeleteRecipe       = "recipe deleted successfully"
	MessageSuccessFavorite           = "recipe added to favorites"
	MessageSuccessUnfavorite         = "recipe removed from favorites"
	MessageSuccessAddToCart          = "recipe added to shopping cart"
	MessageSuccessRemoveFromCart     = "recipe removed from shopping cart"
	MessageSuccessGetFavorites       = "success get favorite recipes"
	MessageSuccessGetShoppingCart    = "success get shopping cart recipes"
	MessageSuccessDownloadCart       = "shopping list generated"
	MessageFailedGetRecipes          = "failed to get recipes"
	MessageFailedGetRecipeDetail     = "failed to get recipe detail"
	MessageFailedCreateRecipe        = "failed to create recipe"
	MessageFailedUpdateRecipe        = "failed to update recipe"
	MessageFailedDeleteRecipe        = "failed to delete recipe"
	MessageFailedFavorite            = "failed to add recipe to favorites"
	MessageFailedUnfavorite          = "failed to remove recipe from favorites"
	MessageFailedAddToCart           = "failed to add recipe to shopping cart"
	MessageFailedRemoveFromCart      = "failed to remove recipe from shopping cart"
	MessageFailedGetFavorites        = "failed to get favorite recipes"
	MessageFailedGetShoppingCart     = "failed to get shopping cart recipes"
	MessageFailedDownloadCart        = "failed to generate shopping list"

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrNoIngredients        = errors.New("recipe must contain at least one ingredient")
	ErrDuplicateIngredient  = errors.New("the same ingredient cannot be added twice")
	ErrInvalidAmount        = errors.New("ingredient amount must be at least 1")
	ErrNoTags               = errors.New("recipe must contain at least one tag")
	ErrDuplicateTag         = errors.New("the same tag cannot be added twice")
	ErrInvalidCookingTime   = errors.New("cooking time must be at least 1 minute")
	ErrInvalidImageData     = errors.New("image must be a base64-encoded data URI")
	ErrAlreadyFavorited     = errors.New("recipe is already in favorites")
	ErrFavoriteNotFound     = errors.New("recipe is not in favorites")
	ErrAlreadyInCart        = errors.New("recipe is already in the shopping cart")
	ErrCartEntryNotFound    = errors.New("recipe is not in the shopping cart")
)

type (
	RecipeIngredientRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required"`
		Image       string                    `json:"image" validate:"required"`
		CookingTime int                       `json:"cooking_time" validate:"required"`
		Ingredients []RecipeIngredientRequest `json:"ingredients"`
		Tags        []string                  `json:"tags" validate:"omitempty,dive,uuid"`
	}

	// UpdateRecipeRequest uses pointers and nil slices so an omitted JSON
	// field can be told apart from an explicit empty value. Omitted
	// ingredient/tag sets are left untouched; provided sets fully replace
	// the stored ones.
	UpdateRecipeRequest struct {
		Name        *string                   `json:"name" validate:"omitempty,max=200"`
		Text        *string                   `json:"text"`
		Image       *string                   `json:"image"`
		CookingTime *int                      `json:"cooking_time"`
		Ingredients []RecipeIngredientRequest `json:"ingredients"`
		Tags        []string                  `json:"tags" validate:"omitempty,dive,uuid"`
	}

	RecipeIngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               string                     `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserResponse               `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image,omitempty"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	}

	RecipeShortResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image,omitempty"`
		CookingTime int    `json:"cooking_time"`
	}

	// RecipeFilter carries the attribute filters of the recipe listing.
	// Zero values mean "no filtering on this attribute".
	RecipeFilter struct {
		AuthorID    string
		TagSlugs    []string
		FavoritedBy string
		InCartOf    string
	}

	// CartIngredientLine is one raw ingredient line of a recipe sitting in
	// a shopping cart, in join insertion order.
	CartIngredientLine struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	ShoppingListItem struct {
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}
)
