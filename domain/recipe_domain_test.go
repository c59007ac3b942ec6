package domain

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validCreateRecipeRequest() CreateRecipeRequest {
	return CreateRecipeRequest{
		Name:        "Borscht",
		Text:        "Chop, boil, serve.",
		Image:       "data:image/png;base64,iVBORw0KGgo=",
		CookingTime: 45,
		Ingredients: []RecipeIngredientRequest{{ID: uuid.NewString(), Amount: 2}},
		Tags:        []string{uuid.NewString()},
	}
}

func TestCreateRecipeRequestValidation(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(validCreateRecipeRequest()))

	noImage := validCreateRecipeRequest()
	noImage.Image = ""
	assert.Error(t, v.Struct(noImage))

	noName := validCreateRecipeRequest()
	noName.Name = ""
	assert.Error(t, v.Struct(noName))
}
