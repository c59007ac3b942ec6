package domain

import (
	"errors"
)

var (
	MessageSuccessGetIngredients      = "success get ingredients"
	MessageSuccessGetIngredientDetail = "success get ingredient detail"
	MessageSuccessCreateIngredient    = "ingredient created successfully"
	MessageSuccessUpdateIngredient    = "ingredient updated successfully"
	MessageSuccessDeleteIngredient    = "ingredient deleted successfully"

	MessageFailedGetIngredients      = "failed to get ingredients"
	MessageFailedGetIngredientDetail = "failed to get ingredient detail"
	MessageFailedCreateIngredient    = "failed to create ingredient"
	MessageFailedUpdateIngredient    = "failed to update ingredient"
	MessageFailedDeleteIngredient    = "failed to delete ingredient"

	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	CreateIngredientRequest struct {
		Name            string `json:"name" validate:"required,max=200"`
		MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
	}

	UpdateIngredientRequest struct {
		Name            string `json:"name" validate:"omitempty,max=200"`
		MeasurementUnit string `json:"measurement_unit" validate:"omitempty,max=200"`
	}

	IngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)
