package ingredient

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, namePrefix string, page, limit int) ([]domain.IngredientResponse, int64, error)
		GetIngredientDetail(ctx context.Context, ingredientID string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, ingredientID string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, ingredientID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:              ingredient.ID.String(),
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		Name:            req.Name,
		MeasurementUnit: req.MeasurementUnit,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, namePrefix string, page, limit int) ([]domain.IngredientResponse, int64, error) {
	ingredients, count, err := s.ingredientRepository.GetIngredients(ctx, namePrefix, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, toIngredientResponse(ingredient))
	}
	return result, count, nil
}

func (s *ingredientService) GetIngredientDetail(ctx context.Context, ingredientID string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, ingredientID string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	if req.Name != "" {
		ingredient.Name = req.Name
	}
	if req.MeasurementUnit != "" {
		ingredient.MeasurementUnit = req.MeasurementUnit
	}

	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, ingredientID string) error {
	if _, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}
	return s.ingredientRepository.DeleteIngredient(ctx, ingredientID)
}
