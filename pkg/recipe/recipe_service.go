package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/utils"
	"Foodgram-Backend/internal/utils/storage"
	"Foodgram-Backend/pkg/ingredient"
	"Foodgram-Backend/pkg/tag"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// SubscriptionChecker reports whether a viewer follows an author. The
	// user package's repository satisfies it.
	SubscriptionChecker interface {
		IsSubscribed(ctx context.Context, userID, authorID string) (bool, error)
	}

	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID, role string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID, role string) error

		Favorite(ctx context.Context, recipeID, userID string) (domain.RecipeShortResponse, error)
		Unfavorite(ctx context.Context, recipeID, userID string) error
		AddToCart(ctx context.Context, recipeID, userID string) (domain.RecipeShortResponse, error)
		RemoveFromCart(ctx context.Context, recipeID, userID string) error
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		subscriptions        SubscriptionChecker
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	subscriptions SubscriptionChecker,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		subscriptions:        subscriptions,
		s3:                   s3,
	}
}

// canWrite implements the owner-or-read-only policy for recipes.
func canWrite(recipe *entities.Recipe, userID, role string) bool {
	return recipe.AuthorID.String() == userID || role == domain.RoleAdmin
}

func toRecipeShortResponse(recipe *entities.Recipe) domain.RecipeShortResponse {
	return domain.RecipeShortResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}
}

func (s *recipeService) toRecipeResponse(ctx context.Context, recipe *entities.Recipe, viewerID string) (domain.RecipeResponse, error) {
	res := domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		Ingredients: make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients)),
		Tags:        make([]domain.TagResponse, 0, len(recipe.Tags)),
	}

	for _, line := range recipe.Ingredients {
		if line.Ingredient == nil {
			continue
		}
		res.Ingredients = append(res.Ingredients, domain.RecipeIngredientResponse{
			ID:              line.IngredientID.String(),
			Name:            line.Ingredient.Name,
			MeasurementUnit: line.Ingredient.MeasurementUnit,
			Amount:          line.Amount,
		})
	}

	for _, link := range recipe.Tags {
		if link.Tag == nil {
			continue
		}
		res.Tags = append(res.Tags, domain.TagResponse{
			ID:    link.TagID.String(),
			Name:  link.Tag.Name,
			Color: link.Tag.Color,
			Slug:  link.Tag.Slug,
		})
	}

	if recipe.Author != nil {
		res.Author = domain.UserResponse{
			ID:        recipe.Author.ID.String(),
			Email:     recipe.Author.Email,
			Username:  recipe.Author.Username,
			FirstName: recipe.Author.FirstName,
			LastName:  recipe.Author.LastName,
			AvatarURL: recipe.Author.AvatarURL,
		}
		if viewerID != "" {
			isSubscribed, err := s.subscriptions.IsSubscribed(ctx, viewerID, recipe.AuthorID.String())
			if err != nil {
				return domain.RecipeResponse{}, err
			}
			res.Author.IsSubscribed = isSubscribed
		}
	}

	if viewerID != "" {
		isFavorited, err := s.recipeRepository.IsFavorited(ctx, viewerID, recipe.ID.String())
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		res.IsFavorited = isFavorited

		isInCart, err := s.recipeRepository.IsInCart(ctx, viewerID, recipe.ID.String())
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		res.IsInShoppingCart = isInCart
	}

	return res, nil
}

// resolveIngredientLines verifies every referenced ingredient exists and
// builds the join rows for the given recipe.
func (s *recipeService) resolveIngredientLines(ctx context.Context, reqs []domain.RecipeIngredientRequest) ([]*entities.RecipeIngredient, error) {
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
	}

	found, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, domain.ErrIngredientNotFound
	}

	now := time.Now()
	lines := make([]*entities.RecipeIngredient, 0, len(reqs))
	for _, req := range reqs {
		ingredientID, err := uuid.Parse(req.ID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		lines = append(lines, &entities.RecipeIngredient{
			ID:           uuid.New(),
			IngredientID: ingredientID,
			Amount:       req.Amount,
			CreatedAt:    now,
		})
		// created_at carries the insertion order used by the shopping
		// list aggregation
		now = now.Add(time.Microsecond)
	}
	return lines, nil
}

func (s *recipeService) resolveTagLinks(ctx context.Context, tagIDs []string) ([]*entities.RecipeTag, error) {
	found, err := s.tagRepository.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	if len(found) != len(tagIDs) {
		return nil, domain.ErrTagNotFound
	}

	links := make([]*entities.RecipeTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tagID, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		links = append(links, &entities.RecipeTag{
			ID:        uuid.New(),
			TagID:     tagID,
			CreatedAt: time.Now(),
		})
	}
	return links, nil
}

func (s *recipeService) uploadImage(ctx context.Context, recipeID uuid.UUID, data string) (string, error) {
	payload, ext, err := utils.DecodeBase64Image(data)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("recipes/images/%s.%s", recipeID, ext)
	return s.s3.UploadFile(ctx, key, utils.ImageContentType(ext), payload)
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if err := ValidateComposition(req.Ingredients, req.Tags, req.CookingTime); err != nil {
		return domain.RecipeResponse{}, err
	}

	authorID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	lines, err := s.resolveIngredientLines(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	links, err := s.resolveTagLinks(ctx, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	if req.Image != "" {
		imageURL, err := s.uploadImage(ctx, recipe.ID, req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.ImageURL = imageURL
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, lines, links); err != nil {
		return domain.RecipeResponse{}, err
	}

	created, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toRecipeResponse(ctx, created, userID)
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int, viewerID string) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res, err := s.toRecipeResponse(ctx, recipe, viewerID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}
	return result, count, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.toRecipeResponse(ctx, recipe, viewerID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID, role string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if !canWrite(recipe, userID, role) {
		return domain.RecipeResponse{}, domain.ErrUserNotAllowed
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Text != nil {
		recipe.Text = *req.Text
	}
	if req.CookingTime != nil {
		if err := ValidateCookingTime(*req.CookingTime); err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.CookingTime = *req.CookingTime
	}
	if req.Image != nil {
		if recipe.ImageURL != "" {
			_ = s.s3.DeleteFile(ctx, s.s3.GetObjectKeyFromLink(recipe.ImageURL))
		}
		imageURL, err := s.uploadImage(ctx, recipe.ID, *req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.ImageURL = imageURL
	}

	// A nil slice means the field was omitted: the stored set stays as is.
	// A provided slice is validated and fully replaces the stored set.
	var lines []*entities.RecipeIngredient
	if req.Ingredients != nil {
		if err := ValidateIngredientLines(req.Ingredients); err != nil {
			return domain.RecipeResponse{}, err
		}
		lines, err = s.resolveIngredientLines(ctx, req.Ingredients)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
	}
	var links []*entities.RecipeTag
	if req.Tags != nil {
		if err := ValidateTagIDs(req.Tags); err != nil {
			return domain.RecipeResponse{}, err
		}
		links, err = s.resolveTagLinks(ctx, req.Tags)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	recipe.Ingredients = nil
	recipe.Tags = nil
	recipe.Author = nil
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, lines, links); err != nil {
		return domain.RecipeResponse{}, err
	}

	updated, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toRecipeResponse(ctx, updated, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID, role string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if !canWrite(recipe, userID, role) {
		return domain.ErrUserNotAllowed
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}
	if recipe.ImageURL != "" {
		_ = s.s3.DeleteFile(ctx, s.s3.GetObjectKeyFromLink(recipe.ImageURL))
	}
	return nil
}

func (s *recipeService) Favorite(ctx context.Context, recipeID, userID string) (domain.RecipeShortResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeShortResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeShortResponse{}, err
	}

	exists, err := s.recipeRepository.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return domain.RecipeShortResponse{}, err
	}
	if exists {
		return domain.RecipeShortResponse{}, domain.ErrAlreadyFavorited
	}

	if err := s.recipeRepository.AddFavorite(ctx, userID, recipeID); err != nil {
		// the unique index is the arbiter of concurrent adds
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeShortResponse{}, domain.ErrAlreadyFavorited
		}
		return domain.RecipeShortResponse{}, err
	}

	return toRecipeShortResponse(recipe), nil
}

func (s *recipeService) Unfavorite(ctx context.Context, recipeID, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	exists, err := s.recipeRepository.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrFavoriteNotFound
	}

	return s.recipeRepository.RemoveFavorite(ctx, userID, recipeID)
}

func (s *recipeService) AddToCart(ctx context.Context, recipeID, userID string) (domain.RecipeShortResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeShortResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeShortResponse{}, err
	}

	exists, err := s.recipeRepository.IsInCart(ctx, userID, recipeID)
	if err != nil {
		return domain.RecipeShortResponse{}, err
	}
	if exists {
		return domain.RecipeShortResponse{}, domain.ErrAlreadyInCart
	}

	if err := s.recipeRepository.AddCartEntry(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeShortResponse{}, domain.ErrAlreadyInCart
		}
		return domain.RecipeShortResponse{}, err
	}

	return toRecipeShortResponse(recipe), nil
}

func (s *recipeService) RemoveFromCart(ctx context.Context, recipeID, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	exists, err := s.recipeRepository.IsInCart(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrCartEntryNotFound
	}

	return s.recipeRepository.RemoveCartEntry(ctx, userID, recipeID)
}
