package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/ingredient"
	"Foodgram-Backend/pkg/tag"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRecipeRepository overrides only the methods a test touches; anything
// else panics through the embedded nil interface.
type fakeRecipeRepository struct {
	RecipeRepository

	recipe    *entities.Recipe
	favorited bool
	inCart    bool

	addedFavorite   bool
	removedFavorite bool
	addedCart       bool
	removedCart     bool

	updated      bool
	updatedLines []*entities.RecipeIngredient
	updatedLinks []*entities.RecipeTag
	deleted      bool
}

func (f *fakeRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	if f.recipe == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.recipe, nil
}

func (f *fakeRecipeRepository) IsFavorited(ctx context.Context, userID, recipeID string) (bool, error) {
	return f.favorited, nil
}

func (f *fakeRecipeRepository) IsInCart(ctx context.Context, userID, recipeID string) (bool, error) {
	return f.inCart, nil
}

func (f *fakeRecipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	f.addedFavorite = true
	return nil
}

func (f *fakeRecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	f.removedFavorite = true
	return nil
}

func (f *fakeRecipeRepository) AddCartEntry(ctx context.Context, userID, recipeID string) error {
	f.addedCart = true
	return nil
}

func (f *fakeRecipeRepository) RemoveCartEntry(ctx context.Context, userID, recipeID string) error {
	f.removedCart = true
	return nil
}

func (f *fakeRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, lines []*entities.RecipeIngredient, tags []*entities.RecipeTag) error {
	f.updated = true
	f.updatedLines = lines
	f.updatedLinks = tags
	return nil
}

func (f *fakeRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	f.deleted = true
	return nil
}

type fakeTagRepository struct {
	tag.TagRepository
}

func (f *fakeTagRepository) GetTagsByIDs(ctx context.Context, ids []string) ([]*entities.Tag, error) {
	tags := make([]*entities.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, &entities.Tag{ID: uuid.MustParse(id)})
	}
	return tags, nil
}

type fakeIngredientRepository struct {
	ingredient.IngredientRepository
}

func (f *fakeIngredientRepository) GetIngredientsByIDs(ctx context.Context, ids []string) ([]*entities.Ingredient, error) {
	found := make([]*entities.Ingredient, 0, len(ids))
	for _, id := range ids {
		found = append(found, &entities.Ingredient{ID: uuid.MustParse(id)})
	}
	return found, nil
}

type fakeStorage struct {
	uploadedKeys []string
	deletedKeys  []string
}

func (f *fakeStorage) UploadFile(ctx context.Context, key string, contentType string, body []byte) (string, error) {
	f.uploadedKeys = append(f.uploadedKeys, key)
	return "https://bucket.s3.region.amazonaws.com/" + key, nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return nil
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.region.amazonaws.com/")
}

func testRecipe() *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		Name:        "Borscht",
		CookingTime: 45,
	}
}

func newMembershipService(repo *fakeRecipeRepository) RecipeService {
	return NewRecipeService(repo, nil, nil, nil, nil)
}

func TestFavorite(t *testing.T) {
	repo := &fakeRecipeRepository{recipe: testRecipe()}
	service := newMembershipService(repo)

	res, err := service.Favorite(context.Background(), repo.recipe.ID.String(), "user-1")

	require.NoError(t, err)
	assert.True(t, repo.addedFavorite)
	assert.Equal(t, "Borscht", res.Name)
}

func TestFavoriteTwice(t *testing.T) {
	repo := &fakeRecipeRepository{recipe: testRecipe(), favorited: true}
	service := newMembershipService(repo)

	_, err := service.Favorite(context.Background(), repo.recipe.ID.String(), "user-1")

	assert.ErrorIs(t, err, domain.ErrAlreadyFavorited)
	assert.False(t, repo.addedFavorite)
}

func TestFavoriteMissingRecipe(t *testing.T) {
	service := newMembershipService(&fakeRecipeRepository{})

	_, err := service.Favorite(context.Background(), uuid.NewString(), "user-1")

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUnfavoriteNotFavorited(t *testing.T) {
	repo := &fakeRecipeRepository{recipe: testRecipe()}
	service := newMembershipService(repo)

	err := service.Unfavorite(context.Background(), repo.recipe.ID.String(), "user-1")

	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
	assert.False(t, repo.removedFavorite)
}

func TestUnfavorite(t *testing.T) {
	repo := &fakeRecipeRepository{recipe: testRecipe(), favorited: true}
	service := newMembershipService(repo)

	err := service.Unfavorite(context.Background(), repo.recipe.ID.String(), "user-1")

	require.NoError(t, err)
	assert.True(t, repo.removedFavorite)
}

func TestAddToCartTwice(t *testing.T) {
	repo := &fakeRecipeRepository{recipe: testRecipe(), inCart: true}
	service := newMembershipService(repo)

	_, err := service.AddToCart(context.Background(), repo.recipe.ID.String(), "user-1")

	assert.ErrorIs(t, err, domain.ErrAlreadyInCart)
	assert.False(t, repo.addedCart)
}

func TestRemoveFromCartNotInCart(t *testing.T) {
	repo := &fakeRecipeRepository{recipe: testRecipe()}
	service := newMembershipService(repo)

	err := service.RemoveFromCart(context.Background(), repo.recipe.ID.String(), "user-1")

	assert.ErrorIs(t, err, domain.ErrCartEntryNotFound)
	assert.False(t, repo.removedCart)
}

func ownedRecipe(authorID uuid.UUID) *entities.Recipe {
	r := testRecipe()
	r.AuthorID = authorID
	return r
}

func newUpdateService(repo *fakeRecipeRepository, s3 *fakeStorage) RecipeService {
	return NewRecipeService(repo, &fakeTagRepository{}, &fakeIngredientRepository{}, nil, s3)
}

func strPtr(s string) *string { return &s }

func TestUpdateRecipeOmittedSetsKeepStored(t *testing.T) {
	author := uuid.New()
	repo := &fakeRecipeRepository{recipe: ownedRecipe(author)}
	service := newUpdateService(repo, &fakeStorage{})

	req := domain.UpdateRecipeRequest{Name: strPtr("Green borscht")}
	res, err := service.UpdateRecipe(context.Background(), repo.recipe.ID.String(), req, author.String(), domain.RoleUser)

	require.NoError(t, err)
	assert.True(t, repo.updated)
	assert.Nil(t, repo.updatedLines)
	assert.Nil(t, repo.updatedLinks)
	assert.Equal(t, "Green borscht", res.Name)
}

func TestUpdateRecipeProvidedSetsReplace(t *testing.T) {
	author := uuid.New()
	repo := &fakeRecipeRepository{recipe: ownedRecipe(author)}
	service := newUpdateService(repo, &fakeStorage{})

	req := domain.UpdateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{{ID: uuid.NewString(), Amount: 2}},
		Tags:        []string{uuid.NewString()},
	}
	_, err := service.UpdateRecipe(context.Background(), repo.recipe.ID.String(), req, author.String(), domain.RoleUser)

	require.NoError(t, err)
	assert.True(t, repo.updated)
	assert.Len(t, repo.updatedLines, 1)
	assert.Len(t, repo.updatedLinks, 1)
}

func TestUpdateRecipeEmptySetsRejected(t *testing.T) {
	author := uuid.New()
	repo := &fakeRecipeRepository{recipe: ownedRecipe(author)}
	service := newUpdateService(repo, &fakeStorage{})

	req := domain.UpdateRecipeRequest{Ingredients: []domain.RecipeIngredientRequest{}}
	_, err := service.UpdateRecipe(context.Background(), repo.recipe.ID.String(), req, author.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrNoIngredients)

	req = domain.UpdateRecipeRequest{Tags: []string{}}
	_, err = service.UpdateRecipe(context.Background(), repo.recipe.ID.String(), req, author.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrNoTags)

	assert.False(t, repo.updated)
}

func TestUpdateRecipeNotAuthor(t *testing.T) {
	repo := &fakeRecipeRepository{recipe: ownedRecipe(uuid.New())}
	service := newUpdateService(repo, &fakeStorage{})

	req := domain.UpdateRecipeRequest{Name: strPtr("Hijacked")}
	_, err := service.UpdateRecipe(context.Background(), repo.recipe.ID.String(), req, uuid.NewString(), domain.RoleUser)

	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	assert.False(t, repo.updated)
}

func TestUpdateRecipeReplacesStoredImage(t *testing.T) {
	author := uuid.New()
	recipe := ownedRecipe(author)
	recipe.ImageURL = "https://bucket.s3.region.amazonaws.com/recipes/images/old.png"
	repo := &fakeRecipeRepository{recipe: recipe}
	s3 := &fakeStorage{}
	service := newUpdateService(repo, s3)

	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89})
	req := domain.UpdateRecipeRequest{Image: &image}
	_, err := service.UpdateRecipe(context.Background(), recipe.ID.String(), req, author.String(), domain.RoleUser)

	require.NoError(t, err)
	assert.Equal(t, []string{"recipes/images/old.png"}, s3.deletedKeys)
	require.Len(t, s3.uploadedKeys, 1)
}

func TestDeleteRecipeRemovesStoredImage(t *testing.T) {
	author := uuid.New()
	recipe := ownedRecipe(author)
	recipe.ImageURL = "https://bucket.s3.region.amazonaws.com/recipes/images/gone.png"
	repo := &fakeRecipeRepository{recipe: recipe}
	s3 := &fakeStorage{}
	service := newUpdateService(repo, s3)

	err := service.DeleteRecipe(context.Background(), recipe.ID.String(), author.String(), domain.RoleUser)

	require.NoError(t, err)
	assert.True(t, repo.deleted)
	assert.Equal(t, []string{"recipes/images/gone.png"}, s3.deletedKeys)
}

func TestAddAndRemoveCartEntry(t *testing.T) {
	repo := &fakeRecipeRepository{recipe: testRecipe()}
	service := newMembershipService(repo)

	_, err := service.AddToCart(context.Background(), repo.recipe.ID.String(), "user-1")
	require.NoError(t, err)
	assert.True(t, repo.addedCart)

	repo.inCart = true
	err = service.RemoveFromCart(context.Background(), repo.recipe.ID.String(), "user-1")
	require.NoError(t, err)
	assert.True(t, repo.removedCart)
}
