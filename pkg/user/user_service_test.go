package user

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/recipe"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	UserRepository

	users      map[string]*entities.User
	subscribed bool

	addedSubscription   bool
	removedSubscription bool

	createErr             error
	createCalled          bool
	emailTakenAfterCreate bool
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) IsSubscribed(ctx context.Context, userID, subscribingID string) (bool, error) {
	return f.subscribed, nil
}

func (f *fakeUserRepository) AddSubscription(ctx context.Context, userID, subscribingID string) error {
	f.addedSubscription = true
	return nil
}

func (f *fakeUserRepository) RemoveSubscription(ctx context.Context, userID, subscribingID string) error {
	f.removedSubscription = true
	return nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	if f.createCalled && f.emailTakenAfterCreate {
		return &entities.User{ID: uuid.New(), Email: email}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	f.createCalled = true
	return f.createErr
}

type fakeAuthorRecipes struct {
	recipe.RecipeRepository

	recipes []*entities.Recipe
}

func (f *fakeAuthorRecipes) GetRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*entities.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeAuthorRecipes) CountRecipesByAuthor(ctx context.Context, authorID string) (int64, error) {
	return int64(len(f.recipes)), nil
}

func testAuthor() *entities.User {
	return &entities.User{
		ID:       uuid.New(),
		Email:    "author@example.com",
		Username: "author",
	}
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Email:     "new@example.com",
		Username:  "newcomer",
		FirstName: "New",
		LastName:  "Comer",
		Password:  "password123",
	}
}

func TestRegister(t *testing.T) {
	repo := &fakeUserRepository{}
	service := NewUserService(repo, nil, nil)

	res, err := service.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.True(t, repo.createCalled)
	assert.Equal(t, "new@example.com", res.Email)
	assert.Equal(t, "newcomer", res.Username)
}

func TestRegisterEmailRace(t *testing.T) {
	repo := &fakeUserRepository{
		createErr:             gorm.ErrDuplicatedKey,
		emailTakenAfterCreate: true,
	}
	service := NewUserService(repo, nil, nil)

	_, err := service.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUsernameRace(t *testing.T) {
	repo := &fakeUserRepository{createErr: gorm.ErrDuplicatedKey}
	service := NewUserService(repo, nil, nil)

	_, err := service.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestSubscribeSelf(t *testing.T) {
	service := NewUserService(&fakeUserRepository{}, nil, nil)

	_, err := service.Subscribe(context.Background(), "user-1", "user-1", 0)

	assert.ErrorIs(t, err, domain.ErrSelfSubscribe)
}

func TestSubscribeMissingAuthor(t *testing.T) {
	service := NewUserService(&fakeUserRepository{}, nil, nil)

	_, err := service.Subscribe(context.Background(), uuid.NewString(), "user-1", 0)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSubscribeTwice(t *testing.T) {
	author := testAuthor()
	repo := &fakeUserRepository{
		users:      map[string]*entities.User{author.ID.String(): author},
		subscribed: true,
	}
	service := NewUserService(repo, nil, nil)

	_, err := service.Subscribe(context.Background(), author.ID.String(), "user-1", 0)

	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	assert.False(t, repo.addedSubscription)
}

func TestSubscribe(t *testing.T) {
	author := testAuthor()
	repo := &fakeUserRepository{
		users: map[string]*entities.User{author.ID.String(): author},
	}
	recipes := &fakeAuthorRecipes{recipes: []*entities.Recipe{
		{ID: uuid.New(), Name: "Borscht", CookingTime: 45},
	}}
	service := NewUserService(repo, recipes, nil)

	res, err := service.Subscribe(context.Background(), author.ID.String(), "user-1", 0)

	require.NoError(t, err)
	assert.True(t, repo.addedSubscription)
	assert.True(t, res.IsSubscribed)
	assert.Equal(t, int64(1), res.RecipesCount)
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, "Borscht", res.Recipes[0].Name)
}

func TestUnsubscribeNotSubscribed(t *testing.T) {
	author := testAuthor()
	repo := &fakeUserRepository{
		users: map[string]*entities.User{author.ID.String(): author},
	}
	service := NewUserService(repo, nil, nil)

	err := service.Unsubscribe(context.Background(), author.ID.String(), "user-1")

	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
	assert.False(t, repo.removedSubscription)
}

func TestUnsubscribe(t *testing.T) {
	author := testAuthor()
	repo := &fakeUserRepository{
		users:      map[string]*entities.User{author.ID.String(): author},
		subscribed: true,
	}
	service := NewUserService(repo, nil, nil)

	err := service.Unsubscribe(context.Background(), author.ID.String(), "user-1")

	require.NoError(t, err)
	assert.True(t, repo.removedSubscription)
}

func TestSetPasswordSame(t *testing.T) {
	service := NewUserService(&fakeUserRepository{}, nil, nil)

	err := service.SetPassword(context.Background(), domain.SetPasswordRequest{
		NewPassword:     "password123",
		CurrentPassword: "password123",
	}, "user-1")

	assert.ErrorIs(t, err, domain.ErrPasswordSame)
}

func TestSetPasswordWrongCurrent(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := testAuthor()
	user.Password = string(hashed)
	repo := &fakeUserRepository{
		users: map[string]*entities.User{user.ID.String(): user},
	}
	service := NewUserService(repo, nil, nil)

	err = service.SetPassword(context.Background(), domain.SetPasswordRequest{
		NewPassword:     "brand-new-password",
		CurrentPassword: "wrong-password",
	}, user.ID.String())

	assert.ErrorIs(t, err, domain.ErrPasswordWrong)
}
