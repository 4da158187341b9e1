package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopapi/internal/model"
	"shopapi/internal/repository"
	repoMocks "shopapi/internal/repository/mocks"
	"shopapi/internal/security"
)

func strPtr(s string) *string { return &s }

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewUserService(mRepo)

		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, repository.ErrNotFound)
		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "ana@example.com" &&
				u.Role == model.RoleUser &&
				u.Gender == model.GenderMale &&
				u.Active &&
				security.ComparePassword(u.PasswordHash, "secret123")
		})).Return(&model.User{ID: "u-1", Email: "ana@example.com"}, nil)

		u, err := svc.Create(ctx, CreateUserInput{Name: " Ana ", Email: " Ana@Example.com ", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewUserService(mRepo)

		mRepo.On("FindByEmail", ctx, "ana@example.com").Return(&model.User{ID: "u-1"}, nil)

		_, err := svc.Create(ctx, CreateUserInput{Name: "Ana", Email: "ana@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrConflict)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure is wrapped", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewUserService(mRepo)

		mRepo.On("FindByEmail", ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.Create(ctx, CreateUserInput{Email: "ana@example.com", Password: "secret123"})
		assert.ErrorContains(t, err, "find user by email: db down")
		var svcErr *Error
		assert.False(t, errors.As(err, &svcErr))
	})
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	svc := NewUserService(mRepo)

	mRepo.On("List", ctx, repository.UserFilter{
		Name:      "an",
		Role:      model.RoleAdmin,
		SortDesc:  true,
		PageQuery: repository.PageQuery{Limit: 10, Offset: 0},
	}).Return(&repository.PageResult[model.User]{Items: []model.User{{ID: "u-1"}}, Total: 1}, nil)

	page, err := svc.List(ctx, UserQuery{Name: "an", Role: model.RoleAdmin, SortDesc: true, Skip: -3})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Len(t, page.Items, 1)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewUserService(mRepo)
		mRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		_, err := svc.Update(ctx, "missing", UpdateUserInput{})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "User not found")
	})

	t.Run("email taken", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewUserService(mRepo)
		mRepo.On("FindByID", ctx, "u-1").Return(&model.User{ID: "u-1", Email: "a@example.com"}, nil)
		mRepo.On("FindByEmail", ctx, "b@example.com").Return(&model.User{ID: "u-2"}, nil)

		_, err := svc.Update(ctx, "u-1", UpdateUserInput{Email: strPtr("b@example.com")})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("password is hashed", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewUserService(mRepo)
		role := model.RoleAdmin
		mRepo.On("FindByID", ctx, "u-1").Return(&model.User{ID: "u-1", Email: "a@example.com", Role: model.RoleUser}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Role == model.RoleAdmin && security.ComparePassword(u.PasswordHash, "newpass1")
		})).Return(&model.User{ID: "u-1", Role: model.RoleAdmin}, nil)

		u, err := svc.Update(ctx, "u-1", UpdateUserInput{Password: strPtr("newpass1"), Role: &role})
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, u.Role)
		mRepo.AssertExpectations(t)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	svc := NewUserService(mRepo)

	current := &model.User{ID: "u-1", Email: "a@example.com", Role: model.RoleUser, Active: true}
	mRepo.On("FindByID", ctx, "u-1").Return(current, nil)
	mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.Name == "Budi" && u.Address == "Street 1" && u.Role == model.RoleUser && u.Active
	})).Return(&model.User{ID: "u-1", Name: "Budi"}, nil)

	u, err := svc.UpdateProfile(ctx, "u-1", UpdateProfileInput{Name: strPtr("Budi"), Address: strPtr("Street 1")})
	require.NoError(t, err)
	assert.Equal(t, "Budi", u.Name)
	mRepo.AssertExpectations(t)
}

func TestUserService_Deactivate(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	svc := NewUserService(mRepo)

	mRepo.On("FindByID", ctx, "u-1").Return(&model.User{ID: "u-1", Active: true}, nil)
	mRepo.On("Update", ctx, mock.MatchedBy(func(u *model.User) bool { return !u.Active })).
		Return(&model.User{ID: "u-1"}, nil)

	require.NoError(t, svc.Deactivate(ctx, "u-1"))
	mRepo.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockUserRepository)
	svc := NewUserService(mRepo)

	mRepo.On("Delete", ctx, "u-1").Return(nil)
	mRepo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, "u-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}
