package main

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopapi/internal/model"
	"shopapi/internal/repository"
	"shopapi/internal/repository/mocks"
	"shopapi/internal/security"
)

func TestSeedAdmin_PromotesExisting(t *testing.T) {
	users := new(mocks.MockUserRepository)
	existing := &model.User{ID: "u-1", Email: "ann@shop.test", Role: model.RoleUser}
	users.On("FindByEmail", mock.Anything, "ann@shop.test").Return(existing, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleAdmin && u.Active
	})).Return(existing, nil)

	u, created, err := seedAdmin(context.Background(), users, adminInput{Email: "  Ann@Shop.test "})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "u-1", u.ID)
	users.AssertExpectations(t)
}

func TestSeedAdmin_CreatesMissing(t *testing.T) {
	users := new(mocks.MockUserRepository)
	users.On("FindByEmail", mock.Anything, "root@shop.test").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleAdmin && u.Active && security.ComparePassword(u.PasswordHash, "secret1")
	})).Return(&model.User{ID: "u-9", Email: "root@shop.test", Role: model.RoleAdmin}, nil)

	u, created, err := seedAdmin(context.Background(), users, adminInput{Email: "root@shop.test", Name: "Root", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "u-9", u.ID)
	users.AssertExpectations(t)
}

func TestSeedAdmin_Errors(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		_, _, err := seedAdmin(context.Background(), new(mocks.MockUserRepository), adminInput{})
		assert.Error(t, err)
	})

	t.Run("short password for new account", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", mock.Anything, "x@shop.test").Return(nil, repository.ErrNotFound)

		_, _, err := seedAdmin(context.Background(), users, adminInput{Email: "x@shop.test", Password: "123"})
		assert.ErrorContains(t, err, "at least 6")
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", mock.Anything, "x@shop.test").Return(nil, errors.New("db down"))

		_, _, err := seedAdmin(context.Background(), users, adminInput{Email: "x@shop.test", Password: "secret1"})
		assert.ErrorContains(t, err, "db down")
	})
}

func TestSeedTax(t *testing.T) {
	repo := new(mocks.MockTaxRepository)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(tx *model.Tax) bool {
		return tx.TaxPrice.Equal(decimal.NewFromInt(5)) && tx.ShippingPrice.Equal(decimal.RequireFromString("2.5"))
	})).Return(&model.Tax{TaxPrice: decimal.NewFromInt(5), ShippingPrice: decimal.RequireFromString("2.5")}, nil)

	out, err := seedTax(context.Background(), repo, "5", "2.50")
	require.NoError(t, err)
	assert.Equal(t, "5", out.TaxPrice.String())
	repo.AssertExpectations(t)
}

func TestSeedTax_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		tax      string
		shipping string
		want     string
	}{
		{name: "not a number", tax: "abc", shipping: "0", want: "invalid tax amount"},
		{name: "negative shipping", tax: "1", shipping: "-1", want: "shipping amount must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockTaxRepository)
			_, err := seedTax(context.Background(), repo, tt.tax, tt.shipping)
			assert.ErrorContains(t, err, tt.want)
			repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"migrate", "seed-admin", "seed-tax"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	seed, _, err := root.Find([]string{"seed-admin"})
	require.NoError(t, err)
	assert.NotNil(t, seed.Flags().Lookup("email"))
	assert.NotNil(t, seed.Flags().Lookup("password"))
}
