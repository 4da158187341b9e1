package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopapi/internal/model"
	"shopapi/internal/repository"
	repoMocks "shopapi/internal/repository/mocks"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestTaxService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when absent", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaxRepository)
		svc := NewTaxService(mRepo)
		mRepo.On("Get", ctx).Return(nil, repository.ErrNotFound)
		mRepo.On("Upsert", ctx, mock.MatchedBy(func(tx *model.Tax) bool {
			return tx.TaxPrice.Equal(decimal.NewFromInt(5)) && tx.ShippingPrice.IsZero()
		})).Return(&model.Tax{TaxPrice: decimal.NewFromInt(5)}, nil)

		tax, created, err := svc.Save(ctx, TaxInput{TaxPrice: decPtr("5")})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "5", tax.TaxPrice.String())
	})

	t.Run("identical values rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaxRepository)
		svc := NewTaxService(mRepo)
		mRepo.On("Get", ctx).Return(&model.Tax{TaxPrice: decimal.NewFromInt(5), ShippingPrice: decimal.NewFromInt(2)}, nil)

		_, _, err := svc.Save(ctx, TaxInput{TaxPrice: decPtr("5.00"), ShippingPrice: decPtr("2")})
		assert.ErrorIs(t, err, ErrInvalid)
		mRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("updates shipping only", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaxRepository)
		svc := NewTaxService(mRepo)
		mRepo.On("Get", ctx).Return(&model.Tax{TaxPrice: decimal.NewFromInt(5), ShippingPrice: decimal.NewFromInt(2)}, nil)
		mRepo.On("Upsert", ctx, mock.MatchedBy(func(tx *model.Tax) bool {
			return tx.TaxPrice.Equal(decimal.NewFromInt(5)) && tx.ShippingPrice.Equal(decimal.NewFromInt(3))
		})).Return(&model.Tax{}, nil)

		_, created, err := svc.Save(ctx, TaxInput{ShippingPrice: decPtr("3")})
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("negative rejected", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaxRepository)
		svc := NewTaxService(mRepo)
		mRepo.On("Get", ctx).Return(nil, repository.ErrNotFound)

		_, _, err := svc.Save(ctx, TaxInput{TaxPrice: decPtr("-1")})
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestTaxService_GetAndReset(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockTaxRepository)
	svc := NewTaxService(mRepo)

	mRepo.On("Get", ctx).Return(nil, repository.ErrNotFound)
	tax, isDefault, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, isDefault)
	assert.True(t, tax.TaxPrice.IsZero())

	mRepo.On("Upsert", ctx, mock.MatchedBy(func(tx *model.Tax) bool {
		return tx.TaxPrice.IsZero() && tx.ShippingPrice.IsZero()
	})).Return(&model.Tax{}, nil)
	_, err = svc.Reset(ctx)
	require.NoError(t, err)
	mRepo.AssertExpectations(t)
}
