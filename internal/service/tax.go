package service

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

// TaxInput updates the tax settings. Nil fields keep their stored value.
type TaxInput struct {
	TaxPrice      *decimal.Decimal
	ShippingPrice *decimal.Decimal
}

type TaxService interface {
	// Save creates the settings on first use and updates them afterwards.
	// created reports which of the two happened.
	Save(ctx context.Context, in TaxInput) (tax *model.Tax, created bool, err error)
	// Get returns the stored settings, or zeros with isDefault set.
	Get(ctx context.Context) (tax *model.Tax, isDefault bool, err error)
	Reset(ctx context.Context) (*model.Tax, error)
}

type taxService struct {
	repo repository.TaxRepository
}

func NewTaxService(repo repository.TaxRepository) TaxService {
	return &taxService{repo: repo}
}

func (s *taxService) Save(ctx context.Context, in TaxInput) (*model.Tax, bool, error) {
	current, isDefault, err := s.Get(ctx)
	if err != nil {
		return nil, false, err
	}

	next := &model.Tax{TaxPrice: current.TaxPrice, ShippingPrice: current.ShippingPrice}
	if in.TaxPrice != nil {
		next.TaxPrice = *in.TaxPrice
	}
	if in.ShippingPrice != nil {
		next.ShippingPrice = *in.ShippingPrice
	}
	if next.TaxPrice.IsNegative() || next.ShippingPrice.IsNegative() {
		return nil, false, invalidf("Tax and shipping prices cannot be negative")
	}
	if !isDefault && next.TaxPrice.Equal(current.TaxPrice) && next.ShippingPrice.Equal(current.ShippingPrice) {
		return nil, false, invalidf("Tax settings are unchanged")
	}

	out, err := s.repo.Upsert(ctx, next)
	if err != nil {
		return nil, false, errors.Wrap(err, "save tax")
	}
	return out, isDefault, nil
}

func (s *taxService) Get(ctx context.Context) (*model.Tax, bool, error) {
	t, err := s.repo.Get(ctx)
	if isNotFound(err) {
		return &model.Tax{TaxPrice: decimal.Zero, ShippingPrice: decimal.Zero}, true, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "get tax")
	}
	return t, false, nil
}

func (s *taxService) Reset(ctx context.Context) (*model.Tax, error) {
	out, err := s.repo.Upsert(ctx, &model.Tax{TaxPrice: decimal.Zero, ShippingPrice: decimal.Zero})
	if err != nil {
		return nil, errors.Wrap(err, "reset tax")
	}
	return out, nil
}
