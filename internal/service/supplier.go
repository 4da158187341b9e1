package service

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

type SupplierInput struct {
	Name    string
	Website string
}

type SupplierPatch struct {
	Name    *string
	Website *string
}

type SupplierService interface {
	Create(ctx context.Context, in SupplierInput) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Get(ctx context.Context, id string) (*model.Supplier, error)
	Update(ctx context.Context, id string, in SupplierPatch) (*model.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, in SupplierInput) (*model.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if err := checkNameFree(ctx, s.repo.FindByName, name, "Supplier"); err != nil {
		return nil, err
	}
	out, err := s.repo.Create(ctx, &model.Supplier{Name: name, Website: in.Website})
	if err != nil {
		return nil, writeErr(err, "create supplier", "Supplier")
	}
	return out, nil
}

func (s *supplierService) List(ctx context.Context) ([]model.Supplier, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list suppliers")
	}
	return items, nil
}

func (s *supplierService) Get(ctx context.Context, id string) (*model.Supplier, error) {
	out, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get supplier", "Supplier not found")
	}
	return out, nil
}

func (s *supplierService) Update(ctx context.Context, id string, in SupplierPatch) (*model.Supplier, error) {
	sp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := renameCheck(ctx, s.repo.FindByName, sp.Name, name, "Supplier"); err != nil {
			return nil, err
		}
		sp.Name = name
	}
	if in.Website != nil {
		sp.Website = *in.Website
	}
	out, err := s.repo.Update(ctx, sp)
	if err != nil {
		return nil, writeErr(err, "update supplier", "Supplier")
	}
	return out, nil
}

func (s *supplierService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(err, "delete supplier", "Supplier")
	}
	return nil
}
