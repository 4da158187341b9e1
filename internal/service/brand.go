package service

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

type BrandInput struct {
	Name  string
	Image string
}

type BrandPatch struct {
	Name  *string
	Image *string
}

type BrandService interface {
	Create(ctx context.Context, in BrandInput) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
	Get(ctx context.Context, id string) (*model.Brand, error)
	Update(ctx context.Context, id string, in BrandPatch) (*model.Brand, error)
	Delete(ctx context.Context, id string) error
}

type brandService struct {
	repo repository.BrandRepository
}

func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) Create(ctx context.Context, in BrandInput) (*model.Brand, error) {
	name := strings.TrimSpace(in.Name)
	if err := checkNameFree(ctx, s.repo.FindByName, name, "Brand"); err != nil {
		return nil, err
	}
	b, err := s.repo.Create(ctx, &model.Brand{Name: name, Image: in.Image})
	if err != nil {
		return nil, writeErr(err, "create brand", "Brand")
	}
	return b, nil
}

func (s *brandService) List(ctx context.Context) ([]model.Brand, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list brands")
	}
	return items, nil
}

func (s *brandService) Get(ctx context.Context, id string) (*model.Brand, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get brand", "Brand not found")
	}
	return b, nil
}

func (s *brandService) Update(ctx context.Context, id string, in BrandPatch) (*model.Brand, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := renameCheck(ctx, s.repo.FindByName, b.Name, name, "Brand"); err != nil {
			return nil, err
		}
		b.Name = name
	}
	if in.Image != nil {
		b.Image = *in.Image
	}
	out, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, writeErr(err, "update brand", "Brand")
	}
	return out, nil
}

func (s *brandService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(err, "delete brand", "Brand")
	}
	return nil
}
