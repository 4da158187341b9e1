package service

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

type SubCategoryInput struct {
	Name       string
	CategoryID string
}

type SubCategoryPatch struct {
	Name       *string
	CategoryID *string
}

type SubCategoryService interface {
	Create(ctx context.Context, in SubCategoryInput) (*model.SubCategory, error)
	List(ctx context.Context) ([]model.SubCategory, error)
	Get(ctx context.Context, id string) (*model.SubCategory, error)
	Update(ctx context.Context, id string, in SubCategoryPatch) (*model.SubCategory, error)
	Delete(ctx context.Context, id string) error
}

type subCategoryService struct {
	repo       repository.SubCategoryRepository
	categories repository.CategoryRepository
}

func NewSubCategoryService(repo repository.SubCategoryRepository, categories repository.CategoryRepository) SubCategoryService {
	return &subCategoryService{repo: repo, categories: categories}
}

func (s *subCategoryService) Create(ctx context.Context, in SubCategoryInput) (*model.SubCategory, error) {
	name := strings.TrimSpace(in.Name)
	if err := checkNameFree(ctx, s.repo.FindByName, name, "SubCategory"); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}
	out, err := s.repo.Create(ctx, &model.SubCategory{Name: name, CategoryID: in.CategoryID})
	if err != nil {
		return nil, writeErr(err, "create sub-category", "SubCategory")
	}
	return out, nil
}

func (s *subCategoryService) List(ctx context.Context) ([]model.SubCategory, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sub-categories")
	}
	return items, nil
}

func (s *subCategoryService) Get(ctx context.Context, id string) (*model.SubCategory, error) {
	out, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get sub-category", "SubCategory not found")
	}
	return out, nil
}

func (s *subCategoryService) Update(ctx context.Context, id string, in SubCategoryPatch) (*model.SubCategory, error) {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name != sc.Name {
			if err := checkNameFree(ctx, s.repo.FindByName, name, "SubCategory"); err != nil {
				return nil, err
			}
		}
		sc.Name = name
	}
	if in.CategoryID != nil {
		if err := s.checkCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		sc.CategoryID = *in.CategoryID
	}
	out, err := s.repo.Update(ctx, sc)
	if err != nil {
		return nil, writeErr(err, "update sub-category", "SubCategory")
	}
	return out, nil
}

func (s *subCategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(err, "delete sub-category", "SubCategory")
	}
	return nil
}

func (s *subCategoryService) checkCategory(ctx context.Context, id string) error {
	_, err := s.categories.FindByID(ctx, id)
	switch {
	case err == nil:
		return nil
	case isNotFound(err):
		return invalidf("Category not found")
	default:
		return errors.Wrap(err, "find category")
	}
}
