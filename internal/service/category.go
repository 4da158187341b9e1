package service

import (
	"context"
	"strings"

	"github.com/go-faster/errors"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

type CategoryInput struct {
	Name  string
	Image string
}

// CategoryPatch is a partial update. Nil fields are left unchanged.
type CategoryPatch struct {
	Name  *string
	Image *string
}

type CategoryService interface {
	Create(ctx context.Context, in CategoryInput) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id string) (*model.Category, error)
	Update(ctx context.Context, id string, in CategoryPatch) (*model.Category, error)
	// Delete refuses categories still referenced by sub-categories or products.
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, in CategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(in.Name)
	if err := checkNameFree(ctx, s.repo.FindByName, name, "Category"); err != nil {
		return nil, err
	}
	c, err := s.repo.Create(ctx, &model.Category{Name: name, Image: in.Image})
	if err != nil {
		return nil, writeErr(err, "create category", "Category")
	}
	return c, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return items, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get category", "Category not found")
	}
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id string, in CategoryPatch) (*model.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := renameCheck(ctx, s.repo.FindByName, c.Name, name, "Category"); err != nil {
			return nil, err
		}
		c.Name = name
	}
	if in.Image != nil {
		c.Image = *in.Image
	}
	out, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, writeErr(err, "update category", "Category")
	}
	return out, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return deleteErr(err, "delete category", "Category")
	}
	return nil
}
