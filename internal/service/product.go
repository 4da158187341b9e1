package service

import (
	"context"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shopapi/internal/model"
	"shopapi/internal/repository"
	"shopapi/internal/storage"
)

// imageURLExpiry is the lifetime of the download URL returned after an upload.
const imageURLExpiry = 15 * time.Minute

type ProductInput struct {
	Title              string
	Description        string
	Quantity           int
	Price              decimal.Decimal
	PriceAfterDiscount *decimal.Decimal
	Colors             []string
	ImageCover         string
	Images             []string
	CategoryID         string
	SubCategoryID      string
	BrandID            *string
	SupplierID         *string
	RatingsAverage     *float64
	RatingsQuantity    *int
}

type ProductPatch struct {
	Title              *string
	Description        *string
	Quantity           *int
	Price              *decimal.Decimal
	PriceAfterDiscount *decimal.Decimal
	Colors             []string
	ImageCover         *string
	Images             []string
	CategoryID         *string
	SubCategoryID      *string
	BrandID            *string
	SupplierID         *string
	RatingsAverage     *float64
	RatingsQuantity    *int
}

// ProductQuery drives the public product listing. Page starts at 1.
type ProductQuery struct {
	Page       int
	Limit      int
	Sort       string
	Keyword    string
	CategoryID string
	Ranges     []repository.RangeFilter
}

// ImageUpload is a product image streamed from a multipart form.
type ImageUpload struct {
	Body        io.Reader
	Filename    string
	ContentType string
	Size        int64
	Cover       bool
}

// ImageResult is the updated product plus a short-lived download URL.
type ImageResult struct {
	Product *model.Product
	Key     string
	URL     string
}

type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*model.Product, error)
	List(ctx context.Context, q ProductQuery) (*Page[model.Product], error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Update(ctx context.Context, id string, in ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	// UploadImage stores the image and attaches it to the product, removing
	// the object again when the product cannot be saved.
	UploadImage(ctx context.Context, id string, img ImageUpload) (*ImageResult, error)
}

type productService struct {
	products      repository.ProductRepository
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
	brands        repository.BrandRepository
	suppliers     repository.SupplierRepository
	store         storage.Storage
	lg            *zap.Logger
}

// ProductDeps groups the repositories the product service validates references against.
type ProductDeps struct {
	Products      repository.ProductRepository
	Categories    repository.CategoryRepository
	SubCategories repository.SubCategoryRepository
	Brands        repository.BrandRepository
	Suppliers     repository.SupplierRepository
	Store         storage.Storage
}

func NewProductService(d ProductDeps, lg *zap.Logger) ProductService {
	return &productService{
		products:      d.Products,
		categories:    d.Categories,
		subCategories: d.SubCategories,
		brands:        d.Brands,
		suppliers:     d.Suppliers,
		store:         d.Store,
		lg:            lg,
	}
}

func (s *productService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	p := &model.Product{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Quantity:      in.Quantity,
		Price:         in.Price,
		Colors:        model.StringList(in.Colors),
		ImageCover:    in.ImageCover,
		Images:        model.StringList(in.Images),
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		BrandID:       in.BrandID,
		SupplierID:    in.SupplierID,
	}
	if in.PriceAfterDiscount != nil {
		p.PriceAfterDiscount = decimal.NewNullDecimal(*in.PriceAfterDiscount)
	}
	if in.RatingsAverage != nil {
		p.RatingsAverage = *in.RatingsAverage
	}
	if in.RatingsQuantity != nil {
		p.RatingsQuantity = *in.RatingsQuantity
	}
	p.Slug = slug.Make(p.Title)

	if err := checkPrices(p); err != nil {
		return nil, err
	}
	if err := checkNameFree(ctx, s.products.FindByTitle, p.Title, "Product"); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, p); err != nil {
		return nil, err
	}

	out, err := s.products.Create(ctx, p)
	if err != nil {
		return nil, writeErr(err, "create product", "Product")
	}
	return out, nil
}

func (s *productService) List(ctx context.Context, q ProductQuery) (*Page[model.Product], error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 5
	}
	f := repository.ProductFilter{
		Keyword:    strings.TrimSpace(q.Keyword),
		CategoryID: q.CategoryID,
		Ranges:     q.Ranges,
		PageQuery:  repository.PageQuery{Limit: q.Limit, Offset: (q.Page - 1) * q.Limit},
	}
	switch q.Sort {
	case "":
	case "asc":
		f.SortByTitle = true
	case "desc":
		f.SortByTitle, f.SortDesc = true, true
	default:
		return nil, invalidf("Sort must be asc or desc")
	}

	res, err := s.products.List(ctx, f)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return &Page[model.Product]{Items: res.Items, Total: res.Total}, nil
}

func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "get product", "Product not found")
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, id string, in ProductPatch) (*model.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if err := renameCheck(ctx, s.products.FindByTitle, p.Title, title, "Product"); err != nil {
			return nil, err
		}
		p.Title = title
		p.Slug = slug.Make(title)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.PriceAfterDiscount != nil {
		p.PriceAfterDiscount = decimal.NewNullDecimal(*in.PriceAfterDiscount)
	}
	if in.Colors != nil {
		p.Colors = model.StringList(in.Colors)
	}
	if in.ImageCover != nil {
		p.ImageCover = *in.ImageCover
	}
	if in.Images != nil {
		p.Images = model.StringList(in.Images)
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.SubCategoryID != nil {
		p.SubCategoryID = *in.SubCategoryID
	}
	if in.BrandID != nil {
		p.BrandID = in.BrandID
	}
	if in.SupplierID != nil {
		p.SupplierID = in.SupplierID
	}
	if in.RatingsAverage != nil {
		p.RatingsAverage = *in.RatingsAverage
	}
	if in.RatingsQuantity != nil {
		p.RatingsQuantity = *in.RatingsQuantity
	}

	if err := checkPrices(p); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, p); err != nil {
		return nil, err
	}

	out, err := s.products.Update(ctx, p)
	if err != nil {
		return nil, writeErr(err, "update product", "Product")
	}
	return out, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return deleteErr(err, "delete product", "Product")
	}
	return nil
}

func (s *productService) UploadImage(ctx context.Context, id string, img ImageUpload) (*ImageResult, error) {
	if img.Body == nil {
		return nil, invalidf("Image file is required")
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := storage.ProductImageKey(p.ID, img.Filename)
	if _, err := s.store.Put(ctx, key, img.Body, storage.PutObjectOptions{
		Size:        img.Size,
		ContentType: img.ContentType,
		Metadata:    map[string]string{"original-filename": img.Filename},
	}); err != nil {
		return nil, errors.Wrap(err, "upload to storage")
	}

	if img.Cover {
		p.ImageCover = key
	} else {
		p.Images = append(p.Images, key)
	}
	saved, err := s.products.Update(ctx, p)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.lg.Error("image_rollback_failed", zap.String("key", key), zap.Error(delErr))
			return nil, errors.Wrapf(err, "save product (rollback delete failed: %v)", delErr)
		}
		return nil, errors.Wrap(err, "save product")
	}

	url, err := s.store.PresignGet(ctx, key, imageURLExpiry)
	if err != nil {
		return nil, errors.Wrap(err, "presign image")
	}
	return &ImageResult{Product: saved, Key: key, URL: url}, nil
}

func checkPrices(p *model.Product) error {
	switch {
	case p.Price.IsNegative():
		return invalidf("Price cannot be negative")
	case p.Quantity < 0:
		return invalidf("Quantity cannot be negative")
	case p.PriceAfterDiscount.Valid && p.PriceAfterDiscount.Decimal.IsNegative():
		return invalidf("Price after discount cannot be negative")
	case p.PriceAfterDiscount.Valid && p.PriceAfterDiscount.Decimal.GreaterThan(p.Price):
		return invalidf("Price after discount must not exceed price")
	case p.RatingsAverage < 0 || p.RatingsAverage > 5:
		return invalidf("Ratings average must be between 0 and 5")
	}
	return nil
}

// checkRefs verifies every referenced catalog record exists.
func (s *productService) checkRefs(ctx context.Context, p *model.Product) error {
	if err := refExists(ctx, s.categories.FindByID, p.CategoryID, "Category"); err != nil {
		return err
	}
	if err := refExists(ctx, s.subCategories.FindByID, p.SubCategoryID, "SubCategory"); err != nil {
		return err
	}
	if p.BrandID != nil && *p.BrandID != "" {
		if err := refExists(ctx, s.brands.FindByID, *p.BrandID, "Brand"); err != nil {
			return err
		}
	}
	if p.SupplierID != nil && *p.SupplierID != "" {
		if err := refExists(ctx, s.suppliers.FindByID, *p.SupplierID, "Supplier"); err != nil {
			return err
		}
	}
	return nil
}

func refExists[T any](ctx context.Context, find func(context.Context, string) (*T, error), id, label string) error {
	_, err := find(ctx, id)
	switch {
	case err == nil:
		return nil
	case isNotFound(err):
		return invalidf("%s not found", label)
	default:
		return errors.Wrapf(err, "find %s", strings.ToLower(label))
	}
}

var rangeKeyPattern = regexp.MustCompile(`^(\w+)\[(\w+)\]$`)

// ParseRanges extracts range filters such as price[gte]=10 from query
// parameters, ordered by key. Other keys are ignored.
func ParseRanges(params map[string]string) ([]repository.RangeFilter, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []repository.RangeFilter
	for _, key := range keys {
		m := rangeKeyPattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		field, op := m[1], repository.RangeOp(m[2])
		if !repository.IsRangeField(field) {
			return nil, invalidf("Filtering by %s is not supported", field)
		}
		if !repository.IsRangeOp(op) {
			return nil, invalidf("Unsupported operator %s for %s", op, field)
		}
		v, err := strconv.ParseFloat(params[key], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, invalidf("%s must be a number", key)
		}
		out = append(out, repository.RangeFilter{Field: field, Op: op, Value: v})
	}
	return out, nil
}
