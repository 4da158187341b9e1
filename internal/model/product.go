package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Slug               string              `json:"slug"`
	Description        string              `json:"description"`
	Quantity           int                 `json:"quantity"`
	Sold               int                 `json:"sold"`
	Price              decimal.Decimal     `json:"price"`
	PriceAfterDiscount decimal.NullDecimal `json:"priceAfterDiscount"`
	Colors             StringList          `json:"colors"`
	ImageCover         string              `json:"imageCover"`
	Images             StringList          `json:"images"`
	CategoryID         string              `json:"categoryId"`
	SubCategoryID      string              `json:"subCategoryId"`
	BrandID            *string             `json:"brandId,omitempty"`
	SupplierID         *string             `json:"supplierId,omitempty"`
	RatingsAverage     float64             `json:"ratingsAverage"`
	RatingsQuantity    int                 `json:"ratingsQuantity"`
	Category           *Ref                `json:"category,omitempty"`
	SubCategory        *Ref                `json:"subCategory,omitempty"`
	Brand              *Ref                `json:"brand,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// EffectivePrice is the discounted price when one is set, else the list price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.PriceAfterDiscount.Valid && p.PriceAfterDiscount.Decimal.IsPositive() {
		return p.PriceAfterDiscount.Decimal
	}
	return p.Price
}
