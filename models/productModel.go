package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product categories. The storefront only knows these three.
const (
	CategoryFigure = "figure"
	CategorySpare  = "spare"
	CategoryCustom = "custom"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(8,2)" binding:"required"`
	ImageUrl    string          `json:"imageUrl"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category" binding:"required,oneof=figure spare custom"`
	Tags        datatypes.JSON  `json:"tags"`

	// AverageRating and ReviewCount are derived columns, rewritten from the
	// review rows on every review write.
	AverageRating float64 `json:"averageRating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount   int     `json:"reviewCount" gorm:"default:0"`

	Images  []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Reviews []Review       `json:"reviews,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}
