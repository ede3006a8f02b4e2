// Package productrepo reads the product catalog from the products table.
package productrepo

import (
	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ProductDTO is a row of the products table.
type ProductDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	return catalog.NewProduct(catalog.ProductID(dto.ID), dto.Name, price)
}
