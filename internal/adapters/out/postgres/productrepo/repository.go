package productrepo

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductCatalogGateway using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List returns every product ordered by id. A row that is not a valid product
// fails the whole load.
func (r *GormProductRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrGatewayFailure, err)
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("%w: product %d: %w", ports.ErrGatewayFailure, dto.ID, err)
		}
		products = append(products, p)
	}

	return products, nil
}

var _ ports.ProductCatalogGateway = (*GormProductRepository)(nil)
