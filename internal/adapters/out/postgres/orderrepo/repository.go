package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrdersGateway using GORM. Every write
// runs in one transaction covering the order row and all of its items.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Get retrieves an order with its items in insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id order.OrderID) (*order.Draft, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		return nil, r.wrap(id, err)
	}

	draft, err := toDomain(dto)
	if err != nil {
		return nil, fmt.Errorf("%w: order %d is not usable: %w", ports.ErrGatewayFailure, id, err)
	}
	return draft, nil
}

// Create inserts the order and its items and returns the new order id.
func (r *GormOrderRepository) Create(ctx context.Context, draft *order.Draft) (order.OrderID, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(draft)
	dto.ID = 0

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ports.ErrGatewayFailure, err)
	}

	return order.OrderID(dto.ID), nil
}

// Update overwrites the order row and replaces its items. Items that kept their
// id keep their row id; new items get fresh ids.
func (r *GormOrderRepository) Update(ctx context.Context, id order.OrderID, draft *order.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	dto := fromDomain(draft)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).Where("id = ?", int64(id)).Updates(map[string]any{
			"order_number": dto.OrderNumber,
			"date":         dto.Date,
			"status":       dto.Status,
			"num_products": dto.NumProducts,
			"final_price":  dto.FinalPrice,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("order_id = ?", int64(id)).Delete(&LineItemDTO{}).Error; err != nil {
			return err
		}

		for _, line := range dto.Items {
			line.OrderID = int64(id)
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return r.wrap(id, err)
	}

	return nil
}

// Delete removes the order; its items go with it.
func (r *GormOrderRepository) Delete(ctx context.Context, id order.OrderID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", int64(id)).Delete(&LineItemDTO{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&OrderDTO{}, int64(id))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return r.wrap(id, err)
	}

	return nil
}

func (r *GormOrderRepository) wrap(id order.OrderID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrOrderNotFound, errs.NewObjectNotFoundError("order", int64(id)))
	}
	return fmt.Errorf("%w: %w", ports.ErrGatewayFailure, err)
}

var _ ports.OrdersGateway = (*GormOrderRepository)(nil)
