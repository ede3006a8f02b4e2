// Package orderrepo stores orders and their line items in postgres.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. NumProducts and FinalPrice are
// written for readers of the table; they are recomputed when an order is loaded.
type OrderDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderNumber string          `gorm:"type:varchar(64);not null;index"`
	Date        time.Time       `gorm:"type:date;not null"`
	Status      int             `gorm:"type:smallint;not null"`
	NumProducts int             `gorm:"type:int;not null"`
	FinalPrice  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Items       []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is a row of the order_items table.
type LineItemDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	OrderID    int64           `gorm:"not null;index"`
	Position   int             `gorm:"not null"`
	ProductID  int64           `gorm:"not null"`
	Name       string          `gorm:"type:varchar(255);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Qty        int             `gorm:"type:int;not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(draft *order.Draft) OrderDTO {
	items := draft.LineItems()
	dto := OrderDTO{
		OrderNumber: draft.OrderNumber(),
		Date:        draft.Date(),
		Status:      int(draft.Status()),
		NumProducts: draft.ItemCount(),
		FinalPrice:  draft.FinalPrice().Decimal(),
		Items:       make([]LineItemDTO, 0, len(items)),
	}

	if id, ok := draft.PersistedID(); ok {
		dto.ID = int64(id)
	}

	for i, item := range items {
		line := LineItemDTO{
			OrderID:    dto.ID,
			Position:   i,
			ProductID:  int64(item.ProductID()),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice().Decimal(),
			Qty:        item.Quantity(),
			TotalPrice: item.TotalPrice().Decimal(),
		}
		if id := item.ID(); id != nil {
			line.ID = int64(*id)
		}
		dto.Items = append(dto.Items, line)
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Draft, error) {
	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, line := range dto.Items {
		price, err := kernel.NewMoney(line.UnitPrice)
		if err != nil {
			return nil, err
		}

		id := order.LineItemID(line.ID)
		item, err := order.RestoreLineItem(&id, catalog.ProductID(line.ProductID), line.Name, price, line.Qty)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreDraft(order.OrderID(dto.ID), dto.OrderNumber, dto.Date, order.Status(dto.Status), items)
}
