package ordersclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderDTO is the order document exchanged with the Orders API.
type OrderDTO struct {
	ID          *int64        `json:"id,omitempty"`
	OrderNumber string        `json:"orderNumber"`
	Date        string        `json:"date"`
	Status      string        `json:"status"`
	NumProducts int           `json:"numProducts"`
	FinalPrice  json.Number   `json:"finalPrice"`
	Products    []LineItemDTO `json:"products"`
}

// LineItemDTO is one entry of OrderDTO.Products. ID is null for items the
// Orders API has not stored yet.
type LineItemDTO struct {
	ID         *int64      `json:"id"`
	ProductID  int64       `json:"productId"`
	Name       string      `json:"name"`
	UnitPrice  json.Number `json:"unitPrice"`
	Qty        int         `json:"qty"`
	TotalPrice json.Number `json:"totalPrice"`
}

type createdDTO struct {
	ID int64 `json:"id"`
}

func fromDomain(draft *order.Draft) OrderDTO {
	items := draft.LineItems()
	dto := OrderDTO{
		OrderNumber: draft.OrderNumber(),
		Date:        draft.Date().Format(order.DateLayout),
		Status:      draft.Status().String(),
		NumProducts: draft.ItemCount(),
		FinalPrice:  json.Number(draft.FinalPrice().String()),
		Products:    make([]LineItemDTO, 0, len(items)),
	}

	if id, ok := draft.PersistedID(); ok {
		v := int64(id)
		dto.ID = &v
	}

	for _, item := range items {
		line := LineItemDTO{
			ProductID:  int64(item.ProductID()),
			Name:       item.Name(),
			UnitPrice:  json.Number(item.UnitPrice().String()),
			Qty:        item.Quantity(),
			TotalPrice: json.Number(item.TotalPrice().String()),
		}
		if id := item.ID(); id != nil {
			v := int64(*id)
			line.ID = &v
		}
		dto.Products = append(dto.Products, line)
	}

	return dto
}

// toDomain restores the order. numProducts, finalPrice and every totalPrice
// are ignored; the draft recomputes them from unit prices and quantities.
func (dto OrderDTO) toDomain(id order.OrderID) (*order.Draft, error) {
	date, err := time.Parse(order.DateLayout, dto.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Products))
	var itemErrs []error
	for i, p := range dto.Products {
		item, err := p.toDomain()
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("products[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err = errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	return order.RestoreDraft(id, dto.OrderNumber, date, status, items)
}

func (dto LineItemDTO) toDomain() (*order.LineItem, error) {
	price, err := kernel.MoneyFromString(dto.UnitPrice.String())
	if err != nil {
		return nil, err
	}

	var id *order.LineItemID
	if dto.ID != nil {
		v := order.LineItemID(*dto.ID)
		id = &v
	}

	return order.RestoreLineItem(id, catalog.ProductID(dto.ProductID), dto.Name, price, dto.Qty)
}
