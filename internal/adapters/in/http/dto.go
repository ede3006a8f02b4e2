package http

import (
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OpenSessionRequest struct {
	OrderID *int64 `json:"orderId"`
}

type OpenSessionResponse struct {
	SessionID string `json:"sessionId"`
}

type AddLineItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// UpdateLineItemRequest carries exactly one of ProductID or Quantity.
type UpdateLineItemRequest struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type SetOrderNumberRequest struct {
	OrderNumber string `json:"orderNumber"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

type SaveOrderResponse struct {
	OrderID int64 `json:"orderId"`
	Created bool  `json:"created"`
}

type LineItem struct {
	ID         *int64 `json:"id"`
	ProductID  int64  `json:"productId"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	Qty        int    `json:"qty"`
	TotalPrice string `json:"totalPrice"`
}

type Product struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
}

// Session is the draft in the serialized order shape plus the session flags
// and the product picker.
type Session struct {
	SessionID   string     `json:"sessionId"`
	OrderID     *int64     `json:"orderId"`
	OrderNumber string     `json:"orderNumber"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	NumProducts int        `json:"numProducts"`
	FinalPrice  string     `json:"finalPrice"`
	Products    []LineItem `json:"products"`

	OrderNumberEditable bool `json:"orderNumberEditable"`
	StatusSelectable    bool `json:"statusSelectable"`
	CanAddItems         bool `json:"canAddItems"`
	CatalogAvailable    bool `json:"catalogAvailable"`

	Statuses []string  `json:"statuses"`
	Catalog  []Product `json:"catalog"`
}

func newSession(view queries.GetSessionQueryResponse) Session {
	resp := Session{
		SessionID:           view.SessionID.String(),
		OrderNumber:         view.OrderNumber,
		Date:                view.Date.Format(order.DateLayout),
		Status:              view.Status.String(),
		NumProducts:         view.ItemCount,
		FinalPrice:          view.FinalPrice.String(),
		Products:            make([]LineItem, len(view.LineItems)),
		OrderNumberEditable: view.OrderNumberEditable,
		StatusSelectable:    view.StatusSelectable,
		CanAddItems:         view.CanAddItems,
		CatalogAvailable:    view.CatalogAvailable,
		Statuses:            make([]string, len(view.Statuses)),
		Catalog:             make([]Product, len(view.Products)),
	}

	if view.OrderID != nil {
		id := int64(*view.OrderID)
		resp.OrderID = &id
	}

	for i, item := range view.LineItems {
		var id *int64
		if item.ID != nil {
			v := int64(*item.ID)
			id = &v
		}
		resp.Products[i] = LineItem{
			ID:         id,
			ProductID:  int64(item.ProductID),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice.String(),
			Qty:        item.Quantity,
			TotalPrice: item.TotalPrice.String(),
		}
	}

	for i, status := range view.Statuses {
		resp.Statuses[i] = status.String()
	}

	for i, p := range view.Products {
		resp.Catalog[i] = Product{
			ID:        int64(p.ID),
			Name:      p.Name,
			UnitPrice: p.UnitPrice.String(),
		}
	}

	return resp
}
