package queries

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
)

// GetSessionQueryHandler builds the session view under the session lock, so the
// view is always consistent with a single point in the session's history.
type GetSessionQueryHandler struct {
	store ports.SessionStore
}

// NewGetSessionQueryHandler creates a handler for session views.
func NewGetSessionQueryHandler(store ports.SessionStore) GetSessionQueryHandler {
	return GetSessionQueryHandler{store: store}
}

// Handle returns the view. Reading a session counts as activity for expiry.
func (h GetSessionQueryHandler) Handle(_ context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	s, err := h.store.Get(query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	var response GetSessionQueryResponse
	err = s.Do(time.Now(), func(draft *order.Draft, snapshot *catalog.Snapshot) error {
		response = newResponse(draft, snapshot)
		return nil
	})
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	response.SessionID = s.ID()
	return response, nil
}

func newResponse(draft *order.Draft, snapshot *catalog.Snapshot) GetSessionQueryResponse {
	response := GetSessionQueryResponse{
		OrderNumber:         draft.OrderNumber(),
		Date:                draft.Date(),
		Status:              draft.Status(),
		ItemCount:           draft.ItemCount(),
		FinalPrice:          draft.FinalPrice(),
		OrderNumberEditable: draft.CanEditOrderNumber(),
		StatusSelectable:    draft.CanSelectStatus(),
		CanAddItems:         draft.CanEditLineItems() && snapshot.Available(),
		CatalogAvailable:    snapshot.Available(),
		Statuses:            order.Statuses(),
	}

	if id, ok := draft.PersistedID(); ok {
		response.OrderID = &id
	}

	items := draft.LineItems()
	response.LineItems = make([]LineItemView, 0, len(items))
	for _, item := range items {
		response.LineItems = append(response.LineItems, LineItemView{
			ID:         item.ID(),
			ProductID:  item.ProductID(),
			Name:       item.Name(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
			TotalPrice: item.TotalPrice(),
		})
	}

	products := snapshot.Products()
	response.Products = make([]ProductView, 0, len(products))
	for _, p := range products {
		response.Products = append(response.Products, ProductView{
			ID:        p.ID(),
			Name:      p.Name(),
			UnitPrice: p.UnitPrice(),
		})
	}

	return response
}
