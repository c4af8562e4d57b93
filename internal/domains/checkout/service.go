package checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop"
)

// ProductCatalog is the slice of the shop the checkout needs,
// satisfied by the shop service.
type ProductCatalog interface {
	Get(ctx context.Context, id uuid.UUID) (*shop.ProductDTO, error)
}

// Sale is the row written to sales tracking after a confirmed order.
type Sale struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	Amount       int64
	CustomerName string
}

// SalesRecorder persists confirmed orders for the analytics dashboard.
type SalesRecorder interface {
	RecordSale(ctx context.Context, sale Sale) error
}

type Service interface {
	// Quote prices a delivery option without any side effects.
	Quote(ctx context.Context, productID uuid.UUID, deliveryOption string) (*OrderConfirmation, error)

	// PlaceOrder sends the notification email and only then returns the
	// bank-transfer confirmation. An email failure aborts the order.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*OrderConfirmation, error)
}
