package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/checkout"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/email"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"
)

type checkoutService struct {
	catalog         checkout.ProductCatalog
	sales           checkout.SalesRecorder
	email           email.Sender
	orderTemplateID string
	toEmail         string
}

func NewCheckoutService(catalog checkout.ProductCatalog, sales checkout.SalesRecorder, sender email.Sender, orderTemplateID, toEmail string) checkout.Service {
	return &checkoutService{
		catalog:         catalog,
		sales:           sales,
		email:           sender,
		orderTemplateID: orderTemplateID,
		toEmail:         toEmail,
	}
}

func (s *checkoutService) Quote(ctx context.Context, productID uuid.UUID, deliveryOption string) (*checkout.OrderConfirmation, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, checkout.ErrProductNotFound
	}
	return s.confirmation(product.ID, product.Name, product.Price, deliveryOption), nil
}

func (s *checkoutService) PlaceOrder(ctx context.Context, req checkout.PlaceOrderRequest) (*checkout.OrderConfirmation, error) {
	product, err := s.catalog.Get(ctx, req.ProductID)
	if err != nil {
		return nil, checkout.ErrProductNotFound
	}
	if !product.Active {
		return nil, checkout.ErrProductUnavailable
	}

	conf := s.confirmation(product.ID, product.Name, product.Price, req.DeliveryOption)

	// The notification is the order. Without it nobody fulfils anything,
	// so a send failure aborts before the buyer sees bank details.
	if err := s.email.Send(ctx, s.orderTemplateID, s.orderParams(req, conf)); err != nil {
		logger.Error("order notification failed", err)
		return nil, checkout.ErrNotificationFailed
	}

	// Best effort, the dashboard surviving a miss beats losing the order.
	sale := checkout.Sale{
		ID:           uuid.New(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		Amount:       conf.Quote.Total,
		CustomerName: req.Name,
	}
	if err := s.sales.RecordSale(ctx, sale); err != nil {
		logger.Warn("failed to record sale", err)
	}

	return conf, nil
}

func (s *checkoutService) confirmation(id uuid.UUID, name string, price int64, deliveryOption string) *checkout.OrderConfirmation {
	conf := &checkout.OrderConfirmation{
		Product:       checkout.ProductSnapshot{ID: id, Name: name, Price: price},
		Quote:         checkout.ComputeOrder(price, deliveryOption),
		BankName:      checkout.BankName,
		AccountNumber: checkout.AccountNumber,
		AccountName:   checkout.AccountName,
		ProofEmail:    checkout.ProofEmail,
	}
	if deliveryOption == checkout.DeliveryPickup {
		conf.PickupAddress = checkout.PickupAddress
	}
	return conf
}

func (s *checkoutService) orderParams(req checkout.PlaceOrderRequest, conf *checkout.OrderConfirmation) map[string]string {
	address := req.Address
	if req.DeliveryOption == checkout.DeliveryPickup {
		address = checkout.PickupAddress
	}
	return map[string]string{
		"to_email":          s.toEmail,
		"product_name":      conf.Product.Name,
		"product_price":     formatNaira(conf.Product.Price),
		"shipping_fee":      formatNaira(conf.Quote.ShippingFee),
		"total":             formatNaira(conf.Quote.Total),
		"delivery_option":   req.DeliveryOption,
		"delivery_estimate": conf.Quote.DeliveryEstimate,
		"customer_name":     req.Name,
		"customer_email":    req.Email,
		"customer_phone":    req.Phone,
		"delivery_address":  address,
	}
}

// formatNaira renders whole naira with thousands separators, ₦15,000.
func formatNaira(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := false
	if digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return fmt.Sprintf("-₦%s", grouped)
	}
	return fmt.Sprintf("₦%s", grouped)
}
