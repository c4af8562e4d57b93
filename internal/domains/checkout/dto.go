package checkout

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Payment is settled by manual bank transfer, so the confirmation
// carries fixed account details and the address proof should go to.
const (
	BankName      = "United Bank for Africa"
	AccountNumber = "1026728341"
	AccountName   = "Image by Ayobola Studios"
	ProofEmail    = "imagebyayobola@gmail.com"
)

// PlaceOrderRequest is the buyer's checkout form.
type PlaceOrderRequest struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	DeliveryOption string    `json:"delivery_option"`
}

func (r PlaceOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.DeliveryOption, validation.Required),
		validation.Field(&r.Address,
			validation.Required.When(r.DeliveryOption != DeliveryPickup).
				Error("a delivery address is required for shipping")),
	)
}

// ProductSnapshot freezes the product's name and price at order time.
type ProductSnapshot struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

// OrderConfirmation is returned only after the notification email went
// out. It repeats everything the buyer needs to transfer and confirm.
type OrderConfirmation struct {
	Product       ProductSnapshot `json:"product"`
	Quote         Quote           `json:"quote"`
	PickupAddress string          `json:"pickup_address,omitempty"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
	ProofEmail    string          `json:"proof_email"`
}
