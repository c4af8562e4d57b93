package checkout

// DeliveryPickup is the only non-state delivery option.
const DeliveryPickup = "pickup"

// PickupAddress is printed verbatim in the order notification when the
// buyer chooses pickup.
const PickupAddress = "84/85, Modern Ebute Shopping Complex, Ebute, Ikorodu, Lagos."

const (
	pickupFee  int64 = 0
	homeFee    int64 = 3500
	nearFee    int64 = 4500
	defaultFee int64 = 5000
	farFee     int64 = 6000
)

const (
	EstimatePickup   = "Pick up in store"
	EstimateHome     = "1 - 3 business days"
	EstimateShipping = "2 - 5 business days"
)

const homeState = "Lagos"

// nearStates border the home state and ship cheaper than the rest of
// the country.
var nearStates = map[string]struct{}{
	"Ogun": {},
	"Ondo": {},
	"Osun": {},
	"Oyo":  {},
}

// farStates covers the remaining states. Anything not listed here or
// above falls back to the default tier.
var farStates = map[string]struct{}{
	"Abia":        {},
	"Adamawa":     {},
	"Akwa Ibom":   {},
	"Anambra":     {},
	"Bauchi":      {},
	"Bayelsa":     {},
	"Benue":       {},
	"Borno":       {},
	"Cross River": {},
	"Delta":       {},
	"Ebonyi":      {},
	"Edo":         {},
	"Ekiti":       {},
	"Enugu":       {},
	"FCT":         {},
	"Gombe":       {},
	"Imo":         {},
	"Jigawa":      {},
	"Kaduna":      {},
	"Kano":        {},
	"Katsina":     {},
	"Kebbi":       {},
	"Kogi":        {},
	"Kwara":       {},
	"Nasarawa":    {},
	"Niger":       {},
	"Plateau":     {},
	"Rivers":      {},
	"Sokoto":      {},
	"Taraba":      {},
	"Yobe":        {},
	"Zamfara":     {},
}

// Quote is the priced outcome of a delivery choice.
type Quote struct {
	ShippingFee      int64  `json:"shipping_fee"`
	Total            int64  `json:"total"`
	DeliveryEstimate string `json:"delivery_estimate"`
}

// ComputeOrder prices a single-product order. The total is always
// price plus fee, there are no discounts or taxes.
func ComputeOrder(price int64, deliveryOption string) Quote {
	if deliveryOption == DeliveryPickup {
		return Quote{ShippingFee: pickupFee, Total: price, DeliveryEstimate: EstimatePickup}
	}

	fee := defaultFee
	estimate := EstimateShipping
	switch {
	case deliveryOption == homeState:
		fee = homeFee
		estimate = EstimateHome
	case contains(nearStates, deliveryOption):
		fee = nearFee
	case contains(farStates, deliveryOption):
		fee = farFee
	}
	return Quote{ShippingFee: fee, Total: price + fee, DeliveryEstimate: estimate}
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
