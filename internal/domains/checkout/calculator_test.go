package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOrder_Pickup(t *testing.T) {
	quote := ComputeOrder(15000, DeliveryPickup)

	assert.Equal(t, int64(0), quote.ShippingFee)
	assert.Equal(t, int64(15000), quote.Total)
	assert.Equal(t, EstimatePickup, quote.DeliveryEstimate)
}

func TestComputeOrder_HomeState(t *testing.T) {
	quote := ComputeOrder(15000, "Lagos")

	assert.Equal(t, int64(3500), quote.ShippingFee)
	assert.Equal(t, int64(18500), quote.Total)
	assert.Equal(t, EstimateHome, quote.DeliveryEstimate)
}

func TestComputeOrder_NearTier(t *testing.T) {
	for _, state := range []string{"Ogun", "Ondo", "Osun", "Oyo"} {
		quote := ComputeOrder(10000, state)

		assert.Equal(t, int64(4500), quote.ShippingFee, state)
		assert.Equal(t, EstimateShipping, quote.DeliveryEstimate, state)
	}
}

func TestComputeOrder_FarTier(t *testing.T) {
	states := []string{
		"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa",
		"Benue", "Borno", "Cross River", "Delta", "Ebonyi", "Edo", "Ekiti",
		"Enugu", "FCT", "Gombe", "Imo", "Jigawa", "Kaduna", "Kano",
		"Katsina", "Kebbi", "Kogi", "Kwara", "Nasarawa", "Niger", "Plateau",
		"Rivers", "Sokoto", "Taraba", "Yobe", "Zamfara",
	}
	assert.Len(t, states, 32)

	for _, state := range states {
		quote := ComputeOrder(10000, state)

		assert.Equal(t, int64(6000), quote.ShippingFee, state)
		assert.Equal(t, EstimateShipping, quote.DeliveryEstimate, state)
	}
}

func TestComputeOrder_UnlistedRegionFallsBack(t *testing.T) {
	for _, region := range []string{"Abuja", "Elsewhere"} {
		quote := ComputeOrder(10000, region)

		assert.Equal(t, int64(5000), quote.ShippingFee, region)
		assert.Equal(t, EstimateShipping, quote.DeliveryEstimate, region)
	}
}

func TestComputeOrder_TotalIsAlwaysPricePlusFee(t *testing.T) {
	options := []string{DeliveryPickup, "Lagos", "Oyo", "Kano", "Abuja"}
	prices := []int64{0, 1, 15000, 250000}

	for _, option := range options {
		for _, price := range prices {
			quote := ComputeOrder(price, option)
			assert.Equal(t, price+quote.ShippingFee, quote.Total)
		}
	}
}
