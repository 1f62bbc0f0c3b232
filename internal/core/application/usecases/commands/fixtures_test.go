package commands_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

func testParcelDetails() parcel.Details {
	return parcel.Details{
		TrackingID:    "TRK-20260901-0001",
		Name:          "Books",
		Type:          "regular",
		Weight:        2.5,
		DeliveryZone:  "inside_dhaka",
		BaseCost:      100,
		ExtraCharges:  20,
		DeliveryCost:  120,
		PaymentMethod: "Card",
		CreatedBy:     "sender@example.com",
		Sender: parcel.Contact{
			Name:  "Sender",
			Phone: "01711111111",
		},
		Receiver: parcel.Contact{
			Name:  "Receiver",
			Phone: "01722222222",
		},
	}
}

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), testParcelDetails())
	require.NoError(t, err)
	return p
}

func testRiderProfile(email string) rider.Profile {
	return rider.Profile{
		Name:      "Rahim Uddin",
		Email:     email,
		Age:       27,
		Phone:     "01733333333",
		Region:    "Dhaka",
		District:  "Dhaka",
		NID:       "1990123456789",
		BikeBrand: "Hero",
		BikeRegNo: "DHK-METRO-LA-11-2233",
	}
}

func newTestRider(t *testing.T, email string) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), testRiderProfile(email))
	require.NoError(t, err)
	return r
}
