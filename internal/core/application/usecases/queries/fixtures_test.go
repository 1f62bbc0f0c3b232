package queries_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

func makeParcel(t *testing.T, trackingID string, sender string) *parcel.Parcel {
	t.Helper()

	details := parcel.Details{
		TrackingID:    trackingID,
		Name:          "Books",
		Type:          "regular",
		Weight:        2.5,
		DeliveryZone:  "inside_dhaka",
		BaseCost:      100,
		ExtraCharges:  20,
		DeliveryCost:  120,
		PaymentMethod: "Card",
		CreatedBy:     sender,
		Sender: parcel.Contact{
			Name:  "Sender",
			Phone: "01711111111",
		},
		Receiver: parcel.Contact{
			Name:  "Receiver",
			Phone: "01722222222",
		},
	}

	aggregate, err := parcel.NewParcel(kernel.NewUUID(), details)
	require.NoError(t, err)
	return aggregate
}

func makeRider(t *testing.T, email string, nid string) *rider.Rider {
	t.Helper()

	profile := rider.Profile{
		Name:      "Rahim Uddin",
		Email:     email,
		Age:       27,
		Phone:     "01733333333",
		Region:    "Dhaka",
		District:  "Dhaka",
		NID:       nid,
		BikeBrand: "Hero",
		BikeRegNo: "DHK-METRO-LA-11-2233",
	}

	aggregate, err := rider.NewRider(kernel.NewUUID(), profile)
	require.NoError(t, err)
	return aggregate
}

func assignParcel(t *testing.T, aggregate *parcel.Parcel, assignee *rider.Rider) {
	t.Helper()

	profile := assignee.Profile()
	require.NoError(t, assignee.StartDelivery(aggregate.ID()))
	require.NoError(t, aggregate.AssignRider(parcel.RiderSnapshot{
		ID:        assignee.ID(),
		Name:      profile.Name,
		Email:     profile.Email,
		Phone:     profile.Phone,
		BikeRegNo: profile.BikeRegNo,
	}, "admin@example.com"))
}
