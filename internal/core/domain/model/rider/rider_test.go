package rider_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() rider.Profile {
	return rider.Profile{
		Name:      "Karim",
		Email:     "karim@example.com",
		Age:       28,
		Phone:     "01733333333",
		Region:    "Dhaka",
		District:  "Dhaka",
		NID:       "1990123456789",
		BikeBrand: "Hero",
		BikeRegNo: "DHK-1234",
	}
}

func TestNewRider(t *testing.T) {
	t.Run("creates_pending_idle_rider", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), validProfile())

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, rider.StatusPending, r.Status())
		assert.Nil(t, r.CurrentDelivery())
		assert.False(t, r.AppliedAt().IsZero())
	})

	t.Run("requires_email", func(t *testing.T) {
		profile := validProfile()
		profile.Email = ""

		_, err := rider.NewRider(kernel.NewUUID(), profile)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_nid", func(t *testing.T) {
		profile := validProfile()
		profile.NID = ""

		_, err := rider.NewRider(kernel.NewUUID(), profile)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_age_out_of_range", func(t *testing.T) {
		for _, age := range []int{17, 66, 0} {
			profile := validProfile()
			profile.Age = age

			_, err := rider.NewRider(kernel.NewUUID(), profile)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestRider_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var r rider.Rider

		require.ErrorIs(t, r.Validate(), rider.ErrRiderIsNotConstructed)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []rider.Status{
		rider.StatusPending, rider.StatusApproved, rider.StatusRejected, rider.StatusDeactivated,
	} {
		require.NoError(t, s.Validate())
	}

	require.ErrorIs(t, rider.Status("banned").Validate(), errs.ErrValueIsInvalid)
}

func TestRider_UpdateStatus(t *testing.T) {
	r, _ := rider.NewRider(kernel.NewUUID(), validProfile())

	require.NoError(t, r.UpdateStatus(rider.StatusApproved))
	assert.Equal(t, rider.StatusApproved, r.Status())

	require.ErrorIs(t, r.UpdateStatus(rider.Status("banned")), errs.ErrValueIsInvalid)
	assert.Equal(t, rider.StatusApproved, r.Status())
}

func TestRider_StartDelivery(t *testing.T) {
	t.Run("binds_idle_rider", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID(), validProfile())
		parcelID := kernel.NewUUID()

		require.NoError(t, r.StartDelivery(parcelID))

		current := r.CurrentDelivery()
		require.NotNil(t, current)
		assert.True(t, current.IsEqual(parcelID))
	})

	t.Run("rebinding_same_parcel_is_noop", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID(), validProfile())
		parcelID := kernel.NewUUID()
		require.NoError(t, r.StartDelivery(parcelID))

		require.NoError(t, r.StartDelivery(parcelID))
	})

	t.Run("busy_rider_rejects_second_parcel", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID(), validProfile())
		require.NoError(t, r.StartDelivery(kernel.NewUUID()))

		err := r.StartDelivery(kernel.NewUUID())

		require.ErrorIs(t, err, rider.ErrRiderBusy)
	})
}

func TestRider_CompleteDelivery(t *testing.T) {
	t.Run("releases_the_bound_parcel", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID(), validProfile())
		parcelID := kernel.NewUUID()
		require.NoError(t, r.StartDelivery(parcelID))

		require.NoError(t, r.CompleteDelivery(parcelID))
		assert.Nil(t, r.CurrentDelivery())
	})

	t.Run("rejects_parcel_the_rider_is_not_carrying", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID(), validProfile())
		require.NoError(t, r.StartDelivery(kernel.NewUUID()))

		err := r.CompleteDelivery(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotNil(t, r.CurrentDelivery())
	})

	t.Run("rejects_idle_rider", func(t *testing.T) {
		r, _ := rider.NewRider(kernel.NewUUID(), validProfile())

		require.ErrorIs(t, r.CompleteDelivery(kernel.NewUUID()), errs.ErrValueIsInvalid)
	})
}

func TestRestoreRider(t *testing.T) {
	original, _ := rider.NewRider(kernel.NewUUID(), validProfile())
	require.NoError(t, original.UpdateStatus(rider.StatusApproved))
	parcelID := kernel.NewUUID()
	require.NoError(t, original.StartDelivery(parcelID))

	restored, err := rider.RestoreRider(
		original.ID(),
		original.Profile(),
		original.Status(),
		original.CurrentDelivery(),
		original.AppliedAt(),
	)

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))
	assert.Equal(t, rider.StatusApproved, restored.Status())
	require.NotNil(t, restored.CurrentDelivery())
	assert.True(t, restored.CurrentDelivery().IsEqual(parcelID))
}
