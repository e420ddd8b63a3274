package vehicle_test

import (
	"testing"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/model/vehicle"
	"haulaway/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	date, err := kernel.ServiceDateFromString("2026-09-15")
	require.NoError(t, err)

	t.Run("creates valid assignment", func(t *testing.T) {
		a, err := vehicle.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), "82노1234", date)

		require.NoError(t, err)
		assert.NoError(t, a.Validate())
		assert.Equal(t, "82노1234", a.VehicleID())
	})

	t.Run("requires vehicle id", func(t *testing.T) {
		_, err := vehicle.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), "", date)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires constructed date", func(t *testing.T) {
		_, err := vehicle.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), "82노1234", kernel.ServiceDate{})

		require.Error(t, err)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var a vehicle.Assignment

		assert.ErrorIs(t, a.Validate(), vehicle.ErrAssignmentIsNotConstructed)
	})
}
