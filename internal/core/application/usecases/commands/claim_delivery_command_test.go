package commands_test

import (
	"testing"

	"mainbridge/internal/core/application/usecases/commands"
	"mainbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimDeliveryCommand_Success(t *testing.T) {
	offerID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	cmd, err := commands.NewClaimDeliveryCommand(offerID, courierID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, offerID.IsEqual(cmd.OfferID()))
	assert.True(t, courierID.IsEqual(cmd.CourierID()))
}

func TestNewClaimDeliveryCommand_EmptyOfferID(t *testing.T) {
	_, err := commands.NewClaimDeliveryCommand(kernel.UUID{}, kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewClaimDeliveryCommand_EmptyCourierID(t *testing.T) {
	_, err := commands.NewClaimDeliveryCommand(kernel.NewUUID(), kernel.UUID{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestClaimDeliveryCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.ClaimDeliveryCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClaimDeliveryCommandIsNotConstructed)
}
