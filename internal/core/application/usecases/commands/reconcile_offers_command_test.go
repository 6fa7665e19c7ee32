package commands_test

import (
	"testing"

	"mainbridge/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReconcileOffersCommand_Success(t *testing.T) {
	cmd := commands.NewReconcileOffersCommand()

	require.NoError(t, cmd.Validate())
}

func TestReconcileOffersCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.ReconcileOffersCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReconcileOffersCommandIsNotConstructed)
}
