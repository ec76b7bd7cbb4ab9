package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	lines := []commands.OrderLine{{ProductID: 3, Quantity: 2}, {ProductID: 4, Quantity: 1}}
	cmd, err := commands.NewPlaceOrderCommand(1, 2, lines)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cmd.UserID())
	assert.Equal(t, int64(2), cmd.RestaurantID())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewPlaceOrderCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(0, 2, []commands.OrderLine{{ProductID: 3, Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPlaceOrderCommand_InvalidRestaurantID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(1, -5, []commands.OrderLine{{ProductID: 3, Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPlaceOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(1, 2, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
}

func TestNewPlaceOrderCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(1, 2, []commands.OrderLine{{ProductID: 3, Quantity: 0}})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
