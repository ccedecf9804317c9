package commands_test

import (
	"testing"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand_ValidInput(t *testing.T) {
	location := kernel.NewGeoPoint(17.5, 78.2)
	lines := []commands.OrderLineInput{
		{ItemID: 1, Name: "Rice (1kg)", UnitPrice: decimal.NewFromInt(45), Quantity: 2},
	}

	cmd, err := commands.NewSubmitOrderCommand(
		"Ravi Kumar", "9876543210", "12 Bazaar Street", "ring the bell", lines, &location,
	)
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", cmd.CustomerName())
	assert.Equal(t, "9876543210", cmd.CustomerPhone())
	assert.Equal(t, "12 Bazaar Street", cmd.DeliveryAddress())
	assert.Equal(t, "ring the bell", cmd.Notes())
	assert.Len(t, cmd.Lines(), 1)
	require.NotNil(t, cmd.Location())
	assert.InDelta(t, 17.5, cmd.Location().Latitude(), 1e-9)
}

func TestNewSubmitOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(
		"Ravi Kumar", "9876543210", "12 Bazaar Street", "", nil, nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSubmitOrderCommand_UnconstructedLocation(t *testing.T) {
	invalid := kernel.GeoPoint{} // zero value, should trigger validation error
	_, err := commands.NewSubmitOrderCommand(
		"Ravi Kumar", "9876543210", "12 Bazaar Street", "",
		[]commands.OrderLineInput{{ItemID: 1, Name: "Rice", UnitPrice: decimal.NewFromInt(45), Quantity: 1}},
		&invalid,
	)
	require.Error(t, err)
}

func TestSubmitOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.SubmitOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
}

func TestSubmitOrderCommand_Lines_ReturnsCopy(t *testing.T) {
	lines := []commands.OrderLineInput{
		{ItemID: 1, Name: "Rice (1kg)", UnitPrice: decimal.NewFromInt(45), Quantity: 2},
	}
	cmd, err := commands.NewSubmitOrderCommand(
		"Ravi Kumar", "9876543210", "12 Bazaar Street", "", lines, nil,
	)
	require.NoError(t, err)

	got := cmd.Lines()
	got[0].Quantity = 99

	assert.Equal(t, 2, cmd.Lines()[0].Quantity)
}
