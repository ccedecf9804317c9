package commands_test

import (
	"testing"
	"time"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(7, order.Preparing)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, order.Preparing, cmd.NewStatus())
}

func TestNewChangeOrderStatusCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(0, order.Confirmed)
	require.Error(t, err)

	_, err = commands.NewChangeOrderStatusCommand(7, order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRemoveOrderCommand_InvalidID(t *testing.T) {
	_, err := commands.NewRemoveOrderCommand(-1)
	require.Error(t, err)
}

func TestNewAddPriceItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddPriceItemCommand("Ghee (500g)", decimal.NewFromInt(275), "Dairy")
	require.NoError(t, err)
	assert.Equal(t, "Ghee (500g)", cmd.Name())
	assert.Equal(t, "Dairy", cmd.Category())
	assert.True(t, decimal.NewFromInt(275).Equal(cmd.Price()))
}

func TestNewAddPriceItemCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddPriceItemCommand("   ", decimal.NewFromInt(10), "Dairy")
	require.Error(t, err)

	_, err = commands.NewAddPriceItemCommand("Ghee", decimal.NewFromInt(-1), "Dairy")
	require.Error(t, err)
}

func TestNewUpdatePriceItemCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewUpdatePriceItemCommand(0, "Ghee", decimal.NewFromInt(10), "Dairy")
	require.Error(t, err)
}

func TestNewRemovePriceItemCommand_InvalidID(t *testing.T) {
	_, err := commands.NewRemovePriceItemCommand(0)
	require.Error(t, err)
}

func TestNewPurgeExpiredOrdersCommand_Validation(t *testing.T) {
	cmd, err := commands.NewPurgeExpiredOrdersCommand(30 * 24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, cmd.Retention())

	_, err = commands.NewPurgeExpiredOrdersCommand(0)
	require.Error(t, err)
}
