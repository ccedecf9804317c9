package commands_test

import (
	"context"
	"testing"
	"time"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	stored := storedOrder(t, 3, time.Now())

	repo := new(MockOrderRepository)
	repo.On("Remove", ctx, int64(3)).Return(stored, nil).Once()

	cmd, err := commands.NewRemoveOrderCommand(3)
	require.NoError(t, err)

	removed, err := commands.NewRemoveOrderCommandHandler(repo).Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, stored.IsEqual(removed))
	repo.AssertExpectations(t)
}

func TestRemoveOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockOrderRepository)
	repo.On("Remove", ctx, int64(12)).Return(nil, errs.NewObjectNotFoundError("order", int64(12))).Once()

	cmd, err := commands.NewRemoveOrderCommand(12)
	require.NoError(t, err)

	_, err = commands.NewRemoveOrderCommandHandler(repo).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRemoveOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	handler := commands.NewRemoveOrderCommandHandler(new(MockOrderRepository))

	_, err := handler.Handle(context.Background(), commands.RemoveOrderCommand{})
	require.Error(t, err)
}
