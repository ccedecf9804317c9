package commands_test

import (
	"context"
	"testing"
	"time"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	stored := storedOrder(t, 7, time.Now().Add(-time.Hour))

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, int64(7)).Return(stored, nil).Once()
	repo.On("Update", ctx, stored).Return(nil).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(7, order.Confirmed)
	require.NoError(t, err)

	updated, err := commands.NewChangeOrderStatusCommandHandler(repo).Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Confirmed, updated.Status())
	assert.True(t, updated.UpdatedAt().After(updated.CreatedAt()))
	repo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, int64(99)).Return(nil, errs.NewObjectNotFoundError("order", int64(99))).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(99, order.Confirmed)
	require.NoError(t, err)

	_, err = commands.NewChangeOrderStatusCommandHandler(repo).Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	handler := commands.NewChangeOrderStatusCommandHandler(new(MockOrderRepository))

	_, err := handler.Handle(context.Background(), commands.ChangeOrderStatusCommand{})
	require.Error(t, err)
}
