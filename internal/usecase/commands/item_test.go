//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	commandsmock "shareit/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type itemCommandsFixture struct {
	items    *commandsmock.MockItemRepository
	users    *commandsmock.MockUserRepository
	requests *commandsmock.MockRequestRepository
	sut      commands.ItemCommands
}

func newItemCommandsFixture(t *testing.T) *itemCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &itemCommandsFixture{
		items:    commandsmock.NewMockItemRepository(ctrl),
		users:    commandsmock.NewMockUserRepository(ctrl),
		requests: commandsmock.NewMockRequestRepository(ctrl),
	}
	f.sut = commands.NewItemCommands(f.items, f.users, f.requests)
	return f
}

func TestItemCommands_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	input := commands.CreateItemInput{
		Name:        "cordless drill",
		Description: "18V with two batteries",
		Available:   true,
	}

	t.Run("plain item carries no request link", func(t *testing.T) {
		f := newItemCommandsFixture(t)

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.items.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, itm *item.Item) error {
				assert.Nil(t, itm.RequestID())
				return nil
			})

		got, err := f.sut.Create(ctx, ownerID, input)
		require.NoError(t, err)
		assert.Equal(t, ownerID, got.OwnerID())
	})

	t.Run("item answering a request is linked to it", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		requestID := uuid.New()
		linked := input
		linked.RequestID = &requestID

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.requests.EXPECT().Exists(ctx, requestID).Return(true, nil)
		f.items.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, itm *item.Item) error {
				require.NotNil(t, itm.RequestID())
				assert.Equal(t, requestID, *itm.RequestID())
				return nil
			})

		got, err := f.sut.Create(ctx, ownerID, linked)
		require.NoError(t, err)
		require.NotNil(t, got.RequestID())
		assert.Equal(t, requestID, *got.RequestID())
	})

	t.Run("unknown request id fails before the item is stored", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		requestID := uuid.New()
		linked := input
		linked.RequestID = &requestID

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.requests.EXPECT().Exists(ctx, requestID).Return(false, nil)

		_, err := f.sut.Create(ctx, ownerID, linked)
		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})

	t.Run("blank name fails validation", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		bad := input
		bad.Name = "   "

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)

		_, err := f.sut.Create(ctx, ownerID, bad)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestItemCommands_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("only the owner may patch", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		strangerID := uuid.New()
		itm := item.Reconstruct(uuid.New(), ownerID, "drill", "desc", true, nil)

		f.users.EXPECT().Exists(ctx, strangerID).Return(true, nil)
		f.items.EXPECT().FindByID(ctx, itm.ID()).Return(itm, nil)

		name := "renamed"
		_, err := f.sut.Update(ctx, strangerID, itm.ID(), commands.UpdateItemInput{Name: &name})
		assert.ErrorIs(t, err, errs.ErrNotOwner)
	})

	t.Run("missing item", func(t *testing.T) {
		f := newItemCommandsFixture(t)
		itemID := uuid.New()

		f.users.EXPECT().Exists(ctx, ownerID).Return(true, nil)
		f.items.EXPECT().FindByID(ctx, itemID).Return(nil, notFoundErr())

		_, err := f.sut.Update(ctx, ownerID, itemID, commands.UpdateItemInput{})
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})
}
