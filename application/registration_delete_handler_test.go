package application

import (
	"context"
	"errors"
	"testing"

	"smanager/application/dto"
	"smanager/domain/events"
	"smanager/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistrationDeleteHandler(t *testing.T) {
	ctx := context.Background()

	event := func() *events.ScrimRegistrationDeleteEvent {
		return &events.ScrimRegistrationDeleteEvent{
			ScrimID: testScrimID,
			Message: testRegistrationMessage(),
			SlotID:  31,
			SlotNum: 4,
		}
	}

	t.Run("frees slot, removes role and logs", func(t *testing.T) {
		factory, uow, repos := newTestUnitOfWork(ctx)
		messenger := new(MockMessenger)
		scheduler := &RecordingScheduler{}

		repos.scrim.On("GetByID", ctx, testScrimID).Return(testScrim(), nil)
		repos.assigned.On("Delete", ctx, int64(31)).Return(int64(1), nil)
		repos.scrim.On("AppendAvailableSlot", ctx, testScrimID, 4).Return(nil)

		messenger.On("ChannelExists", ctx, testLogChannelID).Return(true)
		messenger.On("Send", ctx, testLogChannelID, dto.OutgoingMessage{
			Embed: &dto.Embed{
				Color:       services.ColorDenied,
				Description: "Slot of <@42> was deleted from Scrim: 7, because their registration was deleted from <#200>",
			},
		}).Return(nil)

		err := NewRegistrationDeleteHandler(factory, messenger, scheduler).HandleScrimRegistrationDelete(ctx, event())
		require.NoError(t, err)

		uow.AssertCalled(t, "Commit")
		repos.assigned.AssertExpectations(t)
		repos.scrim.AssertExpectations(t)

		// Role removal runs in the background
		require.Len(t, scheduler.Tasks, 1)
		assert.Equal(t, "remove scrim role", scheduler.Tasks[0].Name)
		messenger.On("RemoveRole", ctx, testGuildID, testAuthorID, testSuccessRoleID).Return(nil)
		require.NoError(t, scheduler.RunAll(ctx))

		messenger.AssertExpectations(t)
	})

	t.Run("scrim without success role and log channel", func(t *testing.T) {
		factory, _, repos := newTestUnitOfWork(ctx)
		messenger := new(MockMessenger)
		scheduler := &RecordingScheduler{}

		scrim := testScrim()
		scrim.RoleID = nil
		scrim.LogChannelID = nil
		repos.scrim.On("GetByID", ctx, testScrimID).Return(scrim, nil)
		repos.assigned.On("Delete", ctx, int64(31)).Return(int64(1), nil)
		repos.scrim.On("AppendAvailableSlot", ctx, testScrimID, 4).Return(nil)

		err := NewRegistrationDeleteHandler(factory, messenger, scheduler).HandleScrimRegistrationDelete(ctx, event())
		require.NoError(t, err)

		assert.Empty(t, scheduler.Tasks)
		messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("database failure rolls back", func(t *testing.T) {
		factory, uow, repos := newTestUnitOfWork(ctx)
		messenger := new(MockMessenger)

		scrim := testScrim()
		scrim.RoleID = nil
		repos.scrim.On("GetByID", ctx, testScrimID).Return(scrim, nil)
		repos.assigned.On("Delete", ctx, int64(31)).Return(int64(1), nil)
		repos.scrim.On("AppendAvailableSlot", ctx, testScrimID, 4).Return(errors.New("scrim 7 not found"))

		err := NewRegistrationDeleteHandler(factory, messenger, &RecordingScheduler{}).HandleScrimRegistrationDelete(ctx, event())
		assert.ErrorContains(t, err, "failed to free slot 4 of scrim 7")

		uow.AssertNotCalled(t, "Commit")
		messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("same event delivered twice frees slot once", func(t *testing.T) {
		factory, _, repos := newTestUnitOfWork(ctx)
		messenger := new(MockMessenger)
		scheduler := &RecordingScheduler{}

		repos.scrim.On("GetByID", ctx, testScrimID).Return(testScrim(), nil)
		repos.assigned.On("Delete", ctx, int64(31)).Return(int64(1), nil).Once()
		repos.assigned.On("Delete", ctx, int64(31)).Return(int64(0), nil).Once()
		repos.scrim.On("AppendAvailableSlot", ctx, testScrimID, 4).Return(nil)

		messenger.On("ChannelExists", ctx, testLogChannelID).Return(true)
		messenger.On("Send", ctx, testLogChannelID, mock.Anything).Return(errors.New("dial tcp: i/o timeout"))

		handler := NewRegistrationDeleteHandler(factory, messenger, scheduler)
		err := handler.HandleScrimRegistrationDelete(ctx, event())
		assert.ErrorContains(t, err, "failed to log deleted registration")

		err = handler.HandleScrimRegistrationDelete(ctx, event())
		require.NoError(t, err)

		repos.scrim.AssertNumberOfCalls(t, "AppendAvailableSlot", 1)
		require.Len(t, scheduler.Tasks, 1)
		assert.Equal(t, "remove scrim role", scheduler.Tasks[0].Name)
		messenger.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("missing scrim", func(t *testing.T) {
		factory, _, repos := newTestUnitOfWork(ctx)
		repos.scrim.On("GetByID", ctx, testScrimID).Return(nil, nil)

		err := NewRegistrationDeleteHandler(factory, new(MockMessenger), &RecordingScheduler{}).HandleScrimRegistrationDelete(ctx, event())
		require.NoError(t, err)
		repos.assigned.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
