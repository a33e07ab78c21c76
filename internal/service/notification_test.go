package service_test

import (
	"context"
	"testing"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{TenantID: 1}

	t.Run("Success", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := service.NewNotificationService(noteRepo)

		noteRepo.On("List", ctx, int32(1), int32(50), int32(0)).Return([]domain.Notification{
			{ID: 7, TenantID: 1, Title: "New booking BK-20260831-001"},
		}, int32(1), nil)

		notes, total, err := svc.ListNotifications(ctx, actor, 50, 0)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, notes, 1)
		assert.Equal(t, int32(7), notes[0].ID)
	})

	t.Run("Clamps Paging Params", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := service.NewNotificationService(noteRepo)

		noteRepo.On("List", ctx, int32(1), int32(50), int32(0)).Return([]domain.Notification{}, int32(0), nil)

		_, _, err := svc.ListNotifications(ctx, actor, 0, -10)
		assert.NoError(t, err)
		noteRepo.AssertCalled(t, "List", ctx, int32(1), int32(50), int32(0))
	})

	t.Run("Repository Failure", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := service.NewNotificationService(noteRepo)

		noteRepo.On("List", ctx, int32(1), int32(50), int32(0)).Return(nil, int32(0), assert.AnError)

		notes, total, err := svc.ListNotifications(ctx, actor, 50, 0)
		assert.Nil(t, notes)
		assert.Zero(t, total)
		assert.True(t, domain.IsKind(err, domain.ErrKindUnavailable))
	})
}

func TestNotificationService_MarkNotificationRead(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{TenantID: 1}

	t.Run("Success", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := service.NewNotificationService(noteRepo)

		noteRepo.On("MarkAsRead", ctx, int32(1), int32(7)).Return(nil)

		assert.NoError(t, svc.MarkNotificationRead(ctx, actor, 7))
	})

	t.Run("Not Found Passes Through", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := service.NewNotificationService(noteRepo)

		noteRepo.On("MarkAsRead", ctx, int32(1), int32(99)).Return(domain.NewNotFound("notification", 99))

		err := svc.MarkNotificationRead(ctx, actor, 99)
		assert.True(t, domain.IsKind(err, domain.ErrKindNotFound))
	})

	t.Run("Repository Failure", func(t *testing.T) {
		noteRepo := new(MockNotificationRepo)
		svc := service.NewNotificationService(noteRepo)

		noteRepo.On("MarkAsRead", ctx, int32(1), int32(7)).Return(assert.AnError)

		err := svc.MarkNotificationRead(ctx, actor, 7)
		assert.True(t, domain.IsKind(err, domain.ErrKindUnavailable))
	})
}
