package service

import (
	"context"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) ListNotifications(ctx context.Context, actor domain.Actor, limit, offset int32) ([]domain.Notification, int32, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	notes, total, err := s.noteRepo.List(ctx, actor.TenantID, limit, offset)
	if err != nil {
		return nil, 0, domain.NewUnavailable("notification list", err)
	}
	return notes, total, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, actor domain.Actor, id int32) error {
	if err := s.noteRepo.MarkAsRead(ctx, actor.TenantID, id); err != nil {
		if domain.IsKind(err, domain.ErrKindNotFound) {
			return err
		}
		return domain.NewUnavailable("notification update", err)
	}
	return nil
}
