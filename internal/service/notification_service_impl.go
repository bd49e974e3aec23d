package service

import (
	"context"

	"github.com/helenrobert/mentordesk/internal/domain"
	"github.com/helenrobert/mentordesk/internal/repository"
)

type notificationService struct {
	notifications repository.NotificationRepo
}

func NewNotificationService(notifications repository.NotificationRepo) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) List(ctx context.Context) ([]*domain.Notification, error) {
	return s.notifications.List(ctx)
}

func (s *notificationService) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	return s.notifications.GetByID(ctx, id)
}
