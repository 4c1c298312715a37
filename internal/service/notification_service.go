package service

import (
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotificationService inserts per-event message rows with fire-and-forget
// semantics: a failed insert is logged and swallowed so the caller's primary
// action never fails because a notification did.
type NotificationService struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) *NotificationService {
	return &NotificationService{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// Notify creates a notification row for the given user. Errors are logged,
// never returned.
func (s *NotificationService) Notify(userID uuid.UUID, title, message, notificationType string) {
	notification := &entity.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notificationType,
	}

	if err := s.notificationRepo.Create(s.db, notification); err != nil {
		s.log.Warnf("Failed to create notification for user %s: %+v", userID, err)
	}
}
