package usecase

import (
	"context"
	"errors"

	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// notificationListLimit caps how many rows a single list call returns.
const notificationListLimit = 50

type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id int64) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) List(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, error) {
	notifications, err := u.notificationRepo.FindByUserID(u.db.WithContext(ctx), userID, notificationListLimit)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}

	return converter.NotificationsToResponses(notifications), nil
}

func (u *notificationUsecase) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := u.notificationRepo.CountUnread(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to count unread notifications: %+v", err)
		return 0, err
	}

	return count, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, userID uuid.UUID, id int64) error {
	rows, err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification read: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if _, err := u.notificationRepo.MarkAllRead(u.db.WithContext(ctx), userID); err != nil {
		u.log.Warnf("Failed to mark notifications read: %+v", err)
		return err
	}

	return nil
}

func (u *notificationUsecase) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	rows, err := u.notificationRepo.DeleteScoped(u.db.WithContext(ctx), id, userID)
	if err != nil {
		u.log.Warnf("Failed to delete notification: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
