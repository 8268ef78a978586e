package notification

import (
	"context"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	notificationrepo "github.com/globalremedies/backend/repository/notification"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"go.uber.org/zap"
)

type NotificationApp interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.NotificationEntity, error)
	Create(ctx context.Context, userID uint64, req *model.CreateNotificationRequest) (uint64, error)
	MarkRead(ctx context.Context, id, userID uint64) error
	Delete(ctx context.Context, id, userID uint64) error
}

type NotificationAppImpl struct {
	notificationRepo notificationrepo.NotificationRepository
}

func NewNotificationApp(notificationRepo notificationrepo.NotificationRepository) NotificationApp {
	return &NotificationAppImpl{notificationRepo: notificationRepo}
}

func (s *NotificationAppImpl) ListByUser(ctx context.Context, userID uint64) ([]model.NotificationEntity, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListByUser] err notificationRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(notifications) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return notifications, nil
}

func (s *NotificationAppImpl) Create(ctx context.Context, userID uint64, req *model.CreateNotificationRequest) (uint64, error) {
	entity := &model.NotificationEntity{
		UserID:  userID,
		Message: req.Message,
	}

	id, err := s.notificationRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err notificationRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

// MarkRead only touches notifications owned by the caller.
func (s *NotificationAppImpl) MarkRead(ctx context.Context, id, userID uint64) error {
	existing, err := s.notificationRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[MarkRead] err notificationRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if existing.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if _, err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		logger.Error("[MarkRead] err notificationRepo.MarkRead", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *NotificationAppImpl) Delete(ctx context.Context, id, userID uint64) error {
	existing, err := s.notificationRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Delete] err notificationRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if existing.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.notificationRepo.Delete(ctx, id); err != nil {
		logger.Error("[Delete] err notificationRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
