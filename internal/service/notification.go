package service

import (
	"context"

	"github.com/MohamedHany17m8/x-from-scratch/internal/dto"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type notificationService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newNotificationService(logger *zap.Logger, repo *repository.Repository) Notification {
	return &notificationService{
		logger: logger,
		repo:   repo,
	}
}

// GetAll returns the user's notifications newest-first and marks the unread
// ones read. The returned views keep the read flags observed before the mark,
// so the client can tell which ones were new. Two concurrent calls may both
// see the same notifications as unread; the duplicate mark is harmless.
func (s *notificationService) GetAll(ctx context.Context, userID primitive.ObjectID) ([]*dto.GetNotificationDto, error) {
	notifications, err := s.repo.Mongo.Notification.FindByTo(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find notifications of user(%s) in mongo: %s", userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	ids := make([]primitive.ObjectID, 0, len(notifications))
	for _, n := range notifications {
		ids = append(ids, n.From)
	}
	authors, err := resolveAuthors(ctx, s.logger, s.repo, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.GetNotificationDto, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, dto.GetNotificationDtoFromNotification(*n, authors))
	}

	if err := s.repo.Mongo.Notification.MarkReadByTo(ctx, userID); err != nil {
		s.logger.Sugar().Errorf("failed to mark notifications of user(%s) as read: %s", userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	return views, nil
}

func (s *notificationService) DeleteAll(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.repo.Mongo.Notification.DeleteByTo(ctx, userID); err != nil {
		s.logger.Sugar().Errorf("failed to delete notifications of user(%s) from mongo: %s", userID.Hex(), err.Error())
		return ErrInternal
	}
	return nil
}
