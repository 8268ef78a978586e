package review

import (
	"context"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	remedyrepo "github.com/globalremedies/backend/repository/remedy"
	reviewrepo "github.com/globalremedies/backend/repository/review"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"go.uber.org/zap"
)

type ReviewApp interface {
	ListByRemedy(ctx context.Context, remedyID uint64) ([]model.ReviewDetail, error)
	Create(ctx context.Context, userID uint64, req *model.CreateReviewRequest) (uint64, error)
	Update(ctx context.Context, id, userID uint64, patch *model.ReviewPatch) error
	Delete(ctx context.Context, id, userID uint64, userType string) error
}

type ReviewAppImpl struct {
	reviewRepo reviewrepo.ReviewRepository
	remedyRepo remedyrepo.RemedyRepository
}

func NewReviewApp(reviewRepo reviewrepo.ReviewRepository, remedyRepo remedyrepo.RemedyRepository) ReviewApp {
	return &ReviewAppImpl{
		reviewRepo: reviewRepo,
		remedyRepo: remedyRepo,
	}
}

func (s *ReviewAppImpl) ListByRemedy(ctx context.Context, remedyID uint64) ([]model.ReviewDetail, error) {
	remedy, err := s.remedyRepo.Get(ctx, remedyID)
	if err != nil {
		logger.Error("[ListByRemedy] err remedyRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if remedy == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	reviews, err := s.reviewRepo.ListByRemedy(ctx, remedyID)
	if err != nil {
		logger.Error("[ListByRemedy] err reviewRepo.ListByRemedy", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(reviews) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return reviews, nil
}

// Create enforces one review per user per remedy; a second attempt conflicts.
func (s *ReviewAppImpl) Create(ctx context.Context, userID uint64, req *model.CreateReviewRequest) (uint64, error) {
	remedy, err := s.remedyRepo.Get(ctx, req.RemedyID)
	if err != nil {
		logger.Error("[Create] err remedyRepo.Get", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if remedy == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}

	exists, err := s.reviewRepo.Exists(ctx, req.RemedyID, userID)
	if err != nil {
		logger.Error("[Create] err reviewRepo.Exists", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return 0, errors.SetCustomError(constant.ErrAlreadyReviewed)
	}

	entity := &model.ReviewEntity{
		RemedyID:    req.RemedyID,
		UserID:      userID,
		Rating:      req.Rating,
		Review:      req.Review,
		ReviewTitle: req.ReviewTitle,
	}

	id, err := s.reviewRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err reviewRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *ReviewAppImpl) Update(ctx context.Context, id, userID uint64, patch *model.ReviewPatch) error {
	if patch.Empty() {
		return errors.SetCustomError(constant.ErrNoUpdateFields)
	}

	existing, err := s.reviewRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Update] err reviewRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if existing.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if _, err := s.reviewRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[Update] err reviewRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *ReviewAppImpl) Delete(ctx context.Context, id, userID uint64, userType string) error {
	existing, err := s.reviewRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Delete] err reviewRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if existing.UserID != userID && userType != constant.UserTypeAdmin {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		logger.Error("[Delete] err reviewRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
