package remedy

import (
	"context"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	categoryrepo "github.com/globalremedies/backend/repository/category"
	remedyrepo "github.com/globalremedies/backend/repository/remedy"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"go.uber.org/zap"
)

type RemedyApp interface {
	List(ctx context.Context, viewerID uint64, filter *model.RemedyFilter) ([]model.RemedyDetail, error)
	GetByID(ctx context.Context, viewerID, id uint64) (*model.RemedyDetail, error)
	Create(ctx context.Context, userID uint64, req *model.CreateRemedyRequest) (uint64, error)
	Update(ctx context.Context, id, userID uint64, patch *model.RemedyPatch) error
	Delete(ctx context.Context, id, userID uint64, userType string) error
}

type RemedyAppImpl struct {
	remedyRepo   remedyrepo.RemedyRepository
	categoryRepo categoryrepo.CategoryRepository
}

func NewRemedyApp(remedyRepo remedyrepo.RemedyRepository, categoryRepo categoryrepo.CategoryRepository) RemedyApp {
	return &RemedyAppImpl{
		remedyRepo:   remedyRepo,
		categoryRepo: categoryRepo,
	}
}

// List returns approved remedies matching the filter. The viewer id drives
// the per-row liked/disliked/bookmarked flags.
func (s *RemedyAppImpl) List(ctx context.Context, viewerID uint64, filter *model.RemedyFilter) ([]model.RemedyDetail, error) {
	remedies, err := s.remedyRepo.List(ctx, viewerID, filter)
	if err != nil {
		logger.Error("[List] err remedyRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(remedies) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return remedies, nil
}

func (s *RemedyAppImpl) GetByID(ctx context.Context, viewerID, id uint64) (*model.RemedyDetail, error) {
	remedy, err := s.remedyRepo.GetByID(ctx, viewerID, id)
	if err != nil {
		logger.Error("[GetByID] err remedyRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if remedy == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return remedy, nil
}

// Create stores a new remedy in pending status. It stays invisible to
// listings until approved.
func (s *RemedyAppImpl) Create(ctx context.Context, userID uint64, req *model.CreateRemedyRequest) (uint64, error) {
	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		logger.Error("[Create] err categoryRepo.GetByID", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}

	entity := &model.RemedyEntity{
		UserID:             userID,
		CategoryID:         req.CategoryID,
		Title:              req.Title,
		Ingredients:        req.Ingredients,
		PreparationProcess: req.PreparationProcess,
		ApplicationProcess: req.ApplicationProcess,
		Benefits:           req.Benefits,
		Photo:              req.Photo,
		Video:              req.Video,
		Status:             constant.RemedyStatusPending,
	}

	id, err := s.remedyRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err remedyRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *RemedyAppImpl) Update(ctx context.Context, id, userID uint64, patch *model.RemedyPatch) error {
	if patch.Empty() {
		return errors.SetCustomError(constant.ErrNoUpdateFields)
	}

	remedy, err := s.remedyRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Update] err remedyRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if remedy == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if remedy.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if patch.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *patch.CategoryID)
		if err != nil {
			logger.Error("[Update] err categoryRepo.GetByID", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if category == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
	}

	if _, err := s.remedyRepo.Update(ctx, id, userID, patch); err != nil {
		logger.Error("[Update] err remedyRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Delete removes a remedy. Admins may remove any remedy, everyone else only
// their own.
func (s *RemedyAppImpl) Delete(ctx context.Context, id, userID uint64, userType string) error {
	remedy, err := s.remedyRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Delete] err remedyRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if remedy == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if remedy.UserID != userID && userType != constant.UserTypeAdmin {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.remedyRepo.Delete(ctx, id); err != nil {
		logger.Error("[Delete] err remedyRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
