package ailog

import (
	"context"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	ailogrepo "github.com/globalremedies/backend/repository/ailog"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"go.uber.org/zap"
)

type AILogApp interface {
	List(ctx context.Context, filter *model.AILogFilter) ([]model.AIFilterLogEntity, error)
	Get(ctx context.Context, id uint64) (*model.AIFilterLogEntity, error)
	Create(ctx context.Context, req *model.CreateAILogRequest) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.AILogPatch) error
	Delete(ctx context.Context, id uint64) error
}

type AILogAppImpl struct {
	ailogRepo ailogrepo.AILogRepository
}

func NewAILogApp(ailogRepo ailogrepo.AILogRepository) AILogApp {
	return &AILogAppImpl{ailogRepo: ailogRepo}
}

// List pages through the filter log. An unknown content type is rejected
// rather than silently ignored.
func (s *AILogAppImpl) List(ctx context.Context, filter *model.AILogFilter) ([]model.AIFilterLogEntity, error) {
	if filter.ContentType != "" {
		valid := false
		for _, t := range constant.ValidContentTypes {
			if filter.ContentType == t {
				valid = true
				break
			}
		}
		if !valid {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	if filter.Page < 1 {
		filter.Page = constant.DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = constant.DefaultLimit
	}

	logs, err := s.ailogRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[List] err ailogRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(logs) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return logs, nil
}

func (s *AILogAppImpl) Get(ctx context.Context, id uint64) (*model.AIFilterLogEntity, error) {
	entry, err := s.ailogRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[Get] err ailogRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entry == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entry, nil
}

func (s *AILogAppImpl) Create(ctx context.Context, req *model.CreateAILogRequest) (uint64, error) {
	entity := &model.AIFilterLogEntity{
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		FlaggedFor:  req.FlaggedFor,
	}

	id, err := s.ailogRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err ailogRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *AILogAppImpl) Update(ctx context.Context, id uint64, patch *model.AILogPatch) error {
	if patch.Empty() {
		return errors.SetCustomError(constant.ErrNoUpdateFields)
	}

	affected, err := s.ailogRepo.Update(ctx, id, patch)
	if err != nil {
		logger.Error("[Update] err ailogRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *AILogAppImpl) Delete(ctx context.Context, id uint64) error {
	affected, err := s.ailogRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[Delete] err ailogRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
