package category

import (
	"context"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	categoryrepo "github.com/globalremedies/backend/repository/category"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"go.uber.org/zap"
)

type CategoryApp interface {
	List(ctx context.Context) ([]model.CategoryEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	Create(ctx context.Context, req *model.CreateCategoryRequest) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.CategoryPatch) error
	Delete(ctx context.Context, id uint64) error
}

type CategoryAppImpl struct {
	categoryRepo categoryrepo.CategoryRepository
}

func NewCategoryApp(categoryRepo categoryrepo.CategoryRepository) CategoryApp {
	return &CategoryAppImpl{categoryRepo: categoryRepo}
}

func (s *CategoryAppImpl) List(ctx context.Context) ([]model.CategoryEntity, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[List] err categoryRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(categories) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return categories, nil
}

func (s *CategoryAppImpl) GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetByID] err categoryRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return category, nil
}

func (s *CategoryAppImpl) Create(ctx context.Context, req *model.CreateCategoryRequest) (uint64, error) {
	entity := &model.CategoryEntity{
		Name:        req.Name,
		Description: req.Description,
		Img:         req.Img,
	}

	id, err := s.categoryRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err categoryRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *CategoryAppImpl) Update(ctx context.Context, id uint64, patch *model.CategoryPatch) error {
	if patch.Empty() {
		return errors.SetCustomError(constant.ErrNoUpdateFields)
	}

	existing, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Update] err categoryRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.categoryRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[Update] err categoryRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *CategoryAppImpl) Delete(ctx context.Context, id uint64) error {
	existing, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Delete] err categoryRepo.GetByID", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.Error("[Delete] err categoryRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
