package community

import (
	"context"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	commentrepo "github.com/globalremedies/backend/repository/comment"
	postrepo "github.com/globalremedies/backend/repository/post"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"go.uber.org/zap"
)

type CommunityApp interface {
	ListPosts(ctx context.Context, viewerID uint64) ([]model.PostDetail, error)
	GetPost(ctx context.Context, viewerID, id uint64) (*model.PostDetail, error)
	CreatePost(ctx context.Context, userID uint64, req *model.CreatePostRequest) (uint64, error)
	UpdatePost(ctx context.Context, id, userID uint64, patch *model.PostPatch) error
	DeletePost(ctx context.Context, id, userID uint64, userType string) error

	GetComment(ctx context.Context, id, userID uint64) (*model.CommentEntity, error)
	CreateComment(ctx context.Context, userID uint64, req *model.CreateCommentRequest) (uint64, error)
	UpdateComment(ctx context.Context, id, userID uint64, comment string) error
	DeleteComment(ctx context.Context, id, userID uint64, userType string) error
}

type CommunityAppImpl struct {
	postRepo    postrepo.PostRepository
	commentRepo commentrepo.CommentRepository
}

func NewCommunityApp(postRepo postrepo.PostRepository, commentRepo commentrepo.CommentRepository) CommunityApp {
	return &CommunityAppImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (s *CommunityAppImpl) ListPosts(ctx context.Context, viewerID uint64) ([]model.PostDetail, error) {
	posts, err := s.postRepo.List(ctx, viewerID)
	if err != nil {
		logger.Error("[ListPosts] err postRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(posts) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return posts, nil
}

func (s *CommunityAppImpl) GetPost(ctx context.Context, viewerID, id uint64) (*model.PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, viewerID, id)
	if err != nil {
		logger.Error("[GetPost] err postRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return post, nil
}

func (s *CommunityAppImpl) CreatePost(ctx context.Context, userID uint64, req *model.CreatePostRequest) (uint64, error) {
	entity := &model.PostEntity{
		UserID: userID,
		Title:  req.Title,
		Body:   req.Body,
	}

	id, err := s.postRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreatePost] err postRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *CommunityAppImpl) UpdatePost(ctx context.Context, id, userID uint64, patch *model.PostPatch) error {
	if patch.Empty() {
		return errors.SetCustomError(constant.ErrNoUpdateFields)
	}

	post, err := s.postRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdatePost] err postRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if post.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if _, err := s.postRepo.Update(ctx, id, patch); err != nil {
		logger.Error("[UpdatePost] err postRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *CommunityAppImpl) DeletePost(ctx context.Context, id, userID uint64, userType string) error {
	post, err := s.postRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[DeletePost] err postRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if post.UserID != userID && userType != constant.UserTypeAdmin {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeletePost] err postRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// GetComment only returns comments the caller authored.
func (s *CommunityAppImpl) GetComment(ctx context.Context, id, userID uint64) (*model.CommentEntity, error) {
	existing, err := s.commentRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetComment] err commentRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if existing.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	return existing, nil
}

// CreateComment requires the parent post to exist so comments never dangle.
func (s *CommunityAppImpl) CreateComment(ctx context.Context, userID uint64, req *model.CreateCommentRequest) (uint64, error) {
	post, err := s.postRepo.Get(ctx, req.PostID)
	if err != nil {
		logger.Error("[CreateComment] err postRepo.Get", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if post == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}

	entity := &model.CommentEntity{
		PostID:  req.PostID,
		UserID:  userID,
		Comment: req.Comment,
	}

	id, err := s.commentRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateComment] err commentRepo.Create", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *CommunityAppImpl) UpdateComment(ctx context.Context, id, userID uint64, comment string) error {
	existing, err := s.commentRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[UpdateComment] err commentRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if existing.UserID != userID {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if _, err := s.commentRepo.Update(ctx, id, userID, comment); err != nil {
		logger.Error("[UpdateComment] err commentRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *CommunityAppImpl) DeleteComment(ctx context.Context, id, userID uint64, userType string) error {
	existing, err := s.commentRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[DeleteComment] err commentRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if existing.UserID != userID && userType != constant.UserTypeAdmin {
		return errors.SetCustomError(constant.ErrForbidden)
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteComment] err commentRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
