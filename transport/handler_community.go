package transport

import (
	"encoding/json"
	"net/http"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	reactionrepo "github.com/globalremedies/backend/repository/reaction"
	utilsContext "github.com/globalremedies/backend/utils/context"
	"github.com/globalremedies/backend/utils/errors"
	validatorx "github.com/globalremedies/backend/utils/validator"
)

// ListPosts handler
// @Summary List community posts
// @Tags Community
// @Produce json
// @Success 200 {array} model.PostDetail
// @Failure 404 {object} errors.CustomError
// @Router /api/user/community/posts [get]
func (s *RestHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	posts, err := s.CommunityApp.ListPosts(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, posts)
}

// GetPost handler
// @Summary Get a community post
// @Tags Community
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} model.PostDetail
// @Failure 404 {object} errors.CustomError
// @Router /api/user/community/posts/{id} [get]
func (s *RestHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	post, err := s.CommunityApp.GetPost(ctx, userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, post)
}

// CreatePost handler
// @Summary Create a community post
// @Tags Community
// @Accept json
// @Produce json
// @Param request body model.CreatePostRequest true "Create Post Request"
// @Success 201 {object} map[string]uint64
// @Failure 400 {object} errors.CustomError
// @Router /api/user/community/posts [post]
func (s *RestHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.CommunityApp.CreatePost(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]uint64{"id": id})
}

// UpdatePost handler
// @Summary Update own post
// @Tags Community
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body model.PostPatch true "Post Patch"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/community/posts/{id} [put]
func (s *RestHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var patch model.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CommunityApp.UpdatePost(ctx, id, userID, &patch); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Post updated"})
}

// DeletePost handler
// @Summary Delete a post
// @Description Owners delete their own posts, admins any
// @Tags Community
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/community/posts/{id} [delete]
func (s *RestHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	userType, _ := utilsContext.GetUserType(ctx)

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CommunityApp.DeletePost(ctx, id, userID, userType); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Post deleted"})
}

// LikePost handler
// @Summary Like a community post
// @Tags Community
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/community/posts/{id}/like [post]
func (s *RestHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, reactionrepo.KindPost, constant.ReactionLike, "Post liked")
}

// DislikePost handler
// @Summary Dislike a community post
// @Tags Community
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/community/posts/{id}/dislike [post]
func (s *RestHandler) DislikePost(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, reactionrepo.KindPost, constant.ReactionDislike, "Post disliked")
}

// GetComment handler
// @Summary Get own comment
// @Tags Community
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} model.CommentEntity
// @Failure 403 {object} errors.CustomError
// @Router /api/user/community/comments/{id} [get]
func (s *RestHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	comment, err := s.CommunityApp.GetComment(ctx, id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, comment)
}

// CreateComment handler
// @Summary Comment on a post
// @Tags Community
// @Accept json
// @Produce json
// @Param request body model.CreateCommentRequest true "Create Comment Request"
// @Success 201 {object} map[string]uint64
// @Failure 404 {object} errors.CustomError
// @Router /api/user/community/comments [post]
func (s *RestHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.CommunityApp.CreateComment(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]uint64{"id": id})
}

// UpdateComment handler
// @Summary Update own comment
// @Tags Community
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body model.UpdateCommentRequest true "Update Comment Request"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/community/comments/{id} [put]
func (s *RestHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CommunityApp.UpdateComment(ctx, id, userID, req.Comment); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Comment updated"})
}

// DeleteComment handler
// @Summary Delete a comment
// @Description Owners delete their own comments, admins any
// @Tags Community
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/community/comments/{id} [delete]
func (s *RestHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	userType, _ := utilsContext.GetUserType(ctx)

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CommunityApp.DeleteComment(ctx, id, userID, userType); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Comment deleted"})
}

// LikeComment handler
// @Summary Like a comment
// @Tags Community
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/community/comments/{id}/like [post]
func (s *RestHandler) LikeComment(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, reactionrepo.KindComment, constant.ReactionLike, "Comment liked")
}

// DislikeComment handler
// @Summary Dislike a comment
// @Tags Community
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/community/comments/{id}/dislike [post]
func (s *RestHandler) DislikeComment(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, reactionrepo.KindComment, constant.ReactionDislike, "Comment disliked")
}
