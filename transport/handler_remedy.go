package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	reactionrepo "github.com/globalremedies/backend/repository/reaction"
	utilsContext "github.com/globalremedies/backend/utils/context"
	"github.com/globalremedies/backend/utils/errors"
	validatorx "github.com/globalremedies/backend/utils/validator"
)

// ListRemedies handler
// @Summary List approved remedies
// @Description Supports category_id, country and trending filters
// @Tags Remedies
// @Produce json
// @Param category_id query int false "Category ID"
// @Param country query string false "Country"
// @Param trending query bool false "Order by likes and cap the result"
// @Success 200 {array} model.RemedyDetail
// @Failure 404 {object} errors.CustomError
// @Router /api/user/remedies [get]
func (s *RestHandler) ListRemedies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	filter := &model.RemedyFilter{
		Country:  r.URL.Query().Get("country"),
		Trending: r.URL.Query().Get("trending") == "true",
	}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.CategoryID = categoryID
	}

	remedies, err := s.RemedyApp.List(ctx, userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, remedies)
}

// ListBookmarkedRemedies handler
// @Summary List remedies the caller bookmarked
// @Tags Remedies
// @Produce json
// @Success 200 {array} model.RemedyDetail
// @Failure 404 {object} errors.CustomError
// @Router /api/user/remedies/bookmarked [get]
func (s *RestHandler) ListBookmarkedRemedies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	remedies, err := s.RemedyApp.List(ctx, userID, &model.RemedyFilter{BookmarkedBy: userID})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, remedies)
}

// GetRemedy handler
// @Summary Get an approved remedy
// @Tags Remedies
// @Produce json
// @Param id path int true "Remedy ID"
// @Success 200 {object} model.RemedyDetail
// @Failure 404 {object} errors.CustomError
// @Router /api/user/remedies/{id} [get]
func (s *RestHandler) GetRemedy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utilsContext.GetUserID(ctx)

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	remedy, err := s.RemedyApp.GetByID(ctx, userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, remedy)
}

// CreateRemedy handler
// @Summary Submit a remedy
// @Description New remedies start pending and only appear once approved
// @Tags Remedies
// @Accept json
// @Produce json
// @Param request body model.CreateRemedyRequest true "Create Remedy Request"
// @Success 201 {object} map[string]uint64
// @Failure 400 {object} errors.CustomError
// @Router /api/user/remedies [post]
func (s *RestHandler) CreateRemedy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateRemedyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.RemedyApp.Create(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]uint64{"id": id})
}

// UpdateRemedy handler
// @Summary Update own remedy
// @Tags Remedies
// @Accept json
// @Produce json
// @Param id path int true "Remedy ID"
// @Param request body model.RemedyPatch true "Remedy Patch"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/remedies/{id} [put]
func (s *RestHandler) UpdateRemedy(w http.ResponseWriter, r *http.Request) {
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

	var patch model.RemedyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.RemedyApp.Update(ctx, id, userID, &patch); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Remedy updated"})
}

// DeleteRemedy handler
// @Summary Delete a remedy
// @Description Owners delete their own remedies, admins any
// @Tags Remedies
// @Produce json
// @Param id path int true "Remedy ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/remedies/{id} [delete]
func (s *RestHandler) DeleteRemedy(w http.ResponseWriter, r *http.Request) {
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

	if err := s.RemedyApp.Delete(ctx, id, userID, userType); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Remedy deleted"})
}

// react resolves the caller and target id, then records the reaction.
func (s *RestHandler) react(w http.ResponseWriter, r *http.Request, kind reactionrepo.Kind, direction constant.ReactionDirection, message string) {
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

	if err := s.ReactionApp.React(ctx, kind, direction, userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": message})
}

// LikeRemedy handler
// @Summary Like a remedy
// @Description A prior dislike by the same user is transferred
// @Tags Remedies
// @Produce json
// @Param id path int true "Remedy ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/remedies/{id}/like [post]
func (s *RestHandler) LikeRemedy(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, reactionrepo.KindRemedy, constant.ReactionLike, "Remedy liked")
}

// DislikeRemedy handler
// @Summary Dislike a remedy
// @Description A prior like by the same user is transferred
// @Tags Remedies
// @Produce json
// @Param id path int true "Remedy ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/remedies/{id}/dislike [post]
func (s *RestHandler) DislikeRemedy(w http.ResponseWriter, r *http.Request) {
	s.react(w, r, reactionrepo.KindRemedy, constant.ReactionDislike, "Remedy disliked")
}

// BookmarkRemedy handler
// @Summary Bookmark a remedy
// @Tags Remedies
// @Produce json
// @Param id path int true "Remedy ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/remedies/{id}/bookmark [post]
func (s *RestHandler) BookmarkRemedy(w http.ResponseWriter, r *http.Request) {
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

	if err := s.ReactionApp.Bookmark(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Remedy bookmarked"})
}
