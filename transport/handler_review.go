package transport

import (
	"encoding/json"
	"net/http"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	utilsContext "github.com/globalremedies/backend/utils/context"
	"github.com/globalremedies/backend/utils/errors"
	validatorx "github.com/globalremedies/backend/utils/validator"
)

// ListReviews handler
// @Summary List reviews for a remedy
// @Tags Reviews
// @Produce json
// @Param id path int true "Remedy ID"
// @Success 200 {array} model.ReviewDetail
// @Failure 404 {object} errors.CustomError
// @Router /api/user/remedies/{id}/reviews [get]
func (s *RestHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	reviews, err := s.ReviewApp.ListByRemedy(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, reviews)
}

// CreateReview handler
// @Summary Review a remedy
// @Description One review per user per remedy
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body model.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} map[string]uint64
// @Failure 409 {object} errors.CustomError
// @Router /api/user/reviews [post]
func (s *RestHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.ReviewApp.Create(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]uint64{"id": id})
}

// UpdateReview handler
// @Summary Update own review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param request body model.ReviewPatch true "Review Patch"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/reviews/{id} [put]
func (s *RestHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
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

	var patch model.ReviewPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ReviewApp.Update(ctx, id, userID, &patch); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Review updated"})
}

// DeleteReview handler
// @Summary Delete a review
// @Description Owners delete their own reviews, admins any
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/reviews/{id} [delete]
func (s *RestHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
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

	if err := s.ReviewApp.Delete(ctx, id, userID, userType); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Review deleted"})
}
