package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	"github.com/globalremedies/backend/utils/errors"
	validatorx "github.com/globalremedies/backend/utils/validator"
)

// ListAILogs handler
// @Summary List AI filter logs
// @Description Admin only. Filters by content_type and flagged_for, paged
// @Tags AILogs
// @Produce json
// @Param content_type query string false "review, community_post or community_comment"
// @Param flagged_for query string false "Flag reason substring"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {array} model.AIFilterLogEntity
// @Failure 403 {object} errors.CustomError
// @Router /api/user/ai-logs [get]
func (s *RestHandler) ListAILogs(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	filter := &model.AILogFilter{
		ContentType: q.Get("content_type"),
		FlaggedFor:  q.Get("flagged_for"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	logs, err := s.AILogApp.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, logs)
}

// GetAILog handler
// @Summary Get an AI filter log
// @Description Admin only
// @Tags AILogs
// @Produce json
// @Param id path int true "Log ID"
// @Success 200 {object} model.AIFilterLogEntity
// @Failure 404 {object} errors.CustomError
// @Router /api/user/ai-logs/{id} [get]
func (s *RestHandler) GetAILog(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	entry, err := s.AILogApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, entry)
}

// CreateAILog handler
// @Summary Record a flagged content entry
// @Description Admin only
// @Tags AILogs
// @Accept json
// @Produce json
// @Param request body model.CreateAILogRequest true "Create AI Log Request"
// @Success 201 {object} map[string]uint64
// @Failure 403 {object} errors.CustomError
// @Router /api/user/ai-logs [post]
func (s *RestHandler) CreateAILog(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateAILogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.AILogApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]uint64{"id": id})
}

// UpdateAILog handler
// @Summary Update an AI filter log
// @Description Admin only
// @Tags AILogs
// @Accept json
// @Produce json
// @Param id path int true "Log ID"
// @Param request body model.AILogPatch true "AI Log Patch"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/ai-logs/{id} [put]
func (s *RestHandler) UpdateAILog(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var patch model.AILogPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AILogApp.Update(r.Context(), id, &patch); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Log updated"})
}

// DeleteAILog handler
// @Summary Delete an AI filter log
// @Description Admin only
// @Tags AILogs
// @Produce json
// @Param id path int true "Log ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.CustomError
// @Router /api/user/ai-logs/{id} [delete]
func (s *RestHandler) DeleteAILog(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AILogApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Log deleted"})
}
