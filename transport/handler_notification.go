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

// ListNotifications handler
// @Summary List own notifications
// @Tags Notifications
// @Produce json
// @Success 200 {array} model.NotificationEntity
// @Failure 404 {object} errors.CustomError
// @Router /api/user/notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	notifications, err := s.NotificationApp.ListByUser(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, notifications)
}

// CreateNotification handler
// @Summary Create a notification for the caller
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body model.CreateNotificationRequest true "Create Notification Request"
// @Success 201 {object} map[string]uint64
// @Failure 400 {object} errors.CustomError
// @Router /api/user/notifications [post]
func (s *RestHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.NotificationApp.Create(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]uint64{"id": id})
}

// MarkNotificationRead handler
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.CustomError
// @Router /api/user/notifications/{id}/read [put]
func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
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

	if err := s.NotificationApp.MarkRead(ctx, id, userID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Notification marked as read"})
}

// DeleteNotification handler
// @Summary Delete own notification
// @Tags Notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.CustomError
// @Router /api/user/notifications/{id} [delete]
func (s *RestHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
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

	if err := s.NotificationApp.Delete(ctx, id, userID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Notification deleted"})
}
