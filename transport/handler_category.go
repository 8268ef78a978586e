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

// requireAdmin rejects callers whose session is not an admin session.
func requireAdmin(r *http.Request) error {
	userType, ok := utilsContext.GetUserType(r.Context())
	if !ok {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if userType != constant.UserTypeAdmin {
		return errors.SetCustomError(constant.ErrForbidden)
	}
	return nil
}

// ListCategories handler
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} model.CategoryEntity
// @Failure 404 {object} errors.CustomError
// @Router /api/user/categories [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.CategoryApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, categories)
}

// GetCategory handler
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} model.CategoryEntity
// @Failure 404 {object} errors.CustomError
// @Router /api/user/categories/{id} [get]
func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	category, err := s.CategoryApp.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, category)
}

// CreateCategory handler
// @Summary Create a category
// @Description Admin only
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body model.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} map[string]uint64
// @Failure 403 {object} errors.CustomError
// @Router /api/user/categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.CategoryApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, map[string]uint64{"id": id})
}

// UpdateCategory handler
// @Summary Update a category
// @Description Admin only
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body model.CategoryPatch true "Category Patch"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/categories/{id} [put]
func (s *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var patch model.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CategoryApp.Update(r.Context(), id, &patch); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Category updated"})
}

// DeleteCategory handler
// @Summary Delete a category
// @Description Admin only
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/categories/{id} [delete]
func (s *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CategoryApp.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]string{"message": "Category deleted"})
}
