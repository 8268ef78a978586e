package transport

import (
	"net/http"

	"github.com/globalremedies/backend/constant"
	utilsContext "github.com/globalremedies/backend/utils/context"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"go.uber.org/zap"
)

// uploads are capped at 10 MiB
const maxUploadBytes = 10 << 20

// Upload handler
// @Summary Upload an image
// @Description Stores the multipart "image" file and returns its public URL
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/upload [post]
func (s *RestHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := utilsContext.GetUserID(ctx); !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	url, err := s.Storage.Upload(ctx, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		logger.Error("[Upload] err storage.Upload", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrUploadFailed))
		return
	}

	writeSuccess(w, map[string]string{"url": url})
}
