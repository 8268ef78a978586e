package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/utils/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

func writeCreated(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusCreated, body)
}

// writeError maps a CustomError to its HTTP status. Anything else becomes a
// generic internal error so backend detail never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var customErr errors.CustomError
	if !stderrors.As(err, &customErr) {
		customErr = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, customErr.ErrorHTTPCode(), errorBody{
		Code:    customErr.ErrorCode(),
		Message: customErr.Error(),
	})
}
