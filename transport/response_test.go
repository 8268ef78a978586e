package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        errors.SetCustomError(constant.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "0002",
			wantMsg:    "data not found",
		},
		{
			name:       "forbidden",
			err:        errors.SetCustomError(constant.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantCode:   "0005",
			wantMsg:    "forbidden",
		},
		{
			name:       "duplicate review maps to conflict",
			err:        errors.SetCustomError(constant.ErrAlreadyReviewed),
			wantStatus: http.StatusConflict,
			wantCode:   "0017",
			wantMsg:    "you have already reviewed this remedy",
		},
		{
			name:       "plain error never leaks detail",
			err:        stderrors.New("driver: bad connection"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "0001",
			wantMsg:    "error internal",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body errorBody
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(rec, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["message"])
}

func TestWriteCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	writeCreated(rec, map[string]uint64{"id": 12})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]uint64
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(12), body["id"])
}
