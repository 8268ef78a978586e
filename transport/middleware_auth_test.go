package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/globalremedies/backend/constant"
	authmocks "github.com/globalremedies/backend/mocks/application/auth"
	utilsContext "github.com/globalremedies/backend/utils/context"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthMiddleware(t *testing.T) {
	type args struct {
		target string
		header string
		cookie string
	}
	tests := []struct {
		name         string
		args         args
		mockCall     func(m *authmocks.AuthApp)
		wantStatus   int
		wantHit      bool
		wantUserID   uint64
		wantUserType string
	}{
		{
			name:       "public path passes without a token",
			args:       args{target: "/api/user/login"},
			wantStatus: http.StatusOK,
			wantHit:    true,
		},
		{
			name:       "missing token rejected",
			args:       args{target: "/api/user/profile"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid token rejected",
			args: args{target: "/api/user/profile", header: "Bearer bogus"},
			mockCall: func(m *authmocks.AuthApp) {
				m.On("ValidateToken", mock.Anything, "bogus").
					Return(uint64(0), "", errors.SetCustomError(constant.ErrInvalidToken)).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer header resolves user context",
			args: args{target: "/api/user/profile", header: "Bearer good"},
			mockCall: func(m *authmocks.AuthApp) {
				m.On("ValidateToken", mock.Anything, "good").
					Return(uint64(42), constant.UserTypeVisitor, nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantHit:      true,
			wantUserID:   42,
			wantUserType: constant.UserTypeVisitor,
		},
		{
			name: "cookie fallback resolves user context",
			args: args{target: "/api/user/notifications", cookie: "good"},
			mockCall: func(m *authmocks.AuthApp) {
				m.On("ValidateToken", mock.Anything, "good").
					Return(uint64(7), constant.UserTypeAdmin, nil).Once()
			},
			wantStatus:   http.StatusOK,
			wantHit:      true,
			wantUserID:   7,
			wantUserType: constant.UserTypeAdmin,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m := authmocks.NewAuthApp(t)
			if tt.mockCall != nil {
				tt.mockCall(m)
			}

			var (
				hit         bool
				gotUserID   uint64
				gotUserType string
				okID        bool
				okType      bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hit = true
				gotUserID, okID = utilsContext.GetUserID(r.Context())
				gotUserType, okType = utilsContext.GetUserType(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.args.target, nil)
			if tt.args.header != "" {
				req.Header.Set("Authorization", tt.args.header)
			}
			if tt.args.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.args.cookie})
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(m)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHit, hit)
			if tt.wantUserID != 0 {
				assert.True(t, okID)
				assert.True(t, okType)
				assert.Equal(t, tt.wantUserID, gotUserID)
				assert.Equal(t, tt.wantUserType, gotUserType)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
		req.Header.Set("Authorization", "Bearer fromheader")
		req.AddCookie(&http.Cookie{Name: "token", Value: "fromcookie"})
		assert.Equal(t, "fromheader", bearerToken(req))
	})
	t.Run("non bearer scheme ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
		req.Header.Set("Authorization", "Basic dXNlcg==")
		assert.Equal(t, "", bearerToken(req))
	})
}
