package transport

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	utilsContext "github.com/globalremedies/backend/utils/context"
	"github.com/globalremedies/backend/utils/errors"
	validatorx "github.com/globalremedies/backend/utils/validator"
	"github.com/gorilla/mux"
)

const stateCookie = "oauth_state"

// pathID reads the numeric {id} route variable.
func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

// setTokenCookie mirrors the issued JWT into an httpOnly cookie so browser
// clients stay authenticated without handling the token themselves.
func (s *RestHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.Config.Auth.JWTExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup handler
// @Summary Register user
// @Description Create a pending account and send a verification code by email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuthApp.Signup(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, map[string]string{"message": "OTP sent to your email"})
}

// VerifyOTP handler
// @Summary Verify signup OTP
// @Description Activate a pending account with the emailed code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyOTPRequest true "Verify OTP Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/user/verify-otp [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.VerifyOTP(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setTokenCookie(w, res.Token)
	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username/password, or with a previously issued token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} errors.CustomError
// @Router /api/user/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AuthApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	if res.Token != "" {
		s.setTokenCookie(w, res.Token)
	}
	writeSuccess(w, res)
}

// GoogleAuth handler
// @Summary Start Google login
// @Description Redirect the browser to the Google consent screen
// @Tags Auth
// @Success 307
// @Router /api/user/googleAuth [get]
func (s *RestHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	state := hex.EncodeToString(raw)

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, s.Google.AuthURL(state), http.StatusTemporaryRedirect)
}

// GoogleAuthCallback handler
// @Summary Google login callback
// @Description Exchange the Google code, create or load the account, then redirect home
// @Tags Auth
// @Success 307
// @Failure 401 {object} errors.CustomError
// @Router /api/user/googleAuth/callback [get]
func (s *RestHandler) GoogleAuthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	profile, err := s.Google.FetchProfile(ctx, code)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AuthApp.SocialLogin(ctx, profile)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setTokenCookie(w, res.Token)
	http.Redirect(w, r, s.Config.FrontendURL, http.StatusTemporaryRedirect)
}

// ForgotPassword handler
// @Summary Request a password reset
// @Description Email a single-use reset link to the account address
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.CustomError
// @Router /api/user/forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuthApp.ForgotPassword(ctx, req.Email); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Password reset link sent to your email"})
}

// ResetPassword handler
// @Summary Reset password
// @Description Set a new password using the emailed reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/reset-password [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuthApp.ResetPassword(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Password reset successful"})
}

// GetProfile handler
// @Summary Get own profile
// @Tags Profile
// @Produce json
// @Success 200 {object} model.UserProfile
// @Failure 401 {object} errors.CustomError
// @Router /api/user/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	profile, err := s.AuthApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, profile)
}

// UpdateProfile handler
// @Summary Update own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body model.ProfilePatch true "Profile Patch"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.CustomError
// @Router /api/user/profile [put]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var patch model.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuthApp.UpdateProfile(ctx, userID, &patch); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Profile updated"})
}

// DeleteAccount handler
// @Summary Delete own account
// @Description Permanently delete the account after explicit confirmation
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body model.DeleteAccountRequest true "Delete Account Request"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.CustomError
// @Router /api/user/delete-account [delete]
func (s *RestHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AuthApp.DeleteAccount(ctx, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	writeSuccess(w, map[string]string{"message": "Account deleted"})
}
