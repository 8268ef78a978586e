package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/globalremedies/backend/cmd/config"
	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	cacherepo "github.com/globalremedies/backend/repository/cache"
	userrepo "github.com/globalremedies/backend/repository/user"
	"github.com/globalremedies/backend/thirdparty/mailer"
	"github.com/globalremedies/backend/utils/errors"
	"github.com/globalremedies/backend/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	Signup(ctx context.Context, req *model.SignupRequest) error
	VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.LoginResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	SocialLogin(ctx context.Context, profile *model.SocialProfile) (*model.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
	GetProfile(ctx context.Context, userID uint64) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, patch *model.ProfilePatch) error
	DeleteAccount(ctx context.Context, userID uint64, req *model.DeleteAccountRequest) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, string, error)
}

// claims embeds the user type so authorization can be decided without a
// user lookup on every request.
type claims struct {
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

type AuthAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	cacheRepo cacherepo.Repository
	mail      mailer.Mailer
}

func NewAuthApp(config *config.Config, userRepo userrepo.UserRepository, cacheRepo cacherepo.Repository, mail mailer.Mailer) AuthApp {
	return &AuthAppImpl{
		config:    config,
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		mail:      mail,
	}
}

// Signup creates a pending account and emails a verification code. The code
// lives in the cache keyed by email with the OTP TTL, never in a response.
func (s *AuthAppImpl) Signup(ctx context.Context, req *model.SignupRequest) error {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Signup] err userRepo.Get email", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return errors.SetCustomError(constant.ErrEmailExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Signup] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Username:        req.Username,
		Password:        sql.NullString{String: string(hashedPassword), Valid: true},
		MobileNumber:    req.MobileNumber,
		SocialLoginType: req.SocialLoginType,
		ProfilePicture:  req.ProfilePicture,
		Country:         req.Country,
		UserType:        req.UserType,
		Status:          constant.UserStatusPending,
	}

	if _, err := s.userRepo.Create(ctx, userEntity); err != nil {
		logger.Error("[Signup] err userRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return s.issueOTP(ctx, req.Email)
}

// VerifyOTP completes signup. The code is single use: it is consumed before
// the account flips to active, so a second attempt with the same code fails.
func (s *AuthAppImpl) VerifyOTP(ctx context.Context, req *model.VerifyOTPRequest) (*model.LoginResponse, error) {
	stored, err := s.cacheRepo.GetOTP(ctx, req.Email)
	if err != nil {
		if err == cacherepo.ErrMiss {
			return nil, errors.SetCustomError(constant.ErrOTPExpired)
		}
		logger.Error("[VerifyOTP] err cacheRepo.GetOTP", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.OTP)) != 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidOTP)
	}

	if err := s.cacheRepo.DeleteOTP(ctx, req.Email); err != nil {
		logger.Error("[VerifyOTP] err cacheRepo.DeleteOTP", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.SetStatusByEmail(ctx, req.Email, constant.UserStatusActive); err != nil {
		logger.Error("[VerifyOTP] err userRepo.SetStatusByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[VerifyOTP] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	token, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Message: "User successfully verified and registered",
		User:    authUser(user),
		Token:   token,
	}, nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req.Token != "" {
		return s.tokenLogin(ctx, req.Token)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	// Inactive accounts re-enter the verification flow instead of getting a token.
	if user.Status != constant.UserStatusActive {
		if err := s.issueOTP(ctx, user.Email); err != nil {
			return nil, err
		}
		return &model.LoginResponse{Message: "OTP sent to your email", OTPSent: true}, nil
	}

	token, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Message: "Login successful",
		User:    authUser(user),
		Token:   token,
	}, nil
}

func (s *AuthAppImpl) tokenLogin(ctx context.Context, tokenString string) (*model.LoginResponse, error) {
	userID, _, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[tokenLogin] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if user.Status != constant.UserStatusActive {
		return nil, errors.SetCustomError(constant.ErrAccountInactive)
	}

	return &model.LoginResponse{
		Message: "Login successful",
		User:    authUser(user),
		Token:   tokenString,
	}, nil
}

// SocialLogin handles an externally verified identity. Unknown emails become
// active accounts immediately; email ownership was already proven upstream.
func (s *AuthAppImpl) SocialLogin(ctx context.Context, profile *model.SocialProfile) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: profile.Email})
	if err != nil {
		logger.Error("[SocialLogin] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		user = &model.UserEntity{
			FirstName:       profile.FirstName,
			LastName:        profile.LastName,
			Email:           profile.Email,
			Username:        profile.FirstName + profile.LastName,
			MobileNumber:    "",
			SocialLoginType: constant.SocialLoginGmail,
			ProfilePicture:  profile.ProfilePicture,
			UserType:        constant.UserTypeVisitor,
			Status:          constant.UserStatusActive,
		}
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			logger.Error("[SocialLogin] err userRepo.Create", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	token, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Message: "Login successful",
		User:    authUser(user),
		Token:   token,
	}, nil
}

func (s *AuthAppImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		logger.Error("[ForgotPassword] err rand.Read", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	token := hex.EncodeToString(raw)

	if err := s.userRepo.UpsertResetToken(ctx, email, token); err != nil {
		logger.Error("[ForgotPassword] err userRepo.UpsertResetToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s&email=%s", s.config.FrontendURL, token, email)
	if err := s.mail.SendPasswordReset(email, resetLink); err != nil {
		logger.Error("[ForgotPassword] err mail.SendPasswordReset", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *AuthAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	entity, err := s.userRepo.GetResetToken(ctx, req.Email, req.Token)
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.GetResetToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrResetTokenInvalid)
	}
	if time.Since(entity.CreatedAt) > s.config.Auth.ResetTokenTTL {
		return errors.SetCustomError(constant.ErrResetTokenExpired)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.UpdatePasswordByEmail(ctx, req.Email, string(hashedPassword)); err != nil {
		logger.Error("[ResetPassword] err userRepo.UpdatePasswordByEmail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.userRepo.DeleteResetToken(ctx, req.Email); err != nil {
		logger.Error("[ResetPassword] err userRepo.DeleteResetToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *AuthAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	profile, err := s.userRepo.GetProfile(ctx, userID)
	if err != nil {
		logger.Error("[GetProfile] err userRepo.GetProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if profile == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return profile, nil
}

func (s *AuthAppImpl) UpdateProfile(ctx context.Context, userID uint64, patch *model.ProfilePatch) error {
	if patch.Empty() {
		return errors.SetCustomError(constant.ErrNoUpdateFields)
	}

	affected, err := s.userRepo.UpdateProfile(ctx, userID, patch)
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// DeleteAccount checks each precondition in order so the caller learns the
// specific reason a deletion was refused.
func (s *AuthAppImpl) DeleteAccount(ctx context.Context, userID uint64, req *model.DeleteAccountRequest) error {
	if !req.ConfirmDeletion {
		return errors.SetCustomError(constant.ErrConfirmationRequired)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[DeleteAccount] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if user.Status != constant.UserStatusActive {
		return errors.SetCustomError(constant.ErrAccountInactive)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password.String), []byte(req.Password)); err != nil {
		return errors.SetCustomError(constant.ErrInvalidPassword)
	}
	if time.Since(user.CreatedAt) < constant.MinAccountAgeDays*24*time.Hour {
		return errors.SetCustomError(constant.ErrAccountTooYoung)
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		logger.Error("[DeleteAccount] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id in token")
	}

	jti := c.ID
	if jti == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	sessionUserID, err := s.cacheRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, "", fmt.Errorf("invalid or expired session")
	}
	if sessionUserID != userID {
		return 0, "", fmt.Errorf("token does not match user session")
	}

	return userID, c.UserType, nil
}

// issueOTP generates a 6-digit code, stores it with the configured TTL and
// mails it. Delivery failure is an error, not a silent drop.
func (s *AuthAppImpl) issueOTP(ctx context.Context, email string) error {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		logger.Error("[issueOTP] err rand.Int", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	code := strconv.FormatInt(n.Int64()+100000, 10)

	if err := s.cacheRepo.SetOTP(ctx, email, code, s.config.Auth.OTPExpiration); err != nil {
		logger.Error("[issueOTP] err cacheRepo.SetOTP", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.mail.SendOTP(email, code); err != nil {
		logger.Error("[issueOTP] err mail.SendOTP", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

// issueSession signs a JWT and registers its jti in the session store.
func (s *AuthAppImpl) issueSession(ctx context.Context, user *model.UserEntity) (string, error) {
	token, jti, err := s.generateJWT(user.ID, user.UserType)
	if err != nil {
		logger.Error("[issueSession] err generateJWT", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.cacheRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[issueSession] err cacheRepo.SetSession", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}

	return token, nil
}

func (s *AuthAppImpl) generateJWT(userID uint64, userType string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	c := claims{
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, c.ID, nil
}

func authUser(user *model.UserEntity) *model.AuthUser {
	return &model.AuthUser{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		MobileNumber: user.MobileNumber,
	}
}
