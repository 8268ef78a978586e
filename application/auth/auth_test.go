package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	appauth "github.com/globalremedies/backend/application/auth"
	"github.com/globalremedies/backend/cmd/config"
	"github.com/globalremedies/backend/constant"
	cachemocks "github.com/globalremedies/backend/mocks/repository/cache"
	usermocks "github.com/globalremedies/backend/mocks/repository/user"
	mailermocks "github.com/globalremedies/backend/mocks/thirdparty/mailer"
	"github.com/globalremedies/backend/model"
	cacherepo "github.com/globalremedies/backend/repository/cache"
	cerr "github.com/globalremedies/backend/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
			OTPExpiration:  5 * time.Minute,
			ResetTokenTTL:  10 * time.Minute,
		},
		FrontendURL: "http://localhost:3000",
	}
}

func hashOf(password string) sql.NullString {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return sql.NullString{String: string(hashed), Valid: true}
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestAuthApp_Signup(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		cacheRepo *cachemocks.Repository
		mail      *mailermocks.Mailer
	}
	type args struct {
		ctx context.Context
		req *model.SignupRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: signup new user sends OTP",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					FirstName:    "Jamie",
					LastName:     "Rivera",
					Email:        "jamie@example.com",
					Username:     "jamier",
					Password:     "password123",
					MobileNumber: "5551234567",
					Country:      "Mexico",
					UserType:     constant.UserTypeVisitor,
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "jamie@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Email == "jamie@example.com" &&
							ent.Status == constant.UserStatusPending &&
							ent.Password.Valid && ent.Password.String != "password123"
					})).
					Return(&model.UserEntity{ID: 1}, nil).
					Once()

				f.cacheRepo.
					On("SetOTP", mock.Anything, "jamie@example.com", mock.MatchedBy(func(code string) bool {
						return len(code) == 6
					}), 5*time.Minute).
					Return(nil).
					Once()

				f.mail.
					On("SendOTP", "jamie@example.com", mock.Anything).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: email already registered",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Email:    "taken@example.com",
					Username: "taken",
					Password: "password123",
					UserType: constant.UserTypeVisitor,
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "taken@example.com"}).
					Return(&model.UserEntity{ID: 7, Email: "taken@example.com"}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrEmailExists,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Email:    "jamie@example.com",
					Username: "jamier",
					Password: "password123",
					UserType: constant.UserTypeVisitor,
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "jamie@example.com"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.userRepo, tt.fields.cacheRepo, tt.fields.mail)

			err := app.Signup(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Signup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAuthApp_VerifyOTP(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		cacheRepo *cachemocks.Repository
		mail      *mailermocks.Mailer
	}
	type args struct {
		ctx context.Context
		req *model.VerifyOTPRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: correct code activates account and issues token",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.VerifyOTPRequest{Email: "jamie@example.com", OTP: "123456"},
			},
			mockCall: func(f fields) {
				f.cacheRepo.
					On("GetOTP", mock.Anything, "jamie@example.com").
					Return("123456", nil).
					Once()

				f.cacheRepo.
					On("DeleteOTP", mock.Anything, "jamie@example.com").
					Return(nil).
					Once()

				f.userRepo.
					On("SetStatusByEmail", mock.Anything, "jamie@example.com", constant.UserStatusActive).
					Return(nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "jamie@example.com"}).
					Return(&model.UserEntity{
						ID:       1,
						Email:    "jamie@example.com",
						Username: "jamier",
						UserType: constant.UserTypeVisitor,
						Status:   constant.UserStatusActive,
					}, nil).
					Once()

				f.cacheRepo.
					On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: wrong code",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.VerifyOTPRequest{Email: "jamie@example.com", OTP: "000000"},
			},
			mockCall: func(f fields) {
				f.cacheRepo.
					On("GetOTP", mock.Anything, "jamie@example.com").
					Return("123456", nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOTP,
		},
		{
			name: "error: code expired or never issued",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.VerifyOTPRequest{Email: "jamie@example.com", OTP: "123456"},
			},
			mockCall: func(f fields) {
				f.cacheRepo.
					On("GetOTP", mock.Anything, "jamie@example.com").
					Return("", cacherepo.ErrMiss).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrOTPExpired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.userRepo, tt.fields.cacheRepo, tt.fields.mail)

			got, err := app.VerifyOTP(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyOTP() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Token == "" {
				t.Fatalf("VerifyOTP() returned empty token")
			}
			if got.User == nil || got.User.ID != 1 {
				t.Fatalf("VerifyOTP() user = %+v, want ID 1", got.User)
			}
		})
	}
}

func TestAuthApp_Login(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		cacheRepo *cachemocks.Repository
		mail      *mailermocks.Mailer
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		wantErr     bool
		errCode     constant.ErrorType
		wantToken   bool
		wantOTPSent bool
	}{
		{
			name: "success: active account gets token",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "jamier", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "jamier"}).
					Return(&model.UserEntity{
						ID:       1,
						Email:    "jamie@example.com",
						Username: "jamier",
						Password: hashOf("password123"),
						UserType: constant.UserTypeVisitor,
						Status:   constant.UserStatusActive,
					}, nil).
					Once()

				f.cacheRepo.
					On("SetSession", mock.Anything, mock.Anything, uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			wantToken: true,
		},
		{
			name: "success: inactive account re-enters OTP flow",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "jamier", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "jamier"}).
					Return(&model.UserEntity{
						ID:       1,
						Email:    "jamie@example.com",
						Username: "jamier",
						Password: hashOf("password123"),
						Status:   constant.UserStatusPending,
					}, nil).
					Once()

				f.cacheRepo.
					On("SetOTP", mock.Anything, "jamie@example.com", mock.Anything, 5*time.Minute).
					Return(nil).
					Once()

				f.mail.
					On("SendOTP", "jamie@example.com", mock.Anything).
					Return(nil).
					Once()
			},
			wantOTPSent: true,
		},
		{
			name: "error: unknown username",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "nobody", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "nobody"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "jamier", Password: "wrong"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "jamier"}).
					Return(&model.UserEntity{
						ID:       1,
						Username: "jamier",
						Password: hashOf("password123"),
						Status:   constant.UserStatusActive,
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.userRepo, tt.fields.cacheRepo, tt.fields.mail)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if tt.wantToken && got.Token == "" {
				t.Fatalf("Login() returned empty token")
			}
			if got.OTPSent != tt.wantOTPSent {
				t.Fatalf("Login() OTPSent = %v, want %v", got.OTPSent, tt.wantOTPSent)
			}
		})
	}
}

func TestAuthApp_ResetPassword(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		cacheRepo *cachemocks.Repository
		mail      *mailermocks.Mailer
	}
	type args struct {
		ctx context.Context
		req *model.ResetPasswordRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: valid token within window",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ResetPasswordRequest{
					Email:       "jamie@example.com",
					Token:       "tok123",
					NewPassword: "newpassword1",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetResetToken", mock.Anything, "jamie@example.com", "tok123").
					Return(&model.ResetTokenEntity{
						Email:     "jamie@example.com",
						Token:     "tok123",
						CreatedAt: time.Now().Add(-time.Minute),
					}, nil).
					Once()

				f.userRepo.
					On("UpdatePasswordByEmail", mock.Anything, "jamie@example.com", mock.MatchedBy(func(hash string) bool {
						return bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword1")) == nil
					})).
					Return(nil).
					Once()

				f.userRepo.
					On("DeleteResetToken", mock.Anything, "jamie@example.com").
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: token not found",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ResetPasswordRequest{
					Email:       "jamie@example.com",
					Token:       "bogus",
					NewPassword: "newpassword1",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetResetToken", mock.Anything, "jamie@example.com", "bogus").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrResetTokenInvalid,
		},
		{
			name: "error: token expired",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ResetPasswordRequest{
					Email:       "jamie@example.com",
					Token:       "tok123",
					NewPassword: "newpassword1",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("GetResetToken", mock.Anything, "jamie@example.com", "tok123").
					Return(&model.ResetTokenEntity{
						Email:     "jamie@example.com",
						Token:     "tok123",
						CreatedAt: time.Now().Add(-time.Hour),
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrResetTokenExpired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.userRepo, tt.fields.cacheRepo, tt.fields.mail)

			err := app.ResetPassword(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResetPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestAuthApp_DeleteAccount(t *testing.T) {
	activeUser := func(created time.Time) *model.UserEntity {
		return &model.UserEntity{
			ID:        1,
			Email:     "jamie@example.com",
			Password:  hashOf("password123"),
			Status:    constant.UserStatusActive,
			CreatedAt: created,
		}
	}

	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		cacheRepo *cachemocks.Repository
		mail      *mailermocks.Mailer
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.DeleteAccountRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: old enough account with confirmation and password",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.DeleteAccountRequest{ConfirmDeletion: true, Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(activeUser(time.Now().AddDate(0, -2, 0)), nil).
					Once()

				f.userRepo.
					On("Delete", mock.Anything, uint64(1)).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: missing confirmation flag",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.DeleteAccountRequest{Password: "password123"},
			},
			wantErr: true,
			errCode: constant.ErrConfirmationRequired,
		},
		{
			name: "error: inactive account",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.DeleteAccountRequest{ConfirmDeletion: true, Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{
						ID:       1,
						Password: hashOf("password123"),
						Status:   constant.UserStatusPending,
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountInactive,
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.DeleteAccountRequest{ConfirmDeletion: true, Password: "wrong"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(activeUser(time.Now().AddDate(0, -2, 0)), nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: account younger than thirty days",
			fields: fields{
				config:    testConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				cacheRepo: cachemocks.NewRepository(t),
				mail:      mailermocks.NewMailer(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				req:    &model.DeleteAccountRequest{ConfirmDeletion: true, Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(activeUser(time.Now().AddDate(0, 0, -5)), nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAccountTooYoung,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(tt.fields.config, tt.fields.userRepo, tt.fields.cacheRepo, tt.fields.mail)

			err := app.DeleteAccount(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteAccount() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
