package model

import (
	"database/sql"
	"time"
)

// UserEntity represents the users table entity. Password is nullable for
// accounts created through social login.
type UserEntity struct {
	ID              uint64         `db:"id" json:"id"`
	FirstName       string         `db:"first_name" json:"first_name"`
	LastName        string         `db:"last_name" json:"last_name"`
	Email           string         `db:"email" json:"email"`
	Username        string         `db:"username" json:"username"`
	Password        sql.NullString `db:"password" json:"-"`
	MobileNumber    string         `db:"mobile_number" json:"mobile_number"`
	SocialLoginType string         `db:"social_login_type" json:"social_login_type,omitempty"`
	ProfilePicture  string         `db:"profile_picture" json:"profile_picture,omitempty"`
	Country         string         `db:"country" json:"country,omitempty"`
	UserType        string         `db:"user_type" json:"user_type"`
	Status          string         `db:"status" json:"status"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time     `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       uint64
	Email    string
	Username string
}

// SignupRequest for user registration
type SignupRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	MobileNumber    string `json:"mobile_number" validate:"required"`
	SocialLoginType string `json:"social_login_type"`
	ProfilePicture  string `json:"profile_picture"`
	Country         string `json:"country"`
	UserType        string `json:"user_type" validate:"required,oneof=admin visitor"`
}

// VerifyOTPRequest completes signup with the emailed code.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// LoginRequest accepts either username+password or a previously issued token.
type LoginRequest struct {
	Username string `json:"username" validate:"required_without=Token"`
	Password string `json:"password" validate:"required_without=Token"`
	Token    string `json:"token"`
}

// AuthUser is the minimal profile returned alongside a token.
type AuthUser struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	MobileNumber string `json:"mobile_number"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	User    *AuthUser `json:"user,omitempty"`
	Token   string    `json:"token,omitempty"`
	// OTPSent is set when an inactive account re-triggers verification
	// instead of receiving a token.
	OTPSent bool `json:"otp_sent,omitempty"`
}

// SocialProfile is an externally verified identity (e.g. Google).
type SocialProfile struct {
	Email          string
	FirstName      string
	LastName       string
	ProfilePicture string
}

// ProfilePatch carries the mutable profile fields; nil means keep current.
type ProfilePatch struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	MobileNumber   *string `json:"mobile_number"`
	ProfilePicture *string `json:"profile_picture"`
	Country        *string `json:"country"`
}

// Empty reports whether no field was supplied.
func (p *ProfilePatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.MobileNumber == nil &&
		p.ProfilePicture == nil && p.Country == nil
}

// UserProfile is the owner-facing profile view.
type UserProfile struct {
	ID              uint64     `db:"id" json:"id"`
	FirstName       string     `db:"first_name" json:"first_name"`
	LastName        string     `db:"last_name" json:"last_name"`
	Email           string     `db:"email" json:"email"`
	Username        string     `db:"username" json:"username"`
	MobileNumber    string     `db:"mobile_number" json:"mobile_number"`
	SocialLoginType string     `db:"social_login_type" json:"social_login_type,omitempty"`
	ProfilePicture  string     `db:"profile_picture" json:"profile_picture,omitempty"`
	Country         string     `db:"country" json:"country,omitempty"`
	Status          string     `db:"status" json:"status"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// DeleteAccountRequest requires explicit confirmation plus the current password.
type DeleteAccountRequest struct {
	ConfirmDeletion bool   `json:"confirm_deletion"`
	Password        string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// ResetTokenEntity is a row in the forget_password table; one active token
// per email.
type ResetTokenEntity struct {
	Email     string    `db:"email"`
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"created_at"`
}
