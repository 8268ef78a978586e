package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrEmailExists
	ErrInvalidCredentials
	ErrInvalidPassword
	ErrAccountInactive
	ErrInvalidOTP
	ErrOTPExpired
	ErrInvalidToken
	ErrResetTokenInvalid
	ErrResetTokenExpired
	ErrAlreadyLiked
	ErrAlreadyDisliked
	ErrAlreadyBookmarked
	ErrAlreadyReviewed
	ErrNoUpdateFields
	ErrConfirmationRequired
	ErrAccountTooYoung
	ErrUploadFailed
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrForbidden:            "forbidden",
	ErrEmailExists:          "email already exists",
	ErrInvalidCredentials:   "invalid credentials",
	ErrInvalidPassword:      "password invalid",
	ErrAccountInactive:      "account is not active",
	ErrInvalidOTP:           "invalid otp",
	ErrOTPExpired:           "otp has expired",
	ErrInvalidToken:         "invalid or expired token",
	ErrResetTokenInvalid:    "invalid or expired token",
	ErrResetTokenExpired:    "token has expired",
	ErrAlreadyLiked:         "already liked",
	ErrAlreadyDisliked:      "already disliked",
	ErrAlreadyBookmarked:    "already bookmarked",
	ErrAlreadyReviewed:      "you have already reviewed this remedy",
	ErrNoUpdateFields:       "at least one field is required",
	ErrConfirmationRequired: "please confirm account deletion",
	ErrAccountTooYoung:      "account must be at least 30 days old to be deleted",
	ErrUploadFailed:         "image upload failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrEmailExists:          http.StatusBadRequest,
	ErrInvalidCredentials:   http.StatusNotFound,
	ErrInvalidPassword:      http.StatusUnauthorized,
	ErrAccountInactive:      http.StatusForbidden,
	ErrInvalidOTP:           http.StatusBadRequest,
	ErrOTPExpired:           http.StatusBadRequest,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrResetTokenInvalid:    http.StatusBadRequest,
	ErrResetTokenExpired:    http.StatusBadRequest,
	ErrAlreadyLiked:         http.StatusBadRequest,
	ErrAlreadyDisliked:      http.StatusBadRequest,
	ErrAlreadyBookmarked:    http.StatusBadRequest,
	ErrAlreadyReviewed:      http.StatusConflict,
	ErrNoUpdateFields:       http.StatusBadRequest,
	ErrConfirmationRequired: http.StatusBadRequest,
	ErrAccountTooYoung:      http.StatusForbidden,
	ErrUploadFailed:         http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrForbidden:            "0005",
	ErrEmailExists:          "0006",
	ErrInvalidCredentials:   "0007",
	ErrInvalidPassword:      "0008",
	ErrAccountInactive:      "0009",
	ErrInvalidOTP:           "0010",
	ErrOTPExpired:           "0011",
	ErrInvalidToken:         "0012",
	ErrResetTokenInvalid:    "0013",
	ErrResetTokenExpired:    "0022",
	ErrAlreadyLiked:         "0014",
	ErrAlreadyDisliked:      "0015",
	ErrAlreadyBookmarked:    "0016",
	ErrAlreadyReviewed:      "0017",
	ErrNoUpdateFields:       "0018",
	ErrConfirmationRequired: "0019",
	ErrAccountTooYoung:      "0020",
	ErrUploadFailed:         "0021",
}
