package model

import "time"

// ReviewEntity represents the reviews table entity. At most one review per
// (user, remedy) pair.
type ReviewEntity struct {
	ID          uint64    `db:"id" json:"id"`
	RemedyID    uint64    `db:"remedy_id" json:"remedy_id"`
	UserID      uint64    `db:"user_id" json:"user_id"`
	Rating      float64   `db:"rating" json:"rating"`
	Review      string    `db:"review" json:"review"`
	ReviewTitle string    `db:"review_title" json:"review_title"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ReviewDetail joins reviewer display fields.
type ReviewDetail struct {
	ReviewEntity
	UserFirstName      string `db:"user_first_name" json:"user_first_name"`
	UserLastName       string `db:"user_last_name" json:"user_last_name"`
	UserProfilePicture string `db:"user_profile_picture" json:"user_profile_picture,omitempty"`
	UserEmail          string `db:"user_email" json:"user_email"`
	UserUsername       string `db:"user_username" json:"user_username"`
}

type CreateReviewRequest struct {
	RemedyID    uint64  `json:"remedy_id" validate:"required,gt=0"`
	Rating      float64 `json:"rating" validate:"required,gte=1,lte=5,onedecimal"`
	Review      string  `json:"review" validate:"required"`
	ReviewTitle string  `json:"review_title" validate:"required"`
}

// ReviewPatch carries the mutable review fields; nil means keep current.
type ReviewPatch struct {
	Rating      *float64 `json:"rating" validate:"omitempty,gte=1,lte=5,onedecimal"`
	Review      *string  `json:"review"`
	ReviewTitle *string  `json:"review_title"`
}

func (p *ReviewPatch) Empty() bool {
	return p.Rating == nil && p.Review == nil && p.ReviewTitle == nil
}
