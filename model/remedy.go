package model

import "time"

// RemedyEntity represents the remedies table entity with its denormalized
// reaction counters.
type RemedyEntity struct {
	ID                 uint64     `db:"id" json:"id"`
	UserID             uint64     `db:"user_id" json:"user_id"`
	CategoryID         uint64     `db:"category_id" json:"category_id"`
	Title              string     `db:"title" json:"title"`
	Ingredients        string     `db:"ingredients" json:"ingredients"`
	PreparationProcess string     `db:"preparation_process" json:"preparation_process"`
	ApplicationProcess string     `db:"application_process" json:"application_process"`
	Benefits           string     `db:"benefits" json:"benefits"`
	Photo              string     `db:"photo" json:"photo"`
	Video              string     `db:"video" json:"video"`
	Likes              int64      `db:"likes" json:"likes"`
	Dislikes           int64      `db:"dislikes" json:"dislikes"`
	Status             string     `db:"status" json:"status"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// RemedyDetail joins owner and category display fields plus the caller's
// reaction flags computed from existence subqueries.
type RemedyDetail struct {
	RemedyID           uint64     `db:"remedy_id" json:"remedy_id"`
	RemedyTitle        string     `db:"remedy_title" json:"remedy_title"`
	Ingredients        string     `db:"ingredients" json:"ingredients"`
	PreparationProcess string     `db:"preparation_process" json:"preparation_process"`
	ApplicationProcess string     `db:"application_process" json:"application_process"`
	Benefits           string     `db:"benefits" json:"benefits"`
	Photo              string     `db:"photo" json:"photo"`
	Video              string     `db:"video" json:"video"`
	Likes              int64      `db:"likes" json:"likes"`
	Dislikes           int64      `db:"dislikes" json:"dislikes"`
	Status             string     `db:"status" json:"status"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at" json:"updated_at,omitempty"`
	CategoryID         uint64     `db:"category_id" json:"category_id"`
	CategoryName       string     `db:"category_name" json:"category_name"`
	UserID             uint64     `db:"user_id" json:"user_id"`
	FirstName          string     `db:"first_name" json:"first_name"`
	LastName           string     `db:"last_name" json:"last_name"`
	Country            string     `db:"country" json:"country,omitempty"`
	Email              string     `db:"email" json:"email"`
	MobileNumber       string     `db:"mobile_number" json:"mobile_number"`
	IsLiked            bool       `db:"is_liked" json:"isLiked"`
	IsDisliked         bool       `db:"is_disliked" json:"isDisliked"`
	IsBookmarked       bool       `db:"is_bookmarked" json:"isBookmarked"`
}

// RemedyFilter narrows approved-remedy listings.
type RemedyFilter struct {
	CategoryID uint64
	Country    string
	// Trending orders by likes desc and caps the result set.
	Trending bool
	// BookmarkedBy restricts to remedies bookmarked by the given user.
	BookmarkedBy uint64
}

type CreateRemedyRequest struct {
	CategoryID         uint64 `json:"category_id" validate:"required,gt=0"`
	Title              string `json:"title" validate:"required"`
	Ingredients        string `json:"ingredients" validate:"required"`
	PreparationProcess string `json:"preparation_process" validate:"required"`
	ApplicationProcess string `json:"application_process" validate:"required"`
	Benefits           string `json:"benefits" validate:"required"`
	Photo              string `json:"photo" validate:"required"`
	Video              string `json:"video" validate:"required"`
}

// RemedyPatch carries the mutable remedy fields; nil means keep current.
type RemedyPatch struct {
	CategoryID         *uint64 `json:"category_id"`
	Title              *string `json:"title"`
	Ingredients        *string `json:"ingredients"`
	PreparationProcess *string `json:"preparation_process"`
	ApplicationProcess *string `json:"application_process"`
	Benefits           *string `json:"benefits"`
	Photo              *string `json:"photo"`
	Video              *string `json:"video"`
}

func (p *RemedyPatch) Empty() bool {
	return p.CategoryID == nil && p.Title == nil && p.Ingredients == nil &&
		p.PreparationProcess == nil && p.ApplicationProcess == nil &&
		p.Benefits == nil && p.Photo == nil && p.Video == nil
}
