package model

import "time"

// PostEntity represents the community_posts table entity.
type PostEntity struct {
	ID        uint64     `db:"id" json:"id"`
	UserID    uint64     `db:"user_id" json:"user_id"`
	Title     string     `db:"title" json:"title"`
	Body      string     `db:"body" json:"body"`
	Likes     int64      `db:"likes" json:"likes"`
	Dislikes  int64      `db:"dislikes" json:"dislikes"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// PostDetail joins author display fields and the caller's like flag.
type PostDetail struct {
	PostEntity
	Username       string `db:"username" json:"username"`
	ProfilePicture string `db:"profile_picture" json:"profile_picture,omitempty"`
	Email          string `db:"email" json:"email"`
	FirstName      string `db:"first_name" json:"first_name"`
	LastName       string `db:"last_name" json:"last_name"`
	IsLiked        bool   `db:"is_liked" json:"isLiked"`
	IsDisliked     bool   `db:"is_disliked" json:"isDisliked"`
}

type CreatePostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// PostPatch carries the mutable post fields; nil means keep current.
type PostPatch struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func (p *PostPatch) Empty() bool {
	return p.Title == nil && p.Body == nil
}

// CommentEntity represents the community_comments table entity.
type CommentEntity struct {
	ID        uint64     `db:"id" json:"id"`
	PostID    uint64     `db:"post_id" json:"post_id"`
	UserID    uint64     `db:"user_id" json:"user_id"`
	Comment   string     `db:"comment" json:"comment"`
	Likes     int64      `db:"likes" json:"likes"`
	Dislikes  int64      `db:"dislikes" json:"dislikes"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateCommentRequest struct {
	PostID  uint64 `json:"post_id" validate:"required,gt=0"`
	Comment string `json:"comment" validate:"required"`
}

type UpdateCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}
