package review

import (
	"context"
	"database/sql"
	"strings"

	"github.com/globalremedies/backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ReviewRepository interface {
	ListByRemedy(ctx context.Context, remedyID uint64) ([]model.ReviewDetail, error)
	Get(ctx context.Context, id uint64) (*model.ReviewEntity, error)
	Exists(ctx context.Context, remedyID, userID uint64) (bool, error)
	Create(ctx context.Context, req *model.ReviewEntity) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.ReviewPatch) (int64, error)
	Delete(ctx context.Context, id uint64) error
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

const listByRemedyQuery = `SELECT
reviews.id, reviews.remedy_id, reviews.user_id, reviews.rating, reviews.review, reviews.review_title, reviews.created_at,
users.first_name AS user_first_name,
users.last_name AS user_last_name,
users.profile_picture AS user_profile_picture,
users.email AS user_email,
users.username AS user_username
FROM reviews
JOIN users ON reviews.user_id = users.id
WHERE reviews.remedy_id = ?`

func (s *SQL) ListByRemedy(ctx context.Context, remedyID uint64) ([]model.ReviewDetail, error) {
	rows, err := s.conn.QueryxContext(ctx, listByRemedyQuery, remedyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ReviewDetail, 0)
	for rows.Next() {
		var it model.ReviewDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.ReviewEntity, error) {
	var entity model.ReviewEntity
	err := s.conn.QueryRowxContext(ctx,
		"SELECT id, remedy_id, user_id, rating, review, review_title, created_at FROM reviews WHERE id = ?",
		id).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Exists(ctx context.Context, remedyID, userID uint64) (bool, error) {
	var exists bool
	err := s.conn.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM reviews WHERE remedy_id = ? AND user_id = ?)",
		remedyID, userID)
	return exists, err
}

func (s *SQL) Create(ctx context.Context, data *model.ReviewEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO reviews (remedy_id, user_id, rating, review, review_title, created_at) VALUES (?, ?, ?, ?, ?, NOW())",
		data.RemedyID, data.UserID, data.Rating, data.Review, data.ReviewTitle)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.ReviewPatch) (int64, error) {
	fields := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if patch.Rating != nil {
		fields = append(fields, "rating = ?")
		args = append(args, *patch.Rating)
	}
	if patch.Review != nil {
		fields = append(fields, "review = ?")
		args = append(args, *patch.Review)
	}
	if patch.ReviewTitle != nil {
		fields = append(fields, "review_title = ?")
		args = append(args, *patch.ReviewTitle)
	}

	query := "UPDATE reviews SET " + strings.Join(fields, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	return err
}
