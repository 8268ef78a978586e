package remedy

import (
	"context"
	"database/sql"

	"github.com/globalremedies/backend/constant"
	"github.com/globalremedies/backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type RemedyRepository interface {
	List(ctx context.Context, viewerID uint64, filter *model.RemedyFilter) ([]model.RemedyDetail, error)
	GetByID(ctx context.Context, viewerID, id uint64) (*model.RemedyDetail, error)
	Get(ctx context.Context, id uint64) (*model.RemedyEntity, error)
	Create(ctx context.Context, req *model.RemedyEntity) (uint64, error)
	Update(ctx context.Context, id, ownerID uint64, patch *model.RemedyPatch) (int64, error)
	Delete(ctx context.Context, id uint64) error
}

func NewRemedyRepository(conn *sqlx.DB) RemedyRepository {
	return &SQL{conn: conn}
}

// detailBase joins owner and category display fields and computes the
// viewer's reaction flags from the ledger tables.
const detailBase = `SELECT
r.id AS remedy_id,
r.title AS remedy_title,
r.ingredients,
r.preparation_process,
r.application_process,
r.benefits,
r.photo,
r.video,
r.likes,
r.dislikes,
r.status,
r.created_at,
r.updated_at,
c.id AS category_id,
c.name AS category_name,
u.id AS user_id,
u.first_name,
u.last_name,
u.country,
u.email,
u.mobile_number,
EXISTS (SELECT 1 FROM likes l WHERE l.user_id = ? AND l.remedy_id = r.id) AS is_liked,
EXISTS (SELECT 1 FROM dislikes d WHERE d.user_id = ? AND d.remedy_id = r.id) AS is_disliked,
EXISTS (SELECT 1 FROM bookmarks b WHERE b.user_id = ? AND b.remedy_id = r.id) AS is_bookmarked
FROM remedies r
JOIN categories c ON r.category_id = c.id
JOIN users u ON r.user_id = u.id`

const updateRemedyQuery = `UPDATE remedies SET
category_id = COALESCE(?, category_id),
title = COALESCE(?, title),
ingredients = COALESCE(?, ingredients),
preparation_process = COALESCE(?, preparation_process),
application_process = COALESCE(?, application_process),
benefits = COALESCE(?, benefits),
photo = COALESCE(?, photo),
video = COALESCE(?, video),
updated_at = NOW()
WHERE id = ? AND user_id = ?`

func (s *SQL) List(ctx context.Context, viewerID uint64, filter *model.RemedyFilter) ([]model.RemedyDetail, error) {
	query := detailBase
	args := []any{viewerID, viewerID, viewerID}

	if filter != nil && filter.BookmarkedBy != 0 {
		query += " JOIN bookmarks vb ON vb.remedy_id = r.id AND vb.user_id = ?"
		args = append(args, filter.BookmarkedBy)
	}

	query += " WHERE r.status = ?"
	args = append(args, constant.RemedyStatusApproved)

	orderByLikes := false
	if filter != nil {
		if filter.CategoryID != 0 {
			query += " AND r.category_id = ?"
			args = append(args, filter.CategoryID)
		}
		if filter.Country != "" {
			query += " AND u.country = ?"
			args = append(args, filter.Country)
			orderByLikes = true
		}
		if filter.Trending {
			orderByLikes = true
		}
	}
	if orderByLikes {
		query += " ORDER BY r.likes DESC"
	}
	if filter != nil && filter.Trending {
		query += " LIMIT ?"
		args = append(args, constant.TrendingLimit)
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RemedyDetail, 0)
	for rows.Next() {
		var it model.RemedyDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, viewerID, id uint64) (*model.RemedyDetail, error) {
	var detail model.RemedyDetail
	query := detailBase + " WHERE r.id = ? AND r.status = ?"
	err := s.conn.QueryRowxContext(ctx, query, viewerID, viewerID, viewerID, id, constant.RemedyStatusApproved).StructScan(&detail)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

// Get fetches the raw row regardless of approval status; used for ownership
// and existence checks.
func (s *SQL) Get(ctx context.Context, id uint64) (*model.RemedyEntity, error) {
	var entity model.RemedyEntity
	err := s.conn.QueryRowxContext(ctx,
		`SELECT id, user_id, category_id, title, ingredients, preparation_process, application_process, benefits, photo, video, likes, dislikes, status, created_at, updated_at
FROM remedies WHERE id = ?`, id).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.RemedyEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		`INSERT INTO remedies
(user_id, category_id, title, ingredients, preparation_process, application_process, benefits, photo, video, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		data.UserID, data.CategoryID, data.Title, data.Ingredients, data.PreparationProcess,
		data.ApplicationProcess, data.Benefits, data.Photo, data.Video, data.Status)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id, ownerID uint64, patch *model.RemedyPatch) (int64, error) {
	result, err := s.conn.ExecContext(ctx, updateRemedyQuery,
		patch.CategoryID, patch.Title, patch.Ingredients, patch.PreparationProcess,
		patch.ApplicationProcess, patch.Benefits, patch.Photo, patch.Video,
		id, ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM remedies WHERE id = ?", id)
	return err
}
