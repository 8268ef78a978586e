package post

import (
	"context"
	"database/sql"

	"github.com/globalremedies/backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type PostRepository interface {
	List(ctx context.Context, viewerID uint64) ([]model.PostDetail, error)
	GetByID(ctx context.Context, viewerID, id uint64) (*model.PostDetail, error)
	Get(ctx context.Context, id uint64) (*model.PostEntity, error)
	Create(ctx context.Context, req *model.PostEntity) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.PostPatch) (int64, error)
	Delete(ctx context.Context, id uint64) error
}

func NewPostRepository(conn *sqlx.DB) PostRepository {
	return &SQL{conn: conn}
}

const postDetailBase = `SELECT
p.id, p.user_id, p.title, p.body, p.likes, p.dislikes, p.created_at, p.updated_at,
u.username, u.profile_picture, u.email, u.first_name, u.last_name,
EXISTS (SELECT 1 FROM post_likes l WHERE l.post_id = p.id AND l.user_id = ?) AS is_liked,
EXISTS (SELECT 1 FROM post_dislikes d WHERE d.post_id = p.id AND d.user_id = ?) AS is_disliked
FROM community_posts p
INNER JOIN users u ON p.user_id = u.id`

func (s *SQL) List(ctx context.Context, viewerID uint64) ([]model.PostDetail, error) {
	rows, err := s.conn.QueryxContext(ctx, postDetailBase, viewerID, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PostDetail, 0)
	for rows.Next() {
		var it model.PostDetail
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, viewerID, id uint64) (*model.PostDetail, error) {
	var detail model.PostDetail
	err := s.conn.QueryRowxContext(ctx, postDetailBase+" WHERE p.id = ?", viewerID, viewerID, id).StructScan(&detail)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.PostEntity, error) {
	var entity model.PostEntity
	err := s.conn.QueryRowxContext(ctx,
		"SELECT id, user_id, title, body, likes, dislikes, created_at, updated_at FROM community_posts WHERE id = ?",
		id).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.PostEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO community_posts (user_id, title, body, created_at) VALUES (?, ?, ?, NOW())",
		data.UserID, data.Title, data.Body)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.PostPatch) (int64, error) {
	result, err := s.conn.ExecContext(ctx,
		"UPDATE community_posts SET title = COALESCE(?, title), body = COALESCE(?, body), updated_at = NOW() WHERE id = ?",
		patch.Title, patch.Body, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM community_posts WHERE id = ?", id)
	return err
}
