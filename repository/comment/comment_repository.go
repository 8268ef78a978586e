package comment

import (
	"context"
	"database/sql"

	"github.com/globalremedies/backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CommentRepository interface {
	Get(ctx context.Context, id uint64) (*model.CommentEntity, error)
	Create(ctx context.Context, req *model.CommentEntity) (uint64, error)
	Update(ctx context.Context, id, ownerID uint64, comment string) (int64, error)
	Delete(ctx context.Context, id uint64) error
}

func NewCommentRepository(conn *sqlx.DB) CommentRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.CommentEntity, error) {
	var entity model.CommentEntity
	err := s.conn.QueryRowxContext(ctx,
		"SELECT id, post_id, user_id, comment, likes, dislikes, created_at, updated_at FROM community_comments WHERE id = ?",
		id).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.CommentEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO community_comments (post_id, user_id, comment, created_at) VALUES (?, ?, ?, NOW())",
		data.PostID, data.UserID, data.Comment)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id, ownerID uint64, comment string) (int64, error) {
	result, err := s.conn.ExecContext(ctx,
		"UPDATE community_comments SET comment = ?, updated_at = NOW() WHERE id = ? AND user_id = ?",
		comment, id, ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM community_comments WHERE id = ?", id)
	return err
}
