package notification

import (
	"context"
	"database/sql"

	"github.com/globalremedies/backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type NotificationRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.NotificationEntity, error)
	Get(ctx context.Context, id uint64) (*model.NotificationEntity, error)
	Create(ctx context.Context, req *model.NotificationEntity) (uint64, error)
	MarkRead(ctx context.Context, id uint64) (int64, error)
	Delete(ctx context.Context, id uint64) error
}

func NewNotificationRepository(conn *sqlx.DB) NotificationRepository {
	return &SQL{conn: conn}
}

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.NotificationEntity, error) {
	rows, err := s.conn.QueryxContext(ctx,
		"SELECT id, user_id, message, is_read, created_at FROM notifications WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NotificationEntity, 0)
	for rows.Next() {
		var it model.NotificationEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.NotificationEntity, error) {
	var entity model.NotificationEntity
	err := s.conn.QueryRowxContext(ctx,
		"SELECT id, user_id, message, is_read, created_at FROM notifications WHERE id = ?", id).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.NotificationEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO notifications (user_id, message, is_read, created_at) VALUES (?, ?, ?, NOW())",
		data.UserID, data.Message, data.IsRead)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) MarkRead(ctx context.Context, id uint64) (int64, error) {
	result, err := s.conn.ExecContext(ctx, "UPDATE notifications SET is_read = ? WHERE id = ?", true, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM notifications WHERE id = ?", id)
	return err
}
