package ailog

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

type AILogRepository interface {
	List(ctx context.Context, filter *model.AILogFilter) ([]model.AIFilterLogEntity, error)
	Get(ctx context.Context, id uint64) (*model.AIFilterLogEntity, error)
	Create(ctx context.Context, req *model.AIFilterLogEntity) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.AILogPatch) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

func NewAILogRepository(conn *sqlx.DB) AILogRepository {
	return &SQL{conn: conn}
}

// List builds the WHERE clause from allow-listed filter fields only.
func (s *SQL) List(ctx context.Context, filter *model.AILogFilter) ([]model.AIFilterLogEntity, error) {
	query := "SELECT id, content_type, content_id, flagged_for FROM ai_filter_logs WHERE true"
	args := make([]any, 0, 4)

	if filter.ContentType != "" {
		query += " AND content_type = ?"
		args = append(args, filter.ContentType)
	}
	if filter.FlaggedFor != "" {
		query += " AND flagged_for LIKE ?"
		args = append(args, "%"+filter.FlaggedFor+"%")
	}

	offset := (filter.Page - 1) * filter.Limit
	query += " LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, offset)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AIFilterLogEntity, 0)
	for rows.Next() {
		var it model.AIFilterLogEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.AIFilterLogEntity, error) {
	var entity model.AIFilterLogEntity
	err := s.conn.QueryRowxContext(ctx,
		"SELECT id, content_type, content_id, flagged_for FROM ai_filter_logs WHERE id = ?", id).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.AIFilterLogEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO ai_filter_logs (content_type, content_id, flagged_for) VALUES (?, ?, ?)",
		data.ContentType, data.ContentID, data.FlaggedFor)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.AILogPatch) (int64, error) {
	fields := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if patch.ContentType != nil {
		fields = append(fields, "content_type = ?")
		args = append(args, *patch.ContentType)
	}
	if patch.ContentID != nil {
		fields = append(fields, "content_id = ?")
		args = append(args, *patch.ContentID)
	}
	if patch.FlaggedFor != nil {
		fields = append(fields, "flagged_for = ?")
		args = append(args, *patch.FlaggedFor)
	}

	query := "UPDATE ai_filter_logs SET " + strings.Join(fields, ", ") + " WHERE id = ?"
	args = append(args, id)

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id uint64) (int64, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM ai_filter_logs WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
