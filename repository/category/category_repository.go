package category

import (
	"context"
	"database/sql"

	"github.com/globalremedies/backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	List(ctx context.Context) ([]model.CategoryEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	Create(ctx context.Context, req *model.CategoryEntity) (uint64, error)
	Update(ctx context.Context, id uint64, patch *model.CategoryPatch) error
	Delete(ctx context.Context, id uint64) error
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const updateCategoryQuery = `UPDATE categories SET
name = COALESCE(?, name),
description = COALESCE(?, description),
img = COALESCE(?, img)
WHERE id = ?`

func (s *SQL) List(ctx context.Context) ([]model.CategoryEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT id, name, description, img FROM categories")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CategoryEntity, 0)
	for rows.Next() {
		var it model.CategoryEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	var entity model.CategoryEntity
	err := s.conn.QueryRowxContext(ctx, "SELECT id, name, description, img FROM categories WHERE id = ?", id).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.CategoryEntity) (uint64, error) {
	result, err := s.conn.ExecContext(ctx,
		"INSERT INTO categories (name, description, img) VALUES (?, ?, ?)",
		data.Name, data.Description, data.Img)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.CategoryPatch) error {
	_, err := s.conn.ExecContext(ctx, updateCategoryQuery, patch.Name, patch.Description, patch.Img, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	return err
}
