package user

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

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetProfile(ctx context.Context, userID uint64) (*model.UserProfile, error)
	SetStatusByEmail(ctx context.Context, email, status string) error
	UpdateProfile(ctx context.Context, userID uint64, patch *model.ProfilePatch) (int64, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, userID uint64) error
	UpsertResetToken(ctx context.Context, email, token string) error
	GetResetToken(ctx context.Context, email, token string) (*model.ResetTokenEntity, error)
	DeleteResetToken(ctx context.Context, email string) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users
(first_name, last_name, email, username, password, mobile_number, social_login_type, profile_picture, country, user_type, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	getUserBase = `SELECT id, first_name, last_name, email, username, password, mobile_number, social_login_type, profile_picture, country, user_type, status, created_at, updated_at
FROM users WHERE true`

	getProfileQuery = `SELECT id, first_name, last_name, email, username, mobile_number, social_login_type, profile_picture, country, status, created_at, updated_at
FROM users WHERE id = ?`

	upsertResetTokenQuery = `INSERT INTO forget_password (email, token, created_at) VALUES (?, ?, NOW())
ON DUPLICATE KEY UPDATE token = ?, created_at = NOW()`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.FirstName, data.LastName, data.Email, data.Username, data.Password,
		data.MobileNumber, data.SocialLoginType, data.ProfilePicture, data.Country,
		data.UserType, data.Status)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetProfile(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := s.conn.QueryRowxContext(ctx, getProfileQuery, userID).StructScan(&profile); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (s *SQL) SetStatusByEmail(ctx context.Context, email, status string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE users SET status = ? WHERE email = ?", status, email)
	return err
}

// UpdateProfile builds the SET clause from the populated patch fields only,
// never from raw request keys.
func (s *SQL) UpdateProfile(ctx context.Context, userID uint64, patch *model.ProfilePatch) (int64, error) {
	fields := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if patch.FirstName != nil {
		fields = append(fields, "first_name = ?")
		args = append(args, *patch.FirstName)
	}
	if patch.LastName != nil {
		fields = append(fields, "last_name = ?")
		args = append(args, *patch.LastName)
	}
	if patch.MobileNumber != nil {
		fields = append(fields, "mobile_number = ?")
		args = append(args, *patch.MobileNumber)
	}
	if patch.ProfilePicture != nil {
		fields = append(fields, "profile_picture = ?")
		args = append(args, *patch.ProfilePicture)
	}
	if patch.Country != nil {
		fields = append(fields, "country = ?")
		args = append(args, *patch.Country)
	}

	query := "UPDATE users SET " + strings.Join(fields, ", ") + ", updated_at = NOW() WHERE id = ?"
	args = append(args, userID)

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE users SET password = ? WHERE email = ?", passwordHash, email)
	return err
}

func (s *SQL) Delete(ctx context.Context, userID uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM users WHERE id = ?", userID)
	return err
}

func (s *SQL) UpsertResetToken(ctx context.Context, email, token string) error {
	_, err := s.conn.ExecContext(ctx, upsertResetTokenQuery, email, token, token)
	return err
}

func (s *SQL) GetResetToken(ctx context.Context, email, token string) (*model.ResetTokenEntity, error) {
	var entity model.ResetTokenEntity
	err := s.conn.QueryRowxContext(ctx,
		"SELECT email, token, created_at FROM forget_password WHERE email = ? AND token = ?",
		email, token).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) DeleteResetToken(ctx context.Context, email string) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM forget_password WHERE email = ?", email)
	return err
}
