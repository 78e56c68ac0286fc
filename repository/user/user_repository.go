package user

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/browbeat/event-marketplace/model"
	"github.com/browbeat/event-marketplace/repository/dialect"
	"github.com/browbeat/event-marketplace/repository/tx"
	cerr "github.com/browbeat/event-marketplace/utils/errors"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.User) (*model.User, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.User, error)
	Update(ctx context.Context, id uint64, patch *model.UserPatch) (*model.User, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (username, password, email, full_name, phone, profile_image, is_vendor, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	getUserBase     = `SELECT id, username, password, email, full_name, phone, profile_image, is_vendor, created_at FROM users WHERE 1 = 1`
)

func (s *SQL) Create(ctx context.Context, data *model.User) (*model.User, error) {
	data.CreatedAt = time.Now().UTC().Truncate(time.Second)

	id, err := dialect.Insert(ctx, tx.Conn(ctx, s.conn), insertUserQuery,
		data.Username, data.Password, data.Email, data.FullName, data.Phone, data.ProfileImage, data.IsVendor, data.CreatedAt)
	if err != nil {
		if dialect.IsDuplicate(err) {
			return nil, cerr.ErrDuplicate
		}
		return nil, err
	}

	data.ID = id
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.User, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		query += " AND LOWER(username) = LOWER(?)"
		args = append(args, filter.Username)
	}
	if filter.Email != "" {
		query += " AND LOWER(email) = LOWER(?)"
		args = append(args, filter.Email)
	}
	query += " ORDER BY id LIMIT 1"

	conn := tx.Conn(ctx, s.conn)
	var entity model.User
	if err := conn.QueryRowxContext(ctx, conn.Rebind(query), args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.UserPatch) (*model.User, error) {
	existing, err := s.Get(ctx, &model.UserFilter{ID: id})
	if err != nil || existing == nil {
		return nil, err
	}

	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)
	if patch.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *patch.Username)
	}
	if patch.Password != nil {
		sets = append(sets, "password = ?")
		args = append(args, *patch.Password)
	}
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.FullName != nil {
		sets = append(sets, "full_name = ?")
		args = append(args, *patch.FullName)
	}
	if patch.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *patch.Phone)
	}
	if patch.ProfileImage != nil {
		sets = append(sets, "profile_image = ?")
		args = append(args, *patch.ProfileImage)
	}
	if patch.IsVendor != nil {
		sets = append(sets, "is_vendor = ?")
		args = append(args, *patch.IsVendor)
	}
	if len(sets) == 0 {
		return existing, nil
	}
	args = append(args, id)

	conn := tx.Conn(ctx, s.conn)
	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := conn.ExecContext(ctx, conn.Rebind(query), args...); err != nil {
		if dialect.IsDuplicate(err) {
			return nil, cerr.ErrDuplicate
		}
		return nil, err
	}

	patch.Apply(existing)
	return existing, nil
}
