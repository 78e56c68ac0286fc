package review

import (
	"context"
	"time"

	"github.com/browbeat/event-marketplace/model"
	"github.com/browbeat/event-marketplace/repository/dialect"
	"github.com/browbeat/event-marketplace/repository/tx"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

// ReviewRepository is append-only: reviews are never edited or removed.
type ReviewRepository interface {
	Create(ctx context.Context, req *model.Review) (*model.Review, error)
	List(ctx context.Context, filter *model.ReviewFilter) ([]model.Review, error)
}

func NewReviewRepository(conn *sqlx.DB) ReviewRepository {
	return &SQL{conn: conn}
}

const (
	insertReviewQuery = `INSERT INTO reviews (user_id, vendor_id, rating, comment, event_type, event_date, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	getReviewBase     = `SELECT id, user_id, vendor_id, rating, comment, event_type, event_date, created_at FROM reviews WHERE 1 = 1`
)

func (s *SQL) Create(ctx context.Context, data *model.Review) (*model.Review, error) {
	data.CreatedAt = time.Now().UTC().Truncate(time.Second)

	id, err := dialect.Insert(ctx, tx.Conn(ctx, s.conn), insertReviewQuery,
		data.UserID, data.VendorID, data.Rating, data.Comment, data.EventType, data.EventDate, data.CreatedAt)
	if err != nil {
		return nil, err
	}

	data.ID = id
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter *model.ReviewFilter) ([]model.Review, error) {
	query := getReviewBase
	args := make([]any, 0, 1)

	if filter != nil {
		switch {
		case filter.UserID != 0:
			query += " AND user_id = ?"
			args = append(args, filter.UserID)
		case filter.VendorID != 0:
			query += " AND vendor_id = ?"
			args = append(args, filter.VendorID)
		}
	}
	query += " ORDER BY id"

	conn := tx.Conn(ctx, s.conn)
	items := make([]model.Review, 0)
	if err := conn.SelectContext(ctx, &items, conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}
