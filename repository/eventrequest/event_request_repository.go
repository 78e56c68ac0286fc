package eventrequest

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
	"github.com/browbeat/event-marketplace/repository/dialect"
	"github.com/browbeat/event-marketplace/repository/tx"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type EventRequestRepository interface {
	Create(ctx context.Context, req *model.EventRequest) (*model.EventRequest, error)
	Get(ctx context.Context, id uint64) (*model.EventRequest, error)
	List(ctx context.Context, filter *model.EventRequestFilter) ([]model.EventRequest, error)
	Update(ctx context.Context, id uint64, patch *model.EventRequestPatch) (*model.EventRequest, error)
}

func NewEventRequestRepository(conn *sqlx.DB) EventRequestRepository {
	return &SQL{conn: conn}
}

const (
	insertEventRequestQuery = `INSERT INTO event_requests (user_id, vendor_id, event_type, event_date, guest_count, start_time, duration, budget, additional_details, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getEventRequestBase     = `SELECT id, user_id, vendor_id, event_type, event_date, guest_count, start_time, duration, budget, additional_details, status, created_at FROM event_requests WHERE 1 = 1`
)

func (s *SQL) Create(ctx context.Context, data *model.EventRequest) (*model.EventRequest, error) {
	data.CreatedAt = time.Now().UTC().Truncate(time.Second)
	data.Status = constant.EventRequestStatusPending

	id, err := dialect.Insert(ctx, tx.Conn(ctx, s.conn), insertEventRequestQuery,
		data.UserID, data.VendorID, data.EventType, data.EventDate, data.GuestCount, data.StartTime,
		data.Duration, data.Budget, data.AdditionalDetails, data.Status, data.CreatedAt)
	if err != nil {
		return nil, err
	}

	data.ID = id
	return data, nil
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.EventRequest, error) {
	conn := tx.Conn(ctx, s.conn)
	var entity model.EventRequest
	if err := conn.QueryRowxContext(ctx, conn.Rebind(getEventRequestBase+" AND id = ?"), id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.EventRequestFilter) ([]model.EventRequest, error) {
	query := getEventRequestBase
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
	rows, err := conn.QueryxContext(ctx, conn.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.EventRequest, 0)
	for rows.Next() {
		var it model.EventRequest
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Update(ctx context.Context, id uint64, patch *model.EventRequestPatch) (*model.EventRequest, error) {
	existing, err := s.Get(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}
	if patch.EventType != nil {
		add("event_type", *patch.EventType)
	}
	if patch.EventDate != nil {
		add("event_date", *patch.EventDate)
	}
	if patch.GuestCount != nil {
		add("guest_count", *patch.GuestCount)
	}
	if patch.StartTime != nil {
		add("start_time", *patch.StartTime)
	}
	if patch.Duration != nil {
		add("duration", *patch.Duration)
	}
	if patch.Budget != nil {
		add("budget", *patch.Budget)
	}
	if patch.AdditionalDetails != nil {
		add("additional_details", *patch.AdditionalDetails)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if len(sets) == 0 {
		return existing, nil
	}
	args = append(args, id)

	conn := tx.Conn(ctx, s.conn)
	query := "UPDATE event_requests SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := conn.ExecContext(ctx, conn.Rebind(query), args...); err != nil {
		return nil, err
	}

	patch.Apply(existing)
	return existing, nil
}
