package review

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/browbeat/event-marketplace/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewReviewRepository(sqlx.NewDb(db, "mysql"))

	comment := "Lovely"
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reviews (user_id, vendor_id, rating, comment, event_type, event_date, created_at)")).
		WithArgs(uint64(1), uint64(2), 5, comment, nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	got, err := repo.Create(context.Background(), &model.Review{UserID: 1, VendorID: 2, Rating: 5, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List(t *testing.T) {
	columns := []string{"id", "user_id", "vendor_id", "rating", "comment", "event_type", "event_date", "created_at"}

	type args struct {
		filter *model.ReviewFilter
	}
	tests := []struct {
		name      string
		args      args
		wantQuery string
		wantArgs  []driver.Value
	}{
		{name: "by vendor", args: args{filter: &model.ReviewFilter{VendorID: 2}}, wantQuery: "WHERE 1 = 1 AND vendor_id = ? ORDER BY id", wantArgs: []driver.Value{uint64(2)}},
		{name: "user wins", args: args{filter: &model.ReviewFilter{UserID: 1, VendorID: 2}}, wantQuery: "WHERE 1 = 1 AND user_id = ? ORDER BY id", wantArgs: []driver.Value{uint64(1)}},
		{name: "no filter", args: args{filter: nil}, wantQuery: "WHERE 1 = 1 ORDER BY id"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			repo := NewReviewRepository(sqlx.NewDb(db, "mysql"))

			rows := sqlmock.NewRows(columns).AddRow(1, 1, 2, 5, "Great", nil, nil, time.Now())
			exp := mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery))
			if len(tt.wantArgs) > 0 {
				exp = exp.WithArgs(tt.wantArgs...)
			}
			exp.WillReturnRows(rows)

			got, err := repo.List(context.Background(), tt.args.filter)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "Great", *got[0].Comment)
			assert.Nil(t, got[0].EventType)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMemory_CreateAndList(t *testing.T) {
	repo := NewMemoryReviewRepository()
	ctx := context.Background()

	for _, r := range []model.Review{
		{UserID: 1, VendorID: 1, Rating: 5},
		{UserID: 2, VendorID: 1, Rating: 3},
		{UserID: 1, VendorID: 2, Rating: 4},
	} {
		r := r
		_, err := repo.Create(ctx, &r)
		require.NoError(t, err)
	}

	byVendor, err := repo.List(ctx, &model.ReviewFilter{VendorID: 1})
	require.NoError(t, err)
	assert.Len(t, byVendor, 2)
	assert.Equal(t, uint64(1), byVendor[0].ID)
	assert.Equal(t, uint64(2), byVendor[1].ID)

	byUser, err := repo.List(ctx, &model.ReviewFilter{UserID: 1, VendorID: 1})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
	assert.Equal(t, uint64(3), byUser[1].ID)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
