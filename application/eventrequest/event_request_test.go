package eventrequest_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	appeventrequest "github.com/browbeat/event-marketplace/application/eventrequest"
	"github.com/browbeat/event-marketplace/constant"
	eventrequestmocks "github.com/browbeat/event-marketplace/mocks/repository/eventrequest"
	txmocks "github.com/browbeat/event-marketplace/mocks/repository/tx"
	usermocks "github.com/browbeat/event-marketplace/mocks/repository/user"
	vendormocks "github.com/browbeat/event-marketplace/mocks/repository/vendor"
	publishermocks "github.com/browbeat/event-marketplace/mocks/thirdparty/rabbitmq"
	"github.com/browbeat/event-marketplace/model"
	"github.com/browbeat/event-marketplace/thirdparty/rabbitmq"
	cerr "github.com/browbeat/event-marketplace/utils/errors"
	"github.com/browbeat/event-marketplace/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

type fields struct {
	txRepo           *txmocks.TxRepository
	eventRequestRepo *eventrequestmocks.EventRequestRepository
	userRepo         *usermocks.UserRepository
	vendorRepo       *vendormocks.VendorRepository
	publisher        *publishermocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:           txmocks.NewTxRepository(t),
		eventRequestRepo: eventrequestmocks.NewEventRequestRepository(t),
		userRepo:         usermocks.NewUserRepository(t),
		vendorRepo:       vendormocks.NewVendorRepository(t),
		publisher:        publishermocks.NewEventPublisher(t),
	}
}

func (f fields) app() appeventrequest.EventRequestApp {
	return appeventrequest.NewEventRequestApp(f.txRepo, f.eventRequestRepo, f.userRepo, f.vendorRepo, f.publisher)
}

func runTx(txRepo *txmocks.TxRepository) {
	txRepo.On("WithinTx", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		Once()
}

func sampleRequest(status constant.EventRequestStatus) *model.EventRequest {
	budget := 10000
	return &model.EventRequest{
		ID:         1,
		UserID:     1,
		VendorID:   2,
		EventType:  "Wedding",
		EventDate:  "2024-12-15",
		GuestCount: 100,
		StartTime:  "17:00",
		Duration:   5,
		Budget:     &budget,
		Status:     status,
	}
}

func TestEventRequestApp_CreateEventRequest(t *testing.T) {
	req := &model.CreateEventRequestRequest{
		UserID:     1,
		VendorID:   2,
		EventType:  "Wedding",
		EventDate:  "2024-12-15",
		GuestCount: 100,
		StartTime:  "17:00",
		Duration:   5,
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: created pending",
			mockCall: func(f fields) {
				runTx(f.txRepo)
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(&model.User{ID: 1}, nil).Once()
				f.vendorRepo.On("Get", mock.Anything, uint64(2)).Return(&model.Vendor{ID: 2}, nil).Once()
				f.eventRequestRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(e *model.EventRequest) bool {
						return e.Status == constant.EventRequestStatusPending && e.GuestCount == 100
					})).
					Return(sampleRequest(constant.EventRequestStatusPending), nil).
					Once()
				f.publisher.On("PublishEvent", mock.Anything, constant.EventRequestCreated, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "error: unknown client",
			mockCall: func(f fields) {
				runTx(f.txRepo)
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 1}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUserReferenceNotFound,
		},
		{
			name: "error: unknown vendor",
			mockCall: func(f fields) {
				runTx(f.txRepo)
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.User{ID: 1}, nil).Once()
				f.vendorRepo.On("Get", mock.Anything, uint64(2)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVendorReferenceNotFound,
		},
		{
			name: "error: Create returns error",
			mockCall: func(f fields) {
				runTx(f.txRepo)
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.User{ID: 1}, nil).Once()
				f.vendorRepo.On("Get", mock.Anything, uint64(2)).Return(&model.Vendor{ID: 2}, nil).Once()
				f.eventRequestRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().CreateEventRequest(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, constant.EventRequestStatusPending, got.Status)
		})
	}
}

func TestEventRequestApp_UpdateEventRequest(t *testing.T) {
	accepted := constant.EventRequestStatusAccepted
	declined := constant.EventRequestStatusDeclined
	guests := 120

	tests := []struct {
		name       string
		patch      *model.EventRequestPatch
		mockCall   func(f fields)
		wantStatus constant.EventRequestStatus
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:  "success: accepting schedules completion",
			patch: &model.EventRequestPatch{Status: &accepted},
			mockCall: func(f fields) {
				runTx(f.txRepo)
				f.eventRequestRepo.On("Get", mock.Anything, uint64(1)).Return(sampleRequest(constant.EventRequestStatusPending), nil).Once()
				f.eventRequestRepo.On("Update", mock.Anything, uint64(1), mock.Anything).Return(sampleRequest(constant.EventRequestStatusAccepted), nil).Once()
				f.publisher.
					On("PublishEvent", mock.Anything, constant.EventRequestStatusChanged, mock.MatchedBy(func(c model.RequestStatusChange) bool {
						return c.PreviousStatus == "pending" && c.Request.Status == constant.EventRequestStatusAccepted
					})).
					Return(nil).
					Once()
				f.publisher.
					On("PublishCompletion", mock.Anything, rabbitmq.CompletionMessage{
						EventRequestID: 1,
						VendorID:       2,
						EndsAt:         time.Date(2024, 12, 15, 22, 0, 0, 0, time.UTC),
					}).
					Return(nil).
					Once()
			},
			wantStatus: constant.EventRequestStatusAccepted,
		},
		{
			name:  "success: declining only announces the change",
			patch: &model.EventRequestPatch{Status: &declined},
			mockCall: func(f fields) {
				runTx(f.txRepo)
				f.eventRequestRepo.On("Get", mock.Anything, uint64(1)).Return(sampleRequest(constant.EventRequestStatusPending), nil).Once()
				f.eventRequestRepo.On("Update", mock.Anything, uint64(1), mock.Anything).Return(sampleRequest(constant.EventRequestStatusDeclined), nil).Once()
				f.publisher.On("PublishEvent", mock.Anything, constant.EventRequestStatusChanged, mock.Anything).Return(nil).Once()
			},
			wantStatus: constant.EventRequestStatusDeclined,
		},
		{
			name:  "success: field change without status publishes nothing",
			patch: &model.EventRequestPatch{GuestCount: &guests},
			mockCall: func(f fields) {
				runTx(f.txRepo)
				f.eventRequestRepo.On("Get", mock.Anything, uint64(1)).Return(sampleRequest(constant.EventRequestStatusPending), nil).Once()
				updated := sampleRequest(constant.EventRequestStatusPending)
				updated.GuestCount = guests
				f.eventRequestRepo.On("Update", mock.Anything, uint64(1), mock.Anything).Return(updated, nil).Once()
			},
			wantStatus: constant.EventRequestStatusPending,
		},
		{
			name:  "error: not found",
			patch: &model.EventRequestPatch{Status: &accepted},
			mockCall: func(f fields) {
				runTx(f.txRepo)
				f.eventRequestRepo.On("Get", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrEventRequestNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().UpdateEventRequest(context.Background(), 1, tt.patch)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestEventRequestApp_CompleteEventRequest(t *testing.T) {
	tests := []struct {
		name       string
		current    *model.EventRequest
		mockCall   func(f fields)
		wantStatus constant.EventRequestStatus
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:    "success: accepted becomes completed",
			current: sampleRequest(constant.EventRequestStatusAccepted),
			mockCall: func(f fields) {
				f.eventRequestRepo.
					On("Update", mock.Anything, uint64(1), mock.MatchedBy(func(p *model.EventRequestPatch) bool {
						return p.Status != nil && *p.Status == constant.EventRequestStatusCompleted
					})).
					Return(sampleRequest(constant.EventRequestStatusCompleted), nil).
					Once()
				f.publisher.On("PublishEvent", mock.Anything, constant.EventRequestStatusChanged, mock.Anything).Return(nil).Once()
			},
			wantStatus: constant.EventRequestStatusCompleted,
		},
		{
			name:       "success: declined is left alone",
			current:    sampleRequest(constant.EventRequestStatusDeclined),
			wantStatus: constant.EventRequestStatusDeclined,
		},
		{
			name:       "success: already completed is idempotent",
			current:    sampleRequest(constant.EventRequestStatusCompleted),
			wantStatus: constant.EventRequestStatusCompleted,
		},
		{
			name:    "error: not found",
			current: nil,
			wantErr: true,
			errCode: constant.ErrEventRequestNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			runTx(f.txRepo)
			f.eventRequestRepo.On("Get", mock.Anything, uint64(1)).Return(tt.current, nil).Once()
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().CompleteEventRequest(context.Background(), 1)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestEventRequestApp_ListAndGet(t *testing.T) {
	f := newFields(t)
	f.eventRequestRepo.On("List", mock.Anything, &model.EventRequestFilter{VendorID: 2}).Return([]model.EventRequest{*sampleRequest(constant.EventRequestStatusPending)}, nil).Once()
	f.eventRequestRepo.On("Get", mock.Anything, uint64(5)).Return(nil, nil).Once()
	f.eventRequestRepo.On("Get", mock.Anything, uint64(6)).Return(nil, errors.New("db error")).Once()

	app := f.app()
	items, err := app.ListEventRequests(context.Background(), &model.EventRequestFilter{VendorID: 2})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = app.GetEventRequest(context.Background(), 5)
	assert.True(t, cerr.Is(err, constant.ErrEventRequestNotFound))

	_, err = app.GetEventRequest(context.Background(), 6)
	assert.True(t, cerr.Is(err, constant.ErrInternal))
}
