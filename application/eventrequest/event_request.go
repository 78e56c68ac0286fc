package eventrequest

import (
	"context"
	"time"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
	eventrequestrepo "github.com/browbeat/event-marketplace/repository/eventrequest"
	txrepo "github.com/browbeat/event-marketplace/repository/tx"
	userrepo "github.com/browbeat/event-marketplace/repository/user"
	vendorrepo "github.com/browbeat/event-marketplace/repository/vendor"
	"github.com/browbeat/event-marketplace/thirdparty/rabbitmq"
	"github.com/browbeat/event-marketplace/utils/errors"
	"github.com/browbeat/event-marketplace/utils/logger"
	"go.uber.org/zap"
)

type EventRequestApp interface {
	ListEventRequests(ctx context.Context, filter *model.EventRequestFilter) ([]model.EventRequest, error)
	GetEventRequest(ctx context.Context, id uint64) (*model.EventRequest, error)
	CreateEventRequest(ctx context.Context, req *model.CreateEventRequestRequest) (*model.EventRequest, error)
	UpdateEventRequest(ctx context.Context, id uint64, patch *model.EventRequestPatch) (*model.EventRequest, error)
	CompleteEventRequest(ctx context.Context, id uint64) (*model.EventRequest, error)
}

type eventRequestAppImpl struct {
	txRepo           txrepo.TxRepository
	eventRequestRepo eventrequestrepo.EventRequestRepository
	userRepo         userrepo.UserRepository
	vendorRepo       vendorrepo.VendorRepository
	publisher        rabbitmq.EventPublisher
}

func NewEventRequestApp(txRepo txrepo.TxRepository, eventRequestRepo eventrequestrepo.EventRequestRepository, userRepo userrepo.UserRepository, vendorRepo vendorrepo.VendorRepository, publisher rabbitmq.EventPublisher) EventRequestApp {
	return &eventRequestAppImpl{
		txRepo:           txRepo,
		eventRequestRepo: eventRequestRepo,
		userRepo:         userRepo,
		vendorRepo:       vendorRepo,
		publisher:        publisher,
	}
}

func (s *eventRequestAppImpl) ListEventRequests(ctx context.Context, filter *model.EventRequestFilter) ([]model.EventRequest, error) {
	items, err := s.eventRequestRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListEventRequests] err eventRequestRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *eventRequestAppImpl) GetEventRequest(ctx context.Context, id uint64) (*model.EventRequest, error) {
	item, err := s.eventRequestRepo.Get(ctx, id)
	if err != nil {
		logger.Error("[GetEventRequest] err eventRequestRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrEventRequestNotFound)
	}
	return item, nil
}

func (s *eventRequestAppImpl) CreateEventRequest(ctx context.Context, req *model.CreateEventRequestRequest) (*model.EventRequest, error) {
	var created *model.EventRequest

	err := s.txRepo.WithinTx(ctx, func(ctx context.Context) error {
		client, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.UserID})
		if err != nil {
			logger.Error("[CreateEventRequest] err userRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if client == nil {
			return errors.SetCustomError(constant.ErrUserReferenceNotFound)
		}

		vendor, err := s.vendorRepo.Get(ctx, req.VendorID)
		if err != nil {
			logger.Error("[CreateEventRequest] err vendorRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if vendor == nil {
			return errors.SetCustomError(constant.ErrVendorReferenceNotFound)
		}

		created, err = s.eventRequestRepo.Create(ctx, &model.EventRequest{
			UserID:            req.UserID,
			VendorID:          req.VendorID,
			EventType:         req.EventType,
			EventDate:         req.EventDate,
			GuestCount:        req.GuestCount,
			StartTime:         req.StartTime,
			Duration:          req.Duration,
			Budget:            req.Budget,
			AdditionalDetails: req.AdditionalDetails,
			Status:            constant.EventRequestStatusPending,
		})
		if err != nil {
			logger.Error("[CreateEventRequest] err eventRequestRepo.Create", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	if err != nil {
		return nil, txError("[CreateEventRequest]", err)
	}

	if err := s.publisher.PublishEvent(ctx, constant.EventRequestCreated, created); err != nil {
		logger.Warn("[CreateEventRequest] err publisher.PublishEvent", zap.String("error", err.Error()))
	}
	return created, nil
}

// UpdateEventRequest applies the patch. Any status change is announced, and
// an accepted request is scheduled for completion when the event ends.
func (s *eventRequestAppImpl) UpdateEventRequest(ctx context.Context, id uint64, patch *model.EventRequestPatch) (*model.EventRequest, error) {
	var (
		updated  *model.EventRequest
		previous constant.EventRequestStatus
	)

	err := s.txRepo.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.eventRequestRepo.Get(ctx, id)
		if err != nil {
			logger.Error("[UpdateEventRequest] err eventRequestRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if current == nil {
			return errors.SetCustomError(constant.ErrEventRequestNotFound)
		}
		previous = current.Status

		updated, err = s.eventRequestRepo.Update(ctx, id, patch)
		if err != nil {
			logger.Error("[UpdateEventRequest] err eventRequestRepo.Update", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if updated == nil {
			return errors.SetCustomError(constant.ErrEventRequestNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, txError("[UpdateEventRequest]", err)
	}

	if updated.Status != previous {
		s.announceStatus(ctx, updated, previous)
	}
	return updated, nil
}

// CompleteEventRequest moves an accepted request to completed. Requests in
// any other state are returned unchanged so redelivered messages are harmless.
func (s *eventRequestAppImpl) CompleteEventRequest(ctx context.Context, id uint64) (*model.EventRequest, error) {
	var (
		result    *model.EventRequest
		completed bool
	)

	err := s.txRepo.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.eventRequestRepo.Get(ctx, id)
		if err != nil {
			logger.Error("[CompleteEventRequest] err eventRequestRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if current == nil {
			return errors.SetCustomError(constant.ErrEventRequestNotFound)
		}
		if current.Status != constant.EventRequestStatusAccepted {
			result = current
			return nil
		}

		status := constant.EventRequestStatusCompleted
		result, err = s.eventRequestRepo.Update(ctx, id, &model.EventRequestPatch{Status: &status})
		if err != nil {
			logger.Error("[CompleteEventRequest] err eventRequestRepo.Update", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if result == nil {
			return errors.SetCustomError(constant.ErrEventRequestNotFound)
		}
		completed = true
		return nil
	})
	if err != nil {
		return nil, txError("[CompleteEventRequest]", err)
	}

	if completed {
		s.announceStatus(ctx, result, constant.EventRequestStatusAccepted)
	}
	return result, nil
}

func (s *eventRequestAppImpl) announceStatus(ctx context.Context, req *model.EventRequest, previous constant.EventRequestStatus) {
	change := model.RequestStatusChange{Request: req, PreviousStatus: string(previous)}
	if err := s.publisher.PublishEvent(ctx, constant.EventRequestStatusChanged, change); err != nil {
		logger.Warn("[announceStatus] err publisher.PublishEvent", zap.Uint64("id", req.ID), zap.String("error", err.Error()))
	}

	if req.Status != constant.EventRequestStatusAccepted {
		return
	}

	endsAt, err := req.EndsAt(time.UTC)
	if err != nil {
		logger.Warn("[announceStatus] err EndsAt", zap.Uint64("id", req.ID), zap.String("error", err.Error()))
		return
	}
	err = s.publisher.PublishCompletion(ctx, rabbitmq.CompletionMessage{
		EventRequestID: req.ID,
		VendorID:       req.VendorID,
		EndsAt:         endsAt,
	})
	if err != nil {
		logger.Warn("[announceStatus] err publisher.PublishCompletion", zap.Uint64("id", req.ID), zap.String("error", err.Error()))
	}
}

func txError(op string, err error) error {
	if ce, ok := errors.AsCustom(err); ok {
		return ce
	}
	logger.Error(op+" err txRepo.WithinTx", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}
