package review

import (
	"context"

	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
	reviewrepo "github.com/browbeat/event-marketplace/repository/review"
	txrepo "github.com/browbeat/event-marketplace/repository/tx"
	userrepo "github.com/browbeat/event-marketplace/repository/user"
	vendorrepo "github.com/browbeat/event-marketplace/repository/vendor"
	"github.com/browbeat/event-marketplace/thirdparty/rabbitmq"
	"github.com/browbeat/event-marketplace/utils/errors"
	"github.com/browbeat/event-marketplace/utils/logger"
	"go.uber.org/zap"
)

type ReviewApp interface {
	ListReviews(ctx context.Context, filter *model.ReviewFilter) ([]model.Review, error)
	CreateReview(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error)
}

type reviewAppImpl struct {
	txRepo     txrepo.TxRepository
	reviewRepo reviewrepo.ReviewRepository
	userRepo   userrepo.UserRepository
	vendorRepo vendorrepo.VendorRepository
	publisher  rabbitmq.EventPublisher
}

func NewReviewApp(txRepo txrepo.TxRepository, reviewRepo reviewrepo.ReviewRepository, userRepo userrepo.UserRepository, vendorRepo vendorrepo.VendorRepository, publisher rabbitmq.EventPublisher) ReviewApp {
	return &reviewAppImpl{
		txRepo:     txRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		publisher:  publisher,
	}
}

func (s *reviewAppImpl) ListReviews(ctx context.Context, filter *model.ReviewFilter) ([]model.Review, error) {
	items, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListReviews] err reviewRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// CreateReview stores the review and folds its rating into the vendor's
// aggregate in one unit of work.
func (s *reviewAppImpl) CreateReview(ctx context.Context, req *model.CreateReviewRequest) (*model.Review, error) {
	var created *model.Review

	err := s.txRepo.WithinTx(ctx, func(ctx context.Context) error {
		author, err := s.userRepo.Get(ctx, &model.UserFilter{ID: req.UserID})
		if err != nil {
			logger.Error("[CreateReview] err userRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if author == nil {
			return errors.SetCustomError(constant.ErrUserReferenceNotFound)
		}

		vendor, err := s.vendorRepo.Get(ctx, req.VendorID)
		if err != nil {
			logger.Error("[CreateReview] err vendorRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if vendor == nil {
			return errors.SetCustomError(constant.ErrVendorReferenceNotFound)
		}

		created, err = s.reviewRepo.Create(ctx, &model.Review{
			UserID:    req.UserID,
			VendorID:  req.VendorID,
			Rating:    req.Rating,
			Comment:   req.Comment,
			EventType: req.EventType,
			EventDate: req.EventDate,
		})
		if err != nil {
			logger.Error("[CreateReview] err reviewRepo.Create", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}

		if _, err := s.vendorRepo.ApplyRating(ctx, req.VendorID, req.Rating); err != nil {
			logger.Error("[CreateReview] err vendorRepo.ApplyRating", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	if err != nil {
		if ce, ok := errors.AsCustom(err); ok {
			return nil, ce
		}
		logger.Error("[CreateReview] err txRepo.WithinTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.publisher.PublishEvent(ctx, constant.EventReviewCreated, created); err != nil {
		logger.Warn("[CreateReview] err publisher.PublishEvent", zap.String("error", err.Error()))
	}
	return created, nil
}
