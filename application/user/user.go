package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/browbeat/event-marketplace/cmd/config"
	"github.com/browbeat/event-marketplace/constant"
	"github.com/browbeat/event-marketplace/model"
	redisrepo "github.com/browbeat/event-marketplace/repository/redis"
	txrepo "github.com/browbeat/event-marketplace/repository/tx"
	userrepo "github.com/browbeat/event-marketplace/repository/user"
	"github.com/browbeat/event-marketplace/thirdparty/rabbitmq"
	"github.com/browbeat/event-marketplace/utils/errors"
	"github.com/browbeat/event-marketplace/utils/logger"
	"github.com/browbeat/event-marketplace/utils/password"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	GetUser(ctx context.Context, id uint64) (*model.User, error)
	UpdateUser(ctx context.Context, id uint64, patch *model.UserPatch) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type UserAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	publisher rabbitmq.EventPublisher
	hasher    password.Hasher
}

func NewUserApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) UserApp {
	return &UserAppImpl{
		config:    config,
		txRepo:    txRepo,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		publisher: publisher,
		hasher:    password.New(config.Auth.PasswordHashing),
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	var created *model.User

	err := s.txRepo.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
		if err != nil {
			logger.Error("[Register] err userRepo.Get username", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return errors.SetCustomError(constant.ErrUsernameExists)
		}

		existing, err = s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
		if err != nil {
			logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if existing != nil {
			return errors.SetCustomError(constant.ErrEmailExists)
		}

		stored, err := s.hasher.Hash(req.Password)
		if err != nil {
			logger.Error("[Register] err hasher.Hash", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}

		created, err = s.userRepo.Create(ctx, &model.User{
			Username:     req.Username,
			Password:     stored,
			Email:        req.Email,
			FullName:     req.FullName,
			Phone:        req.Phone,
			ProfileImage: req.ProfileImage,
			IsVendor:     req.IsVendor,
		})
		if err != nil {
			if err == errors.ErrDuplicate {
				return errors.SetCustomError(constant.ErrDuplicateEntry)
			}
			logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
	if err != nil {
		return nil, s.txError("[Register]", err)
	}

	s.publish(ctx, constant.EventUserRegistered, created)
	return created, nil
}

func (s *UserAppImpl) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) UpdateUser(ctx context.Context, id uint64, patch *model.UserPatch) (*model.User, error) {
	var updated *model.User

	err := s.txRepo.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
		if err != nil {
			logger.Error("[UpdateUser] err userRepo.Get", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if current == nil {
			return errors.SetCustomError(constant.ErrUserNotFound)
		}

		if patch.Username != nil && !strings.EqualFold(*patch.Username, current.Username) {
			if err := s.ensureFree(ctx, &model.UserFilter{Username: *patch.Username}, id, constant.ErrUsernameExists); err != nil {
				return err
			}
		}
		if patch.Email != nil && !strings.EqualFold(*patch.Email, current.Email) {
			if err := s.ensureFree(ctx, &model.UserFilter{Email: *patch.Email}, id, constant.ErrEmailExists); err != nil {
				return err
			}
		}

		apply := *patch
		if patch.Password != nil {
			stored, err := s.hasher.Hash(*patch.Password)
			if err != nil {
				logger.Error("[UpdateUser] err hasher.Hash", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
			apply.Password = &stored
		}

		updated, err = s.userRepo.Update(ctx, id, &apply)
		if err != nil {
			if err == errors.ErrDuplicate {
				return errors.SetCustomError(constant.ErrDuplicateEntry)
			}
			logger.Error("[UpdateUser] err userRepo.Update", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if updated == nil {
			return errors.SetCustomError(constant.ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, s.txError("[UpdateUser]", err)
	}

	return updated, nil
}

// ensureFree fails with errType when another user already holds the value in filter.
func (s *UserAppImpl) ensureFree(ctx context.Context, filter *model.UserFilter, selfID uint64, errType constant.ErrorType) error {
	other, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.Get uniqueness", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if other != nil && other.ID != selfID {
		return errors.SetCustomError(errType)
	}
	return nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errors.SetCustomError(constant.ErrCredentialsRequired)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// same answer for unknown user and wrong password
	if user == nil || !s.hasher.Compare(user.Password, req.Password) {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, jti, expiresAt, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		User:      *user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	// the session key is what makes logout effective before expiry
	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, time.Time, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", time.Time{}, err
	}

	now := time.Now()
	expiresAt := now.Add(s.config.Auth.JWTExpiration)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, expiresAt, nil
}

func (s *UserAppImpl) txError(op string, err error) error {
	if ce, ok := errors.AsCustom(err); ok {
		return ce
	}
	logger.Error(op+" err txRepo.WithinTx", zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func (s *UserAppImpl) publish(ctx context.Context, eventType string, payload interface{}) {
	if err := s.publisher.PublishEvent(ctx, eventType, payload); err != nil {
		logger.Warn("err publisher.PublishEvent", zap.String("type", eventType), zap.String("error", err.Error()))
	}
}
