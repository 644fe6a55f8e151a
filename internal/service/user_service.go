package service

import (
	"context"

	"rangeiq/internal/domain"
	"rangeiq/internal/dto"
	"rangeiq/internal/logger"
	"rangeiq/internal/util"
	"rangeiq/internal/validation"

	"go.uber.org/zap"
)

const defaultPageLimit = 10

// UserService defines the interface for user-related operations.
type UserService interface {
	// CreateUser reports created=true only when the user did not exist before the call.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (user *dto.UserResponse, created bool, err error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	GetUserAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.UserAttemptsResponse, error)
}

type userServiceImpl struct {
	userRepo    domain.UserRepository
	attemptRepo domain.AttemptRepository
	clock       domain.Clock
	validator   *validation.Validator
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository, attemptRepo domain.AttemptRepository, clock domain.Clock) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		clock:       clock,
		validator:   validation.NewValidator(),
	}
}

// CreateUser is idempotent on the id. An empty id is replaced by a new ULID.
func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, bool, error) {
	if errs := s.validator.ValidateCreateUserRequest(req); len(errs) > 0 {
		return nil, false, errs
	}
	id := req.ID
	if id == "" {
		id = util.NewULID()
	}

	user, created, err := s.userRepo.CreateUserIfAbsent(ctx, domain.NewUser(id, s.clock.Now()))
	if err != nil {
		return nil, false, asDomainError(err, "failed to create user")
	}
	logger.Get().Debug("User ensured", zap.String("userID", user.ID), zap.Bool("created", created))

	resp := ToUserResponse(user)
	return &resp, created, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, asDomainError(err, "failed to get user")
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// GetUserAttempts returns the user's quiz history, newest first.
func (s *userServiceImpl) GetUserAttempts(ctx context.Context, userID string, pagination dto.Pagination) (*dto.UserAttemptsResponse, error) {
	if errs := s.validator.ValidatePagination(pagination.Limit, pagination.Page); len(errs) > 0 {
		return nil, errs
	}
	pagination = normalizePagination(pagination)

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, asDomainError(err, "failed to get user")
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(userID)
	}

	attempts, total, err := s.attemptRepo.GetQuizAttemptsByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, asDomainError(err, "failed to get quiz attempts")
	}

	items := make([]dto.QuizAttemptItem, 0, len(attempts))
	for _, a := range attempts {
		items = append(items, toQuizAttemptItem(a))
	}
	return &dto.UserAttemptsResponse{
		Attempts:       items,
		PaginationInfo: dto.NewPaginationInfo(pagination, total),
	}, nil
}

func normalizePagination(p dto.Pagination) dto.Pagination {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	p.Offset = (p.Page - 1) * p.Limit
	return p
}
