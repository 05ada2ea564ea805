package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "freshware/internal/delivery/context"
	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/domain/service"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessRequestService implements the AccessRequestUsecase interface.
type accessRequestService struct {
	txManager         repository.TransactionManager
	accessRequestRepo repository.AccessRequestRepository
	hasher            service.PasswordHasher
	logger            *slog.Logger
}

// AccessRequestServiceParams holds dependencies for accessRequestService, injected by Fx.
type AccessRequestServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	AccessRequestRepo repository.AccessRequestRepository
	Hasher            service.PasswordHasher
	Logger            *slog.Logger
}

// NewAccessRequestService is the constructor for accessRequestService.
func NewAccessRequestService(params AccessRequestServiceParams) usecase.AccessRequestUsecase {
	return &accessRequestService{
		txManager:         params.TxManager,
		accessRequestRepo: params.AccessRequestRepo,
		hasher:            params.Hasher,
		logger:            params.Logger,
	}
}

func (srv *accessRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitRequest records a visitor's application for portal access.
func (srv *accessRequestService) SubmitRequest(ctx context.Context, input usecase.SubmitAccessRequestInput) (*entity.AccessRequest, error) {
	if input.Email == "" || input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and name are required")
	}

	now := time.Now()
	request := &entity.AccessRequest{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		Company:   input.Company,
		Message:   input.Message,
		Status:    entity.AccessRequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.accessRequestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to submit access request")
	}

	srv.log(ctx).Info("Access request submitted", slog.String("email", input.Email))

	return request, nil
}

func (srv *accessRequestService) ListRequests(ctx context.Context, status *entity.AccessRequestStatus) ([]*entity.AccessRequest, error) {
	requests, err := srv.accessRequestRepo.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}

	return requests, nil
}

// ApproveRequest marks the request approved and creates the user in one
// transaction. A race between two reviewers rolls one of them back.
func (srv *accessRequestService) ApproveRequest(ctx context.Context, input usecase.ApproveAccessRequestInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}
	if input.Role == entity.RoleClient && input.AccountID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("client users need an account")
	}
	if input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("initial password is required")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	var createdUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.AccessRequestRepo()
		userRepo := repoFactory.UserRepo()

		request, err := requestRepo.FindByID(ctx, input.RequestID)
		if err != nil {
			if errors.Is(err, repository.ErrAccessRequestNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to load access request")
		}
		if request.Status != entity.AccessRequestPending {
			return domainerrors.ErrAccessRequestResolved
		}

		now := time.Now()
		user := &entity.User{
			ID:           uuid.New(),
			Email:        request.Email,
			Name:         request.Name,
			Role:         input.Role,
			PasswordHash: passwordHash,
			AccountID:    input.AccountID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user from access request")
		}

		request.Status = entity.AccessRequestApproved
		request.ReviewedBy = &input.ReviewerID
		request.UpdatedAt = now
		if err := requestRepo.Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to mark access request approved")
		}

		createdUser = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Access request approved",
		slog.Any("requestID", input.RequestID),
		slog.Any("userID", createdUser.ID),
		slog.String("role", input.Role.String()))

	return createdUser, nil
}

// DenyRequest marks the request denied. Resolved requests conflict.
func (srv *accessRequestService) DenyRequest(ctx context.Context, input usecase.DenyAccessRequestInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.AccessRequestRepo()

		request, err := requestRepo.FindByID(ctx, input.RequestID)
		if err != nil {
			if errors.Is(err, repository.ErrAccessRequestNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to load access request")
		}
		if request.Status != entity.AccessRequestPending {
			return domainerrors.ErrAccessRequestResolved
		}

		request.Status = entity.AccessRequestDenied
		request.ReviewedBy = &input.ReviewerID
		request.UpdatedAt = time.Now()

		return requestRepo.Update(ctx, request)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Access request denied", slog.Any("requestID", input.RequestID))

	return nil
}
