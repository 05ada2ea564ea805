package impl

import (
	"context"
	"log/slog"
	"testing"

	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccessRequestServiceForTest(requestRepo *mockAccessRequestRepo, userRepo *mockUserRepo) usecase.AccessRequestUsecase {
	return NewAccessRequestService(AccessRequestServiceParams{
		TxManager:         &mockTxManager{factory: &mockRepoFactory{userRepo: userRepo, accessRequestRepo: requestRepo}},
		AccessRequestRepo: requestRepo,
		Hasher: &mockHasher{
			hashFn: func(password string) (string, error) { return "hashed:" + password, nil },
		},
		Logger: slog.Default(),
	})
}

func pendingRequest() *entity.AccessRequest {
	return &entity.AccessRequest{
		ID:      uuid.New(),
		Email:   "applicant@example.com",
		Name:    "Applicant",
		Company: "Acme Co",
		Status:  entity.AccessRequestPending,
	}
}

func TestSubmitRequest_CreatesPending(t *testing.T) {
	var created *entity.AccessRequest
	requestRepo := &mockAccessRequestRepo{
		createFn: func(_ context.Context, request *entity.AccessRequest) error {
			created = request

			return nil
		},
	}

	svc := newAccessRequestServiceForTest(requestRepo, &mockUserRepo{})

	out, err := svc.SubmitRequest(context.Background(), usecase.SubmitAccessRequestInput{
		Email:   "applicant@example.com",
		Name:    "Applicant",
		Company: "Acme Co",
		Message: "We met at the conference",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.AccessRequestPending, created.Status)
	assert.Equal(t, out.ID, created.ID)
}

func TestSubmitRequest_RequiresEmailAndName(t *testing.T) {
	svc := newAccessRequestServiceForTest(&mockAccessRequestRepo{}, &mockUserRepo{})

	_, err := svc.SubmitRequest(context.Background(), usecase.SubmitAccessRequestInput{Name: "No Email"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestApproveRequest_CreatesUserAndMarksApproved(t *testing.T) {
	request := pendingRequest()
	reviewerID := uuid.New()

	var createdUser *entity.User
	var updatedRequest *entity.AccessRequest

	requestRepo := &mockAccessRequestRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.AccessRequest, error) {
			assert.Equal(t, request.ID, id)

			return request, nil
		},
		updateFn: func(_ context.Context, r *entity.AccessRequest) error {
			updatedRequest = r

			return nil
		},
	}
	userRepo := &mockUserRepo{
		createFn: func(_ context.Context, user *entity.User) error {
			createdUser = user

			return nil
		},
	}

	svc := newAccessRequestServiceForTest(requestRepo, userRepo)

	user, err := svc.ApproveRequest(context.Background(), usecase.ApproveAccessRequestInput{
		RequestID:  request.ID,
		ReviewerID: reviewerID,
		Role:       entity.RoleStaff,
		Password:   "initial-password",
	})
	require.NoError(t, err)

	require.NotNil(t, createdUser)
	assert.Equal(t, request.Email, createdUser.Email)
	assert.Equal(t, entity.RoleStaff, createdUser.Role)
	assert.Equal(t, "hashed:initial-password", createdUser.PasswordHash)
	assert.Equal(t, user.ID, createdUser.ID)

	require.NotNil(t, updatedRequest)
	assert.Equal(t, entity.AccessRequestApproved, updatedRequest.Status)
	require.NotNil(t, updatedRequest.ReviewedBy)
	assert.Equal(t, reviewerID, *updatedRequest.ReviewedBy)
}

func TestApproveRequest_ClientRoleNeedsAccount(t *testing.T) {
	svc := newAccessRequestServiceForTest(&mockAccessRequestRepo{}, &mockUserRepo{})

	_, err := svc.ApproveRequest(context.Background(), usecase.ApproveAccessRequestInput{
		RequestID:  uuid.New(),
		ReviewerID: uuid.New(),
		Role:       entity.RoleClient,
		Password:   "initial-password",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestApproveRequest_ResolvedRequestConflicts(t *testing.T) {
	request := pendingRequest()
	request.Status = entity.AccessRequestDenied

	requestRepo := &mockAccessRequestRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.AccessRequest, error) { return request, nil },
	}

	svc := newAccessRequestServiceForTest(requestRepo, &mockUserRepo{})

	_, err := svc.ApproveRequest(context.Background(), usecase.ApproveAccessRequestInput{
		RequestID:  request.ID,
		ReviewerID: uuid.New(),
		Role:       entity.RoleStaff,
		Password:   "initial-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccessRequestResolved)
}

func TestDenyRequest_MarksDenied(t *testing.T) {
	request := pendingRequest()
	reviewerID := uuid.New()

	var updatedRequest *entity.AccessRequest
	requestRepo := &mockAccessRequestRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.AccessRequest, error) { return request, nil },
		updateFn: func(_ context.Context, r *entity.AccessRequest) error {
			updatedRequest = r

			return nil
		},
	}

	svc := newAccessRequestServiceForTest(requestRepo, &mockUserRepo{})

	err := svc.DenyRequest(context.Background(), usecase.DenyAccessRequestInput{
		RequestID:  request.ID,
		ReviewerID: reviewerID,
	})
	require.NoError(t, err)
	require.NotNil(t, updatedRequest)
	assert.Equal(t, entity.AccessRequestDenied, updatedRequest.Status)
}
