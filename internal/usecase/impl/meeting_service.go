package impl

import (
	"context"
	"log/slog"
	"time"

	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// meetingService implements the MeetingUsecase interface for manually
// entered meetings. Provider-sourced meetings flow through webhookService.
type meetingService struct {
	meetingRepo repository.MeetingRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// MeetingServiceParams holds dependencies for meetingService, injected by Fx.
type MeetingServiceParams struct {
	fx.In

	MeetingRepo repository.MeetingRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewMeetingService is the constructor for meetingService.
func NewMeetingService(params MeetingServiceParams) usecase.MeetingUsecase {
	return &meetingService{
		meetingRepo: params.MeetingRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *meetingService) CreateMeeting(ctx context.Context, input usecase.CreateMeetingInput) (*entity.Meeting, error) {
	if input.ContactName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("contact name is required")
	}
	if input.ScheduledAt.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scheduled time is required")
	}

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to verify meeting account")
	}

	now := time.Now()
	meeting := &entity.Meeting{
		ID:           uuid.New(),
		AccountID:    input.AccountID,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ScheduledAt:  input.ScheduledAt,
		EndsAt:       input.EndsAt,
		Status:       entity.MeetingStatusScheduled,
		Source:       entity.MeetingSourceManual,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, errors.Wrap(err, "failed to create meeting")
	}

	return meeting, nil
}

func (srv *meetingService) GetMeeting(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	meeting, err := srv.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get meeting")
	}

	return meeting, nil
}

func (srv *meetingService) UpdateMeeting(ctx context.Context, input usecase.UpdateMeetingInput) (*entity.Meeting, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown meeting status")
	}

	meeting, err := srv.meetingRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load meeting for update")
	}

	meeting.ContactName = input.ContactName
	meeting.ContactEmail = input.ContactEmail
	meeting.ScheduledAt = input.ScheduledAt
	meeting.EndsAt = input.EndsAt
	meeting.Status = input.Status
	meeting.UpdatedAt = time.Now()

	if err := srv.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, errors.Wrap(err, "failed to update meeting")
	}

	return meeting, nil
}

func (srv *meetingService) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	if err := srv.meetingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMeetingNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete meeting")
	}

	return nil
}

func (srv *meetingService) ListMeetings(ctx context.Context, accountID *uuid.UUID) ([]*entity.Meeting, error) {
	meetings, err := srv.meetingRepo.List(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meetings")
	}

	return meetings, nil
}
